package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/allisson/taxledger/internal/errors"
)

// GSTRateDenominator expresses the 10% GST rate: the GST inside an inclusive
// amount is one eleventh of it.
const GSTRateDenominator = 11

// ErrInvalidAmount indicates a money value that could not be parsed.
var ErrInvalidAmount = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid amount")

// GSTFromInclusive returns the GST component of a GST-inclusive amount, rounded
// half up to the cent. Negative amounts (refunds) mirror positive ones.
// The rounding works on the remainder so no intermediate value exceeds cents.
func GSTFromInclusive(cents int64) int64 {
	gst, rem := cents/GSTRateDenominator, cents%GSTRateDenominator
	switch {
	case rem*2 >= GSTRateDenominator:
		gst++
	case -rem*2 >= GSTRateDenominator:
		gst--
	}
	return gst
}

// ParseAmountToCents parses a decimal money value into cents. It accepts an
// optional leading sign, a "$" symbol, thousands separators and at most two
// decimal places: "1234.56", "$1,234.56", "-12.30", "-$5", "(12.30)".
// Parentheses denote a negative amount, as in bank statement exports.
func ParseAmountToCents(s string) (int64, error) {
	raw := s
	s = strings.TrimSpace(s)

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if strings.HasPrefix(s, "-") {
		negative = !negative
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if hasFrac && (len(frac) == 0 || len(frac) > 2) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if len(frac) == 1 {
		frac += "0"
	}
	if frac == "" {
		frac = "00"
	}

	if !isDigits(whole) || !isDigits(frac) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units > math.MaxInt64/100-1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	cents, _ := strconv.ParseInt(frac, 10, 64)

	total := units*100 + cents
	if negative {
		total = -total
	}
	return total, nil
}

// FormatCents renders cents as a plain decimal string such as "-1234.56".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
