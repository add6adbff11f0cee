// Package fiscal maps calendar dates onto Australian tax periods.
//
// The Australian financial year runs from 1 July to 30 June and is named after
// the calendar year in which it ends, so 1 July 2025 starts FY2026. Quarters are
// counted from July: Q1 is July to September, Q4 is April to June.
package fiscal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/allisson/taxledger/internal/errors"
)

// Quarter is one of the four BAS quarters of a financial year.
type Quarter string

const (
	Q1 Quarter = "Q1" // July, August, September
	Q2 Quarter = "Q2" // October, November, December
	Q3 Quarter = "Q3" // January, February, March
	Q4 Quarter = "Q4" // April, May, June
)

// ErrInvalidQuarter is returned when a quarter label cannot be parsed.
var ErrInvalidQuarter = apperrors.Wrap(apperrors.ErrInvalidInput, "quarter must be one of Q1, Q2, Q3, Q4")

// ErrInvalidFinancialYear is returned when a financial year is out of range.
var ErrInvalidFinancialYear = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid financial year")

// PeriodInfo describes the reporting buckets a date falls into.
type PeriodInfo struct {
	FinancialYear int     `json:"financial_year"`
	Quarter       Quarter `json:"quarter"`
	FYLabel       string  `json:"fy_label"`
	QuarterLabel  string  `json:"quarter_label"`
}

// Quarters returns the quarters in financial year order.
func Quarters() []Quarter {
	return []Quarter{Q1, Q2, Q3, Q4}
}

// FinancialYearOf returns the financial year t belongs to.
func FinancialYearOf(t time.Time) int {
	if t.Month() >= time.July {
		return t.Year() + 1
	}
	return t.Year()
}

// QuarterOf returns the financial year quarter t belongs to.
func QuarterOf(t time.Time) Quarter {
	switch t.Month() {
	case time.July, time.August, time.September:
		return Q1
	case time.October, time.November, time.December:
		return Q2
	case time.January, time.February, time.March:
		return Q3
	default:
		return Q4
	}
}

// PeriodInfoOf combines FinancialYearOf and QuarterOf with display labels.
func PeriodInfoOf(t time.Time) PeriodInfo {
	return NewPeriodInfo(FinancialYearOf(t), QuarterOf(t))
}

// NewPeriodInfo builds the labels for a known financial year and quarter.
func NewPeriodInfo(financialYear int, quarter Quarter) PeriodInfo {
	fyLabel := FYLabel(financialYear)
	return PeriodInfo{
		FinancialYear: financialYear,
		Quarter:       quarter,
		FYLabel:       fyLabel,
		QuarterLabel:  string(quarter) + " " + fyLabel,
	}
}

// FYLabel formats a financial year as "FY2026".
func FYLabel(financialYear int) string {
	return "FY" + strconv.Itoa(financialYear)
}

// ParseQuarter parses "Q1".."Q4", ignoring case and surrounding whitespace.
func ParseQuarter(s string) (Quarter, error) {
	q := Quarter(strings.ToUpper(strings.TrimSpace(s)))
	switch q {
	case Q1, Q2, Q3, Q4:
		return q, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidQuarter, s)
	}
}

// ValidateFinancialYear rejects financial years outside 1900..9999.
func ValidateFinancialYear(financialYear int) error {
	if financialYear < 1900 || financialYear > 9999 {
		return fmt.Errorf("%w: %d", ErrInvalidFinancialYear, financialYear)
	}
	return nil
}

// FinancialYearRange returns the first and last day (UTC midnight) of a financial year.
func FinancialYearRange(financialYear int) (start, end time.Time) {
	start = time.Date(financialYear-1, time.July, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(financialYear, time.June, 30, 0, 0, 0, 0, time.UTC)
	return start, end
}

// QuarterRange returns the first and last day (UTC midnight) of a quarter.
func QuarterRange(financialYear int, quarter Quarter) (start, end time.Time, err error) {
	var year int
	var month time.Month

	switch quarter {
	case Q1:
		year, month = financialYear-1, time.July
	case Q2:
		year, month = financialYear-1, time.October
	case Q3:
		year, month = financialYear, time.January
	case Q4:
		year, month = financialYear, time.April
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidQuarter, quarter)
	}

	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 3, -1)
	return start, end, nil
}
