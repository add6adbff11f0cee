package validation

import (
	"strings"

	validation "github.com/jellydator/validation"
)

// abnWeights are the ATO weighting factors applied to each ABN digit.
var abnWeights = [11]int{10, 1, 3, 5, 7, 9, 11, 13, 15, 17, 19}

// NormalizeABN strips the spaces commonly used to group ABN digits ("51 824 753 556").
func NormalizeABN(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// IsValidABN reports whether s is an 11 digit Australian Business Number with a
// correct checksum. Spaces are ignored.
//
// The check subtracts one from the first digit, multiplies every digit by its
// weight and requires the sum to be divisible by 89.
func IsValidABN(s string) bool {
	abn := NormalizeABN(s)
	if len(abn) != len(abnWeights) {
		return false
	}

	sum := 0
	for i, r := range abn {
		if r < '0' || r > '9' {
			return false
		}
		digit := int(r - '0')
		if i == 0 {
			digit--
		}
		sum += digit * abnWeights[i]
	}
	return sum%89 == 0
}

// ABN validates an Australian Business Number.
var ABN = validation.NewStringRuleWithError(
	IsValidABN,
	validation.NewError("validation_abn", "must be a valid 11 digit ABN"),
)
