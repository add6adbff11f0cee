// Package validation provides custom validation rules for the application.
package validation

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/taxledger/internal/errors"
)

// DateLayout is the ISO 8601 calendar date layout accepted by the API.
const DateLayout = "2006-01-02"

// WrapValidationError converts a validation failure into ErrInvalidInput so the
// HTTP layer maps it to 422.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Email accepts a bare address such as "ops@example.com.au". Display names
// ("Ops <ops@example.com>") are rejected.
var Email = validation.NewStringRuleWithError(
	isBareEmail,
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// NotBlank rejects strings made only of whitespace.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool { return strings.TrimSpace(s) != "" },
	validation.NewError("validation_not_blank", "must not be blank"),
)

// ISODate validates that a string is a calendar date in YYYY-MM-DD form.
var ISODate = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := time.Parse(DateLayout, s)
		return err == nil
	},
	validation.NewError("validation_iso_date", "must be a date in YYYY-MM-DD format"),
)

// UUID validates the canonical 36 character UUID form.
var UUID = validation.NewStringRuleWithError(
	func(s string) bool {
		if len(s) != 36 {
			return false
		}
		_, err := uuid.Parse(s)
		return err == nil
	},
	validation.NewError("validation_uuid", "must be a valid UUID"),
)

func isBareEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	return strings.Contains(s[at+1:], ".")
}
