package validation

import (
	"errors"
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/taxledger/internal/errors"
)

func TestStringRules(t *testing.T) {
	tests := []struct {
		name  string
		rule  validation.Rule
		input string
		valid bool
	}{
		{name: "email plain", rule: Email, input: "ops@example.com.au", valid: true},
		{name: "email plus tag", rule: Email, input: "ops+gst@example.com", valid: true},
		{name: "email no at", rule: Email, input: "ops.example.com", valid: false},
		{name: "email no domain dot", rule: Email, input: "ops@localhost", valid: false},
		{name: "email display name", rule: Email, input: "Ops <ops@example.com>", valid: false},
		{name: "email inner space", rule: Email, input: "o ps@example.com", valid: false},
		{name: "email empty is skipped", rule: Email, input: "", valid: true},

		{name: "not blank text", rule: NotBlank, input: " Office rent ", valid: true},
		{name: "not blank spaces", rule: NotBlank, input: "   ", valid: false},
		{name: "not blank tabs", rule: NotBlank, input: "\t\n", valid: false},

		{name: "date valid", rule: ISODate, input: "2024-07-01", valid: true},
		{name: "date leap day", rule: ISODate, input: "2024-02-29", valid: true},
		{name: "date not leap", rule: ISODate, input: "2023-02-29", valid: false},
		{name: "date day first", rule: ISODate, input: "01/07/2024", valid: false},
		{name: "date with time", rule: ISODate, input: "2024-07-01T00:00:00Z", valid: false},

		{name: "uuid canonical", rule: UUID, input: "6f1c2f3e-8a8b-4b9c-9d7e-2a3b4c5d6e7f", valid: true},
		{name: "uuid urn form", rule: UUID, input: "urn:uuid:6f1c2f3e-8a8b-4b9c-9d7e-2a3b4c5d6e7f", valid: false},
		{name: "uuid garbage", rule: UUID, input: "not-a-uuid", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestWrapValidationError(t *testing.T) {
	assert.NoError(t, WrapValidationError(nil))

	err := WrapValidationError(errors.New("description: must not be blank."))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "description: must not be blank.")
}
