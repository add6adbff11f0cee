package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidABN(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "valid without spaces", input: "51824753556", valid: true},
		{name: "valid grouped with spaces", input: "51 824 753 556", valid: true},
		{name: "another valid number", input: "33 051 775 556", valid: true},
		{name: "wrong checksum", input: "51824753557", valid: false},
		{name: "too short", input: "5182475355", valid: false},
		{name: "too long", input: "518247535560", valid: false},
		{name: "letters", input: "5182475355a", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidABN(tt.input))
		})
	}
}

func TestNormalizeABN(t *testing.T) {
	assert.Equal(t, "51824753556", NormalizeABN(" 51 824 753 556 "))
	assert.Equal(t, "51824753556", NormalizeABN("51824753556"))
}

func TestABNRule(t *testing.T) {
	assert.NoError(t, ABN.Validate("51 824 753 556"))
	assert.Error(t, ABN.Validate("12 345 678 901"))
	assert.NoError(t, ABN.Validate(""))
}
