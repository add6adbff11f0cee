package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/taxledger/internal/errors"
)

func TestCategoryErrors(t *testing.T) {
	assert.ErrorIs(t, ErrCategoryNotFound, apperrors.ErrNotFound)
	assert.ErrorIs(t, ErrCategoryAlreadyExists, apperrors.ErrConflict)
	assert.Equal(t, "category already exists: conflict", ErrCategoryAlreadyExists.Error())
}
