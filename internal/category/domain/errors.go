package domain

import (
	"github.com/allisson/taxledger/internal/errors"
)

// Category errors.
var (
	// ErrCategoryNotFound indicates a category with the specified ID was not found.
	ErrCategoryNotFound = errors.Wrap(errors.ErrNotFound, "category not found")

	// ErrCategoryAlreadyExists indicates a category with the same name and kind exists.
	ErrCategoryAlreadyExists = errors.Wrap(errors.ErrConflict, "category already exists")
)
