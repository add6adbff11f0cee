package domain

import (
	"github.com/allisson/taxledger/internal/errors"
)

// Ledger errors.
var (
	// ErrEntryNotFound indicates an entry with the specified ID and kind was not found.
	ErrEntryNotFound = errors.Wrap(errors.ErrNotFound, "entry not found")

	// ErrGSTExceedsAmount indicates a GST component larger than the whole amount.
	ErrGSTExceedsAmount = errors.Wrap(errors.ErrInvalidInput, "gst must not exceed the amount")

	// ErrUnknownReference indicates a category or client ID that does not exist.
	ErrUnknownReference = errors.Wrap(errors.ErrInvalidInput, "referenced category or client does not exist")
)
