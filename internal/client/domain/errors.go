package domain

import (
	"github.com/allisson/taxledger/internal/errors"
)

// Client errors.
var (
	// ErrClientNotFound indicates a client with the specified ID was not found.
	ErrClientNotFound = errors.Wrap(errors.ErrNotFound, "client not found")

	// ErrInvalidABN indicates the ABN failed the ATO checksum.
	ErrInvalidABN = errors.Wrap(errors.ErrInvalidInput, "abn must be a valid 11 digit ABN")
)
