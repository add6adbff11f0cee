package domain

import (
	"github.com/allisson/taxledger/internal/errors"
)

// Import errors.
var (
	// ErrEmptyFile indicates a file without a header row.
	ErrEmptyFile = errors.Wrap(errors.ErrInvalidInput, "csv file is empty")

	// ErrMissingColumns indicates a header without the required columns.
	ErrMissingColumns = errors.Wrap(errors.ErrInvalidInput, "csv header is missing required columns")

	// ErrMalformedCSV indicates a file the CSV reader could not parse.
	ErrMalformedCSV = errors.Wrap(errors.ErrInvalidInput, "malformed csv")

	// ErrTooManyRows indicates a file with more data rows than allowed.
	ErrTooManyRows = errors.Wrap(errors.ErrPayloadTooLarge, "csv file has too many rows")

	// ErrFileTooLarge indicates an upload above the configured size limit.
	ErrFileTooLarge = errors.Wrap(errors.ErrPayloadTooLarge, "csv file is too large")
)
