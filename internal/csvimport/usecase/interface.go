// Package usecase previews and commits CSV imports into the ledger.
package usecase

import (
	"context"
	"io"

	categoryDomain "github.com/allisson/taxledger/internal/category/domain"
	importDomain "github.com/allisson/taxledger/internal/csvimport/domain"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
)

// EntryService is the part of the ledger use case an import needs.
type EntryService interface {
	Create(ctx context.Context, input *ledgerDomain.CreateEntryInput) (*ledgerDomain.Entry, error)
	List(ctx context.Context, filter ledgerDomain.ListFilter, offset, limit int) ([]*ledgerDomain.Entry, error)
}

// CategoryLister lists categories so imported rows can reference them by name.
type CategoryLister interface {
	List(ctx context.Context, kind ledgerDomain.Kind) ([]*categoryDomain.Category, error)
}

// ImportUseCase defines the CSV import operations.
type ImportUseCase interface {
	// Preview parses and classifies every row without writing anything.
	Preview(ctx context.Context, r io.Reader) (*importDomain.Preview, error)

	// Commit classifies the rows like Preview and creates an entry for every
	// valid row in a single transaction. Invalid and duplicate rows are skipped.
	Commit(ctx context.Context, r io.Reader) (*importDomain.CommitResult, error)
}
