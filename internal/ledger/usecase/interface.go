// Package usecase defines business logic interfaces for ledger entries.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	categoryDomain "github.com/allisson/taxledger/internal/category/domain"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
)

// EntryRepository defines persistence operations for ledger entries. Lookups
// and deletes are scoped by kind so an income ID never resolves as an expense.
type EntryRepository interface {
	Create(ctx context.Context, entry *ledgerDomain.Entry) error
	Update(ctx context.Context, entry *ledgerDomain.Entry) error
	Delete(ctx context.Context, kind ledgerDomain.Kind, entryID uuid.UUID) error
	Get(ctx context.Context, kind ledgerDomain.Kind, entryID uuid.UUID) (*ledgerDomain.Entry, error)
	List(ctx context.Context, q ledgerDomain.Query) ([]*ledgerDomain.Entry, error)

	// Totals sums amounts and GST per kind for entries dated within [from, to].
	Totals(ctx context.Context, from, to time.Time) (ledgerDomain.Totals, error)
}

// CategoryReader resolves the category an entry refers to.
type CategoryReader interface {
	Get(ctx context.Context, categoryID uuid.UUID) (*categoryDomain.Category, error)
}

// EntryUseCase defines business logic operations for incomes and expenses.
type EntryUseCase interface {
	// Create validates and records an entry, deriving GST when requested.
	Create(ctx context.Context, input *ledgerDomain.CreateEntryInput) (*ledgerDomain.Entry, error)

	// Update replaces the mutable fields of an entry of the given kind.
	Update(
		ctx context.Context,
		kind ledgerDomain.Kind,
		entryID uuid.UUID,
		input *ledgerDomain.UpdateEntryInput,
	) (*ledgerDomain.Entry, error)

	Get(ctx context.Context, kind ledgerDomain.Kind, entryID uuid.UUID) (*ledgerDomain.Entry, error)
	Delete(ctx context.Context, kind ledgerDomain.Kind, entryID uuid.UUID) error

	// List returns entries matching filter, newest first. A limit of zero returns
	// every match.
	List(ctx context.Context, filter ledgerDomain.ListFilter, offset, limit int) ([]*ledgerDomain.Entry, error)
}
