// Package usecase defines business logic interfaces for category management.
package usecase

import (
	"context"

	"github.com/google/uuid"

	categoryDomain "github.com/allisson/taxledger/internal/category/domain"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	// Create stores a category. Returns ErrCategoryAlreadyExists for a duplicate name and kind.
	Create(ctx context.Context, category *categoryDomain.Category) error
	Delete(ctx context.Context, categoryID uuid.UUID) error
	Get(ctx context.Context, categoryID uuid.UUID) (*categoryDomain.Category, error)

	// List returns categories of the given kind, or of both kinds when kind is empty.
	List(ctx context.Context, kind ledgerDomain.Kind) ([]*categoryDomain.Category, error)
}

// CategoryUseCase defines business logic operations for managing categories.
type CategoryUseCase interface {
	Create(ctx context.Context, input *categoryDomain.CreateCategoryInput) (*categoryDomain.Category, error)
	Get(ctx context.Context, categoryID uuid.UUID) (*categoryDomain.Category, error)
	List(ctx context.Context, kind ledgerDomain.Kind) ([]*categoryDomain.Category, error)
	Delete(ctx context.Context, categoryID uuid.UUID) error
}
