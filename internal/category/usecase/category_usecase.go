package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	categoryDomain "github.com/allisson/taxledger/internal/category/domain"
	apperrors "github.com/allisson/taxledger/internal/errors"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
)

// categoryUseCase implements CategoryUseCase.
type categoryUseCase struct {
	categoryRepo CategoryRepository
}

// Create trims the name, checks the kind and stores the category.
func (c *categoryUseCase) Create(
	ctx context.Context,
	input *categoryDomain.CreateCategoryInput,
) (*categoryDomain.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "name must not be blank")
	}
	if !input.Kind.Valid() {
		return nil, ledgerDomain.ErrInvalidKind
	}

	category := &categoryDomain.Category{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      name,
		Kind:      input.Kind,
		CreatedAt: time.Now().UTC(),
	}

	if err := c.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Get retrieves a category by ID.
func (c *categoryUseCase) Get(ctx context.Context, categoryID uuid.UUID) (*categoryDomain.Category, error) {
	return c.categoryRepo.Get(ctx, categoryID)
}

// List retrieves categories, optionally restricted to one kind.
func (c *categoryUseCase) List(ctx context.Context, kind ledgerDomain.Kind) ([]*categoryDomain.Category, error) {
	if kind != "" && !kind.Valid() {
		return nil, ledgerDomain.ErrInvalidKind
	}
	return c.categoryRepo.List(ctx, kind)
}

// Delete removes a category by ID.
func (c *categoryUseCase) Delete(ctx context.Context, categoryID uuid.UUID) error {
	return c.categoryRepo.Delete(ctx, categoryID)
}

// NewCategoryUseCase creates a new CategoryUseCase.
func NewCategoryUseCase(categoryRepo CategoryRepository) CategoryUseCase {
	return &categoryUseCase{categoryRepo: categoryRepo}
}
