package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	categoryDomain "github.com/allisson/taxledger/internal/category/domain"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
	"github.com/allisson/taxledger/internal/metrics"
)

// categoryUseCaseWithMetrics decorates CategoryUseCase with metrics instrumentation.
type categoryUseCaseWithMetrics struct {
	next    CategoryUseCase
	metrics metrics.BusinessMetrics
}

// NewCategoryUseCaseWithMetrics wraps a CategoryUseCase with metrics recording.
func NewCategoryUseCaseWithMetrics(useCase CategoryUseCase, m metrics.BusinessMetrics) CategoryUseCase {
	return &categoryUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *categoryUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.metrics.RecordOperation(ctx, "category", operation, status)
	c.metrics.RecordDuration(ctx, "category", operation, time.Since(start), status)
}

func (c *categoryUseCaseWithMetrics) Create(
	ctx context.Context,
	input *categoryDomain.CreateCategoryInput,
) (*categoryDomain.Category, error) {
	start := time.Now()
	category, err := c.next.Create(ctx, input)
	c.record(ctx, "category_create", start, err)
	return category, err
}

func (c *categoryUseCaseWithMetrics) Get(ctx context.Context, categoryID uuid.UUID) (*categoryDomain.Category, error) {
	start := time.Now()
	category, err := c.next.Get(ctx, categoryID)
	c.record(ctx, "category_get", start, err)
	return category, err
}

func (c *categoryUseCaseWithMetrics) List(
	ctx context.Context,
	kind ledgerDomain.Kind,
) ([]*categoryDomain.Category, error) {
	start := time.Now()
	categories, err := c.next.List(ctx, kind)
	c.record(ctx, "category_list", start, err)
	return categories, err
}

func (c *categoryUseCaseWithMetrics) Delete(ctx context.Context, categoryID uuid.UUID) error {
	start := time.Now()
	err := c.next.Delete(ctx, categoryID)
	c.record(ctx, "category_delete", start, err)
	return err
}
