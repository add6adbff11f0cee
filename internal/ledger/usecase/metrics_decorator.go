package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
	"github.com/allisson/taxledger/internal/metrics"
)

// entryUseCaseWithMetrics decorates EntryUseCase with metrics instrumentation.
// Operation names carry the entry kind ("income_create", "expense_list").
type entryUseCaseWithMetrics struct {
	next    EntryUseCase
	metrics metrics.BusinessMetrics
}

// NewEntryUseCaseWithMetrics wraps an EntryUseCase with metrics recording.
func NewEntryUseCaseWithMetrics(useCase EntryUseCase, m metrics.BusinessMetrics) EntryUseCase {
	return &entryUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (e *entryUseCaseWithMetrics) record(
	ctx context.Context,
	kind ledgerDomain.Kind,
	action string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}
	prefix := string(kind)
	if prefix == "" {
		prefix = "entry"
	}
	operation := prefix + "_" + action
	e.metrics.RecordOperation(ctx, "ledger", operation, status)
	e.metrics.RecordDuration(ctx, "ledger", operation, time.Since(start), status)
}

func (e *entryUseCaseWithMetrics) Create(
	ctx context.Context,
	input *ledgerDomain.CreateEntryInput,
) (*ledgerDomain.Entry, error) {
	start := time.Now()
	entry, err := e.next.Create(ctx, input)
	e.record(ctx, input.Kind, "create", start, err)
	return entry, err
}

func (e *entryUseCaseWithMetrics) Update(
	ctx context.Context,
	kind ledgerDomain.Kind,
	entryID uuid.UUID,
	input *ledgerDomain.UpdateEntryInput,
) (*ledgerDomain.Entry, error) {
	start := time.Now()
	entry, err := e.next.Update(ctx, kind, entryID, input)
	e.record(ctx, kind, "update", start, err)
	return entry, err
}

func (e *entryUseCaseWithMetrics) Get(
	ctx context.Context,
	kind ledgerDomain.Kind,
	entryID uuid.UUID,
) (*ledgerDomain.Entry, error) {
	start := time.Now()
	entry, err := e.next.Get(ctx, kind, entryID)
	e.record(ctx, kind, "get", start, err)
	return entry, err
}

func (e *entryUseCaseWithMetrics) Delete(ctx context.Context, kind ledgerDomain.Kind, entryID uuid.UUID) error {
	start := time.Now()
	err := e.next.Delete(ctx, kind, entryID)
	e.record(ctx, kind, "delete", start, err)
	return err
}

func (e *entryUseCaseWithMetrics) List(
	ctx context.Context,
	filter ledgerDomain.ListFilter,
	offset, limit int,
) ([]*ledgerDomain.Entry, error) {
	start := time.Now()
	entries, err := e.next.List(ctx, filter, offset, limit)
	e.record(ctx, filter.Kind, "list", start, err)
	return entries, err
}
