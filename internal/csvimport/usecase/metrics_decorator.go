package usecase

import (
	"context"
	"io"
	"time"

	importDomain "github.com/allisson/taxledger/internal/csvimport/domain"
	"github.com/allisson/taxledger/internal/metrics"
)

// importUseCaseWithMetrics decorates ImportUseCase with metrics instrumentation.
// Besides the operation metrics it counts rows by classification.
type importUseCaseWithMetrics struct {
	next    ImportUseCase
	metrics metrics.BusinessMetrics
}

// NewImportUseCaseWithMetrics wraps an ImportUseCase with metrics recording.
func NewImportUseCaseWithMetrics(useCase ImportUseCase, m metrics.BusinessMetrics) ImportUseCase {
	return &importUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (i *importUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	i.metrics.RecordOperation(ctx, "csvimport", operation, status)
	i.metrics.RecordDuration(ctx, "csvimport", operation, time.Since(start), status)
}

func (i *importUseCaseWithMetrics) recordRows(ctx context.Context, preview *importDomain.Preview) {
	i.metrics.RecordImportRows(ctx, string(importDomain.StatusValid), preview.Valid)
	i.metrics.RecordImportRows(ctx, string(importDomain.StatusInvalid), preview.Invalid)
	i.metrics.RecordImportRows(ctx, string(importDomain.StatusDuplicate), preview.Duplicate)
}

func (i *importUseCaseWithMetrics) Preview(ctx context.Context, r io.Reader) (*importDomain.Preview, error) {
	start := time.Now()
	preview, err := i.next.Preview(ctx, r)
	i.record(ctx, "import_preview", start, err)
	if err == nil {
		i.recordRows(ctx, preview)
	}
	return preview, err
}

func (i *importUseCaseWithMetrics) Commit(ctx context.Context, r io.Reader) (*importDomain.CommitResult, error) {
	start := time.Now()
	result, err := i.next.Commit(ctx, r)
	i.record(ctx, "import_commit", start, err)
	if err == nil {
		i.recordRows(ctx, result.Preview)
		i.metrics.RecordImportRows(ctx, "committed", len(result.Created))
	}
	return result, err
}
