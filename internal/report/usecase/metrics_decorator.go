package usecase

import (
	"context"
	"time"

	"github.com/allisson/taxledger/internal/fiscal"
	"github.com/allisson/taxledger/internal/metrics"
	reportDomain "github.com/allisson/taxledger/internal/report/domain"
)

// reportUseCaseWithMetrics decorates ReportUseCase with metrics instrumentation.
type reportUseCaseWithMetrics struct {
	next    ReportUseCase
	metrics metrics.BusinessMetrics
}

// NewReportUseCaseWithMetrics wraps a ReportUseCase with metrics recording.
func NewReportUseCaseWithMetrics(useCase ReportUseCase, m metrics.BusinessMetrics) ReportUseCase {
	return &reportUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (r *reportUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	r.metrics.RecordOperation(ctx, "report", operation, status)
	r.metrics.RecordDuration(ctx, "report", operation, time.Since(start), status)
}

func (r *reportUseCaseWithMetrics) BAS(
	ctx context.Context,
	financialYear int,
	quarter fiscal.Quarter,
) (*reportDomain.BAS, error) {
	start := time.Now()
	bas, err := r.next.BAS(ctx, financialYear, quarter)
	r.record(ctx, "bas_summary", start, err)
	return bas, err
}

func (r *reportUseCaseWithMetrics) FinancialYear(
	ctx context.Context,
	financialYear int,
) (*reportDomain.FinancialYearSummary, error) {
	start := time.Now()
	summary, err := r.next.FinancialYear(ctx, financialYear)
	r.record(ctx, "financial_year_summary", start, err)
	return summary, err
}
