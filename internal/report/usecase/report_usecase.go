package usecase

import (
	"context"

	"github.com/allisson/taxledger/internal/fiscal"
	reportDomain "github.com/allisson/taxledger/internal/report/domain"
)

type reportUseCase struct {
	totalsReader TotalsReader
}

func (r *reportUseCase) BAS(
	ctx context.Context,
	financialYear int,
	quarter fiscal.Quarter,
) (*reportDomain.BAS, error) {
	if err := fiscal.ValidateFinancialYear(financialYear); err != nil {
		return nil, err
	}
	from, to, err := fiscal.QuarterRange(financialYear, quarter)
	if err != nil {
		return nil, err
	}

	totals, err := r.totalsReader.Totals(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return reportDomain.NewBAS(fiscal.NewPeriodInfo(financialYear, quarter), from, to, totals), nil
}

func (r *reportUseCase) FinancialYear(
	ctx context.Context,
	financialYear int,
) (*reportDomain.FinancialYearSummary, error) {
	if err := fiscal.ValidateFinancialYear(financialYear); err != nil {
		return nil, err
	}

	from, to := fiscal.FinancialYearRange(financialYear)
	summary := &reportDomain.FinancialYearSummary{
		FinancialYear: financialYear,
		FYLabel:       fiscal.FYLabel(financialYear),
		From:          from,
		To:            to,
		Quarters:      make([]reportDomain.QuarterSummary, 0, 4),
	}

	for _, quarter := range fiscal.Quarters() {
		qFrom, qTo, err := fiscal.QuarterRange(financialYear, quarter)
		if err != nil {
			return nil, err
		}

		totals, err := r.totalsReader.Totals(ctx, qFrom, qTo)
		if err != nil {
			return nil, err
		}

		quarterSummary := reportDomain.QuarterSummary{
			Period:        fiscal.NewPeriodInfo(financialYear, quarter),
			From:          qFrom,
			To:            qTo,
			PeriodSummary: reportDomain.NewPeriodSummary(totals),
		}
		summary.Quarters = append(summary.Quarters, quarterSummary)
		summary.Total.Add(quarterSummary.PeriodSummary)
	}

	return summary, nil
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(totalsReader TotalsReader) ReportUseCase {
	return &reportUseCase{totalsReader: totalsReader}
}
