// Package usecase builds BAS and financial-year reports from ledger totals.
package usecase

import (
	"context"
	"time"

	"github.com/allisson/taxledger/internal/fiscal"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
	reportDomain "github.com/allisson/taxledger/internal/report/domain"
)

// TotalsReader aggregates ledger entries over an inclusive date range.
type TotalsReader interface {
	Totals(ctx context.Context, from, to time.Time) (ledgerDomain.Totals, error)
}

// ReportUseCase defines the reporting operations.
type ReportUseCase interface {
	// BAS returns the Business Activity Statement labels for a quarter.
	BAS(ctx context.Context, financialYear int, quarter fiscal.Quarter) (*reportDomain.BAS, error)

	// FinancialYear returns per-quarter and total profit and GST for a financial year.
	FinancialYear(ctx context.Context, financialYear int) (*reportDomain.FinancialYearSummary, error)
}
