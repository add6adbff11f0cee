// Package domain defines the GST and profit summaries reported per quarter and financial year.
package domain

import (
	"time"

	"github.com/allisson/taxledger/internal/fiscal"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
)

// BAS holds the Business Activity Statement labels for one quarter.
// All amounts are in cents.
type BAS struct {
	Period       fiscal.PeriodInfo
	From         time.Time
	To           time.Time
	G1           int64 // total sales, GST inclusive
	Label1A      int64 // GST on sales
	G11          int64 // non-capital purchases, GST inclusive
	Label1B      int64 // GST on purchases
	NetGST       int64 // 1A minus 1B; negative means a refund
	IncomeCount  int
	ExpenseCount int
}

// NewBAS maps ledger totals for a quarter onto BAS labels.
func NewBAS(period fiscal.PeriodInfo, from, to time.Time, totals ledgerDomain.Totals) *BAS {
	return &BAS{
		Period:       period,
		From:         from,
		To:           to,
		G1:           totals.Income.AmountCents,
		Label1A:      totals.Income.GSTCents,
		G11:          totals.Expense.AmountCents,
		Label1B:      totals.Expense.GSTCents,
		NetGST:       totals.Income.GSTCents - totals.Expense.GSTCents,
		IncomeCount:  totals.Income.Count,
		ExpenseCount: totals.Expense.Count,
	}
}

// PeriodSummary is the profit and GST position over a period.
// Income, expenses and net profit exclude GST.
type PeriodSummary struct {
	IncomeCents  int64
	ExpenseCents int64
	GSTCollected int64
	GSTPaid      int64
	NetProfit    int64
	NetGST       int64
	IncomeCount  int
	ExpenseCount int
}

// NewPeriodSummary derives a summary from ledger totals.
func NewPeriodSummary(totals ledgerDomain.Totals) PeriodSummary {
	s := PeriodSummary{
		IncomeCents:  totals.Income.NetCents(),
		ExpenseCents: totals.Expense.NetCents(),
		GSTCollected: totals.Income.GSTCents,
		GSTPaid:      totals.Expense.GSTCents,
		IncomeCount:  totals.Income.Count,
		ExpenseCount: totals.Expense.Count,
	}
	s.NetProfit = s.IncomeCents - s.ExpenseCents
	s.NetGST = s.GSTCollected - s.GSTPaid
	return s
}

// Add accumulates another summary into s.
func (s *PeriodSummary) Add(other PeriodSummary) {
	s.IncomeCents += other.IncomeCents
	s.ExpenseCents += other.ExpenseCents
	s.GSTCollected += other.GSTCollected
	s.GSTPaid += other.GSTPaid
	s.NetProfit += other.NetProfit
	s.NetGST += other.NetGST
	s.IncomeCount += other.IncomeCount
	s.ExpenseCount += other.ExpenseCount
}

// QuarterSummary is a PeriodSummary bound to a quarter.
type QuarterSummary struct {
	Period fiscal.PeriodInfo
	From   time.Time
	To     time.Time
	PeriodSummary
}

// FinancialYearSummary breaks a financial year down by quarter.
type FinancialYearSummary struct {
	FinancialYear int
	FYLabel       string
	From          time.Time
	To            time.Time
	Quarters      []QuarterSummary
	Total         PeriodSummary
}
