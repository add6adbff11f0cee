// Package dto maps report summaries to API responses.
package dto

import (
	"github.com/allisson/taxledger/internal/fiscal"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
	reportDomain "github.com/allisson/taxledger/internal/report/domain"
)

const dateLayout = "2006-01-02"

// Amount carries a money value both as a display string and in cents.
type Amount struct {
	Value string `json:"value"`
	Cents int64  `json:"cents"`
}

func newAmount(cents int64) Amount {
	return Amount{Value: ledgerDomain.FormatCents(cents), Cents: cents}
}

// BASResponse represents a quarterly BAS summary.
type BASResponse struct {
	Period       fiscal.PeriodInfo `json:"period"`
	From         string            `json:"from"`
	To           string            `json:"to"`
	G1           Amount            `json:"g1"`
	Label1A      Amount            `json:"1a"`
	G11          Amount            `json:"g11"`
	Label1B      Amount            `json:"1b"`
	NetGST       Amount            `json:"net_gst"`
	IncomeCount  int               `json:"income_count"`
	ExpenseCount int               `json:"expense_count"`
}

// MapBASToResponse converts a BAS summary to an API response.
func MapBASToResponse(bas *reportDomain.BAS) BASResponse {
	return BASResponse{
		Period:       bas.Period,
		From:         bas.From.Format(dateLayout),
		To:           bas.To.Format(dateLayout),
		G1:           newAmount(bas.G1),
		Label1A:      newAmount(bas.Label1A),
		G11:          newAmount(bas.G11),
		Label1B:      newAmount(bas.Label1B),
		NetGST:       newAmount(bas.NetGST),
		IncomeCount:  bas.IncomeCount,
		ExpenseCount: bas.ExpenseCount,
	}
}

// PeriodSummaryResponse represents income, expenses and GST over a period.
type PeriodSummaryResponse struct {
	Income       Amount `json:"income"`
	Expenses     Amount `json:"expenses"`
	GSTCollected Amount `json:"gst_collected"`
	GSTPaid      Amount `json:"gst_paid"`
	NetProfit    Amount `json:"net_profit"`
	NetGST       Amount `json:"net_gst"`
	IncomeCount  int    `json:"income_count"`
	ExpenseCount int    `json:"expense_count"`
}

func mapPeriodSummary(s reportDomain.PeriodSummary) PeriodSummaryResponse {
	return PeriodSummaryResponse{
		Income:       newAmount(s.IncomeCents),
		Expenses:     newAmount(s.ExpenseCents),
		GSTCollected: newAmount(s.GSTCollected),
		GSTPaid:      newAmount(s.GSTPaid),
		NetProfit:    newAmount(s.NetProfit),
		NetGST:       newAmount(s.NetGST),
		IncomeCount:  s.IncomeCount,
		ExpenseCount: s.ExpenseCount,
	}
}

// QuarterSummaryResponse is a period summary for one quarter.
type QuarterSummaryResponse struct {
	Period fiscal.PeriodInfo `json:"period"`
	From   string            `json:"from"`
	To     string            `json:"to"`
	PeriodSummaryResponse
}

// FinancialYearResponse represents a financial-year summary.
type FinancialYearResponse struct {
	FinancialYear int                      `json:"financial_year"`
	FYLabel       string                   `json:"fy_label"`
	From          string                   `json:"from"`
	To            string                   `json:"to"`
	Quarters      []QuarterSummaryResponse `json:"quarters"`
	Total         PeriodSummaryResponse    `json:"total"`
}

// MapFinancialYearToResponse converts a financial-year summary to an API response.
func MapFinancialYearToResponse(summary *reportDomain.FinancialYearSummary) FinancialYearResponse {
	quarters := make([]QuarterSummaryResponse, 0, len(summary.Quarters))
	for _, q := range summary.Quarters {
		quarters = append(quarters, QuarterSummaryResponse{
			Period:                q.Period,
			From:                  q.From.Format(dateLayout),
			To:                    q.To.Format(dateLayout),
			PeriodSummaryResponse: mapPeriodSummary(q.PeriodSummary),
		})
	}

	return FinancialYearResponse{
		FinancialYear: summary.FinancialYear,
		FYLabel:       summary.FYLabel,
		From:          summary.From.Format(dateLayout),
		To:            summary.To.Format(dateLayout),
		Quarters:      quarters,
		Total:         mapPeriodSummary(summary.Total),
	}
}
