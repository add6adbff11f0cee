package domain

import "time"

// Query selects entries for the repository. From and To are inclusive calendar
// days. An empty Kind matches both kinds and a Limit of zero means no limit.
type Query struct {
	Kind   Kind
	From   *time.Time
	To     *time.Time
	Offset int
	Limit  int
}

// KindTotals aggregates the entries of one kind.
type KindTotals struct {
	AmountCents int64
	GSTCents    int64
	Count       int
}

// NetCents returns the aggregated amount excluding GST.
func (t KindTotals) NetCents() int64 {
	return t.AmountCents - t.GSTCents
}

// Totals aggregates incomes and expenses over a date range.
type Totals struct {
	Income  KindTotals
	Expense KindTotals
}
