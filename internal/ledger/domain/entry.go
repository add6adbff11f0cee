// Package domain defines ledger entries: the incomes and expenses a sole trader
// records, with the GST component of each amount.
//
// Amounts are whole cents. AmountCents is GST inclusive and GSTCents is the GST
// part of it, so the ex-GST value of an entry is AmountCents - GSTCents.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/taxledger/internal/errors"
	"github.com/allisson/taxledger/internal/fiscal"
)

// Kind tells incomes and expenses apart.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// ErrInvalidKind indicates a kind other than income or expense.
var ErrInvalidKind = apperrors.Wrap(apperrors.ErrInvalidInput, "kind must be income or expense")

// ParseKind parses a kind case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindIncome:
		return KindIncome, nil
	case KindExpense:
		return KindExpense, nil
	default:
		return "", ErrInvalidKind
	}
}

// Valid reports whether k is income or expense.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Entry is one income or expense line of the ledger.
type Entry struct {
	ID          uuid.UUID
	Kind        Kind
	Date        time.Time // Calendar day, UTC midnight
	Description string
	AmountCents int64 // GST inclusive
	GSTCents    int64
	CategoryID  *uuid.UUID
	ClientID    *uuid.UUID // Only meaningful for incomes
	Provider    string     // Supplier or payer as written on the source document
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NetCents returns the amount excluding GST.
func (e *Entry) NetCents() int64 {
	return e.AmountCents - e.GSTCents
}

// Period returns the financial year and quarter the entry falls in.
func (e *Entry) Period() fiscal.PeriodInfo {
	return fiscal.PeriodInfoOf(e.Date)
}

// CreateEntryInput contains the parameters for recording a new entry.
//
// When GSTCents is nil and GSTInclusive is true the GST is derived from the
// amount; when GSTCents is nil and GSTInclusive is false the entry carries no GST.
type CreateEntryInput struct {
	Kind         Kind
	Date         time.Time
	Description  string
	AmountCents  int64
	GSTCents     *int64
	GSTInclusive bool
	CategoryID   *uuid.UUID
	ClientID     *uuid.UUID
	Provider     string
}

// UpdateEntryInput contains the mutable fields of an entry. The kind is fixed at creation.
type UpdateEntryInput struct {
	Date         time.Time
	Description  string
	AmountCents  int64
	GSTCents     *int64
	GSTInclusive bool
	CategoryID   *uuid.UUID
	ClientID     *uuid.UUID
	Provider     string
}

// ListFilter narrows a ledger listing. Zero values mean "no restriction".
// Quarter requires FinancialYear.
type ListFilter struct {
	Kind          Kind
	FinancialYear int
	Quarter       fiscal.Quarter
	From          *time.Time
	To            *time.Time
}

// DateRange resolves the financial year, quarter and explicit bounds into a
// single inclusive range. Either bound may be nil.
func (f ListFilter) DateRange() (from, to *time.Time, err error) {
	from, to = f.From, f.To

	if f.Quarter != "" && f.FinancialYear == 0 {
		return nil, nil, apperrors.Wrap(apperrors.ErrInvalidInput, "quarter requires financial_year")
	}

	if f.FinancialYear != 0 {
		if err := fiscal.ValidateFinancialYear(f.FinancialYear); err != nil {
			return nil, nil, err
		}

		start, end := fiscal.FinancialYearRange(f.FinancialYear)
		if f.Quarter != "" {
			start, end, err = fiscal.QuarterRange(f.FinancialYear, f.Quarter)
			if err != nil {
				return nil, nil, err
			}
		}

		if from == nil || start.After(*from) {
			from = &start
		}
		if to == nil || end.Before(*to) {
			to = &end
		}
	}

	if from != nil && to != nil && from.After(*to) {
		return nil, nil, apperrors.Wrap(apperrors.ErrInvalidInput, "from must not be after to")
	}
	return from, to, nil
}

// TruncateDay drops the time of day and moves t to UTC midnight of the same
// calendar day as seen in t's own location.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
