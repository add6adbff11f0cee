// Package domain defines the rows and results of a CSV ledger import.
package domain

import (
	"time"

	"github.com/google/uuid"

	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
)

// RowStatus classifies a parsed CSV row.
type RowStatus string

const (
	StatusValid     RowStatus = "valid"
	StatusInvalid   RowStatus = "invalid"
	StatusDuplicate RowStatus = "duplicate"
)

// Row is one data line of an import file. Line is the 1-based line number in
// the file, counting the header.
type Row struct {
	Line              int
	Date              time.Time
	Description       string
	Kind              ledgerDomain.Kind
	AmountCents       int64
	GSTCents          *int64
	CategoryName      string
	CategoryID        *uuid.UUID
	CategorySuggested bool
	Provider          string
	Status            RowStatus
	Errors            []string
	DuplicateOf       string
}

// AddError records a validation problem and marks the row invalid.
func (r *Row) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Status = StatusInvalid
}

// MarkDuplicate flags the row as a likely duplicate of ref.
func (r *Row) MarkDuplicate(ref string) {
	r.Status = StatusDuplicate
	r.DuplicateOf = ref
}

// ToCreateInput converts a valid row into a ledger entry input.
func (r *Row) ToCreateInput() *ledgerDomain.CreateEntryInput {
	return &ledgerDomain.CreateEntryInput{
		Kind:        r.Kind,
		Date:        r.Date,
		Description: r.Description,
		AmountCents: r.AmountCents,
		GSTCents:    r.GSTCents,
		CategoryID:  r.CategoryID,
		Provider:    r.Provider,
	}
}

// Preview is the classification of every row of a file.
type Preview struct {
	Rows      []Row
	Valid     int
	Invalid   int
	Duplicate int
}

// NewPreview counts the rows by status.
func NewPreview(rows []Row) *Preview {
	p := &Preview{Rows: rows}
	for i := range rows {
		switch rows[i].Status {
		case StatusValid:
			p.Valid++
		case StatusInvalid:
			p.Invalid++
		case StatusDuplicate:
			p.Duplicate++
		}
	}
	return p
}

// CommitResult is a preview plus the entries created from its valid rows.
type CommitResult struct {
	*Preview
	Created []*ledgerDomain.Entry
}
