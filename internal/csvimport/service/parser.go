// Package service parses import files and suggests categories and duplicates for their rows.
package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	importDomain "github.com/allisson/taxledger/internal/csvimport/domain"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
)

const (
	colDate        = "date"
	colDescription = "description"
	colAmount      = "amount"
	colDebit       = "debit"
	colCredit      = "credit"
	colGST         = "gst"
	colType        = "type"
	colCategory    = "category"
	colProvider    = "provider"
)

// headerAliases maps accepted header names to columns.
var headerAliases = map[string]string{
	"date":             colDate,
	"transaction date": colDate,
	"description":      colDescription,
	"details":          colDescription,
	"narrative":        colDescription,
	"memo":             colDescription,
	"amount":           colAmount,
	"debit":            colDebit,
	"withdrawal":       colDebit,
	"credit":           colCredit,
	"deposit":          colCredit,
	"gst":              colGST,
	"type":             colType,
	"category":         colCategory,
	"provider":         colProvider,
	"payee":            colProvider,
}

// dateLayouts are tried in order. Slash dates are day first.
var dateLayouts = []string{"2006-01-02", "02/01/2006", "2/1/2006"}

// Parser turns a CSV file into import rows.
type Parser struct {
	maxRows int
}

// NewParser creates a Parser that rejects files with more than maxRows data
// rows. A maxRows of zero disables the limit.
func NewParser(maxRows int) *Parser {
	return &Parser{maxRows: maxRows}
}

// Parse reads the header and every data row. Blank lines are skipped. Rows
// with bad values are returned as invalid rather than failing the file.
func (p *Parser) Parse(r io.Reader) ([]importDomain.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, importDomain.ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", importDomain.ErrMalformedCSV, err)
	}

	cols, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	rows := make([]importDomain.Row, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", importDomain.ErrMalformedCSV, err)
		}
		if isBlankRecord(record) {
			continue
		}
		if p.maxRows > 0 && len(rows) >= p.maxRows {
			return nil, fmt.Errorf("%w: limit is %d", importDomain.ErrTooManyRows, p.maxRows)
		}

		line, _ := reader.FieldPos(0)
		rows = append(rows, cols.parseRow(record, line))
	}

	return rows, nil
}

type columns map[string]int

func mapHeader(header []string) (columns, error) {
	cols := make(columns)
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		col, ok := headerAliases[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			continue
		}
		if _, seen := cols[col]; !seen {
			cols[col] = i
		}
	}

	var missing []string
	for _, required := range []string{colDate, colDescription} {
		if _, ok := cols[required]; !ok {
			missing = append(missing, required)
		}
	}
	if !cols.has(colAmount) && !cols.has(colDebit) && !cols.has(colCredit) {
		missing = append(missing, "amount (or debit/credit)")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", importDomain.ErrMissingColumns, strings.Join(missing, ", "))
	}

	return cols, nil
}

func (c columns) has(col string) bool {
	_, ok := c[col]
	return ok
}

func (c columns) get(record []string, col string) string {
	i, ok := c[col]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (c columns) parseRow(record []string, line int) importDomain.Row {
	row := importDomain.Row{
		Line:         line,
		Status:       importDomain.StatusValid,
		Description:  c.get(record, colDescription),
		CategoryName: c.get(record, colCategory),
		Provider:     c.get(record, colProvider),
	}

	if raw := c.get(record, colDate); raw == "" {
		row.AddError("date is required")
	} else if date, err := parseDate(raw); err != nil {
		row.AddError(fmt.Sprintf("invalid date %q: expected YYYY-MM-DD or DD/MM/YYYY", raw))
	} else {
		row.Date = date
	}

	if row.Description == "" {
		row.AddError("description is required")
	}

	c.parseAmount(record, &row)
	c.parseGST(record, &row)

	return row
}

// parseAmount sets the row's kind and amount. Amounts are stored as
// magnitudes. An explicit type column decides the kind, otherwise debit and
// credit columns do, otherwise a negative amount is an expense.
func (c columns) parseAmount(record []string, row *importDomain.Row) {
	var explicit ledgerDomain.Kind
	if raw := c.get(record, colType); raw != "" {
		kind, err := ledgerDomain.ParseKind(raw)
		if err != nil {
			row.AddError(fmt.Sprintf("invalid type %q: must be income or expense", raw))
		}
		explicit = kind
	}

	amount, inferred, ok := c.signedAmount(record, row)
	if !ok {
		return
	}
	if amount == 0 {
		row.AddError("amount must not be zero")
		return
	}

	row.AmountCents = abs(amount)
	row.Kind = inferred
	if explicit != "" {
		row.Kind = explicit
	}
}

func (c columns) signedAmount(record []string, row *importDomain.Row) (int64, ledgerDomain.Kind, bool) {
	if raw := c.get(record, colAmount); raw != "" {
		amount, err := ledgerDomain.ParseAmountToCents(raw)
		if err != nil {
			row.AddError(fmt.Sprintf("invalid amount %q", raw))
			return 0, "", false
		}
		if amount < 0 {
			return amount, ledgerDomain.KindExpense, true
		}
		return amount, ledgerDomain.KindIncome, true
	}

	debit, debitOK := c.cents(record, colDebit, row)
	credit, creditOK := c.cents(record, colCredit, row)
	if !debitOK || !creditOK {
		return 0, "", false
	}

	switch {
	case debit != 0 && credit != 0:
		row.AddError("only one of debit and credit may be set")
		return 0, "", false
	case debit != 0:
		return debit, ledgerDomain.KindExpense, true
	case credit != 0:
		return credit, ledgerDomain.KindIncome, true
	default:
		row.AddError("amount is required")
		return 0, "", false
	}
}

// cents parses an optional money column. A blank cell is zero.
func (c columns) cents(record []string, col string, row *importDomain.Row) (int64, bool) {
	raw := c.get(record, col)
	if raw == "" {
		return 0, true
	}
	amount, err := ledgerDomain.ParseAmountToCents(raw)
	if err != nil {
		row.AddError(fmt.Sprintf("invalid %s %q", col, raw))
		return 0, false
	}
	return abs(amount), true
}

func (c columns) parseGST(record []string, row *importDomain.Row) {
	raw := c.get(record, colGST)
	if raw == "" {
		return
	}
	gst, err := ledgerDomain.ParseAmountToCents(raw)
	if err != nil {
		row.AddError(fmt.Sprintf("invalid gst %q", raw))
		return
	}
	gst = abs(gst)
	if row.AmountCents != 0 && gst > row.AmountCents {
		row.AddError("gst must not exceed the amount")
		return
	}
	row.GSTCents = &gst
}

func parseDate(raw string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

func isBlankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
