// Package repository implements ledger entry persistence for PostgreSQL, MySQL and SQLite.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/taxledger/internal/database"
	apperrors "github.com/allisson/taxledger/internal/errors"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
)

const entryColumns = `id, kind, entry_date, description, amount_cents, gst_cents,
				  category_id, client_id, provider, created_at, updated_at`

// PostgreSQLEntryRepository implements ledger entry persistence for PostgreSQL.
type PostgreSQLEntryRepository struct {
	db *sql.DB
}

// Create inserts a new entry. Unknown category or client IDs yield ErrUnknownReference.
func (p *PostgreSQLEntryRepository) Create(ctx context.Context, entry *ledgerDomain.Entry) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO ledger_entries (` + entryColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := querier.ExecContext(
		ctx,
		query,
		entry.ID,
		string(entry.Kind),
		entry.Date,
		entry.Description,
		entry.AmountCents,
		entry.GSTCents,
		nullUUID(entry.CategoryID),
		nullUUID(entry.ClientID),
		entry.Provider,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "failed to create entry")
	}
	return nil
}

// Update saves the mutable fields of an entry of the same kind.
func (p *PostgreSQLEntryRepository) Update(ctx context.Context, entry *ledgerDomain.Entry) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE ledger_entries
			  SET entry_date = $1,
				  description = $2,
				  amount_cents = $3,
				  gst_cents = $4,
				  category_id = $5,
				  client_id = $6,
				  provider = $7,
				  updated_at = $8
			  WHERE id = $9 AND kind = $10`

	result, err := querier.ExecContext(
		ctx,
		query,
		entry.Date,
		entry.Description,
		entry.AmountCents,
		entry.GSTCents,
		nullUUID(entry.CategoryID),
		nullUUID(entry.ClientID),
		entry.Provider,
		entry.UpdatedAt,
		entry.ID,
		string(entry.Kind),
	)
	if err != nil {
		return translateWriteError(err, "failed to update entry")
	}
	return checkAffected(result)
}

// Delete removes an entry of the given kind.
func (p *PostgreSQLEntryRepository) Delete(ctx context.Context, kind ledgerDomain.Kind, entryID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(
		ctx,
		`DELETE FROM ledger_entries WHERE id = $1 AND kind = $2`,
		entryID,
		string(kind),
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete entry")
	}
	return checkAffected(result)
}

// Get retrieves an entry of the given kind by ID.
func (p *PostgreSQLEntryRepository) Get(
	ctx context.Context,
	kind ledgerDomain.Kind,
	entryID uuid.UUID,
) (*ledgerDomain.Entry, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE id = $1 AND kind = $2`

	entry, err := scanPostgresEntry(querier.QueryRowContext(ctx, query, entryID, string(kind)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledgerDomain.ErrEntryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get entry")
	}
	return entry, nil
}

// List retrieves entries matching q, newest date first.
func (p *PostgreSQLEntryRepository) List(ctx context.Context, q ledgerDomain.Query) ([]*ledgerDomain.Entry, error) {
	querier := database.GetTx(ctx, p.db)

	where, args := buildWhere(q.Kind, q.From, q.To, dollarPlaceholder)
	query := `SELECT ` + entryColumns + ` FROM ledger_entries` + where + ` ORDER BY entry_date DESC, id DESC`
	if q.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %s OFFSET %s", dollarPlaceholder(len(args)+1), dollarPlaceholder(len(args)+2))
		args = append(args, q.Limit, q.Offset)
	}

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list entries")
	}
	defer func() {
		_ = rows.Close()
	}()

	entries := make([]*ledgerDomain.Entry, 0)
	for rows.Next() {
		entry, err := scanPostgresEntry(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan entry row")
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating entry rows")
	}

	return entries, nil
}

// Totals sums amounts and GST per kind for entries dated within [from, to].
func (p *PostgreSQLEntryRepository) Totals(ctx context.Context, from, to time.Time) (ledgerDomain.Totals, error) {
	querier := database.GetTx(ctx, p.db)
	return queryTotals(ctx, querier, dollarPlaceholder, from, to)
}

// NewPostgreSQLEntryRepository creates a new PostgreSQL entry repository.
func NewPostgreSQLEntryRepository(db *sql.DB) *PostgreSQLEntryRepository {
	return &PostgreSQLEntryRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPostgresEntry(row rowScanner) (*ledgerDomain.Entry, error) {
	var entry ledgerDomain.Entry
	var kind string
	var categoryID, clientID uuid.NullUUID

	err := row.Scan(
		&entry.ID,
		&kind,
		&entry.Date,
		&entry.Description,
		&entry.AmountCents,
		&entry.GSTCents,
		&categoryID,
		&clientID,
		&entry.Provider,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Kind = ledgerDomain.Kind(kind)
	entry.CategoryID = uuidPtr(categoryID)
	entry.ClientID = uuidPtr(clientID)
	normalizeTimes(&entry)
	return &entry, nil
}

func dollarPlaceholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

func questionPlaceholder(int) string {
	return "?"
}

// buildWhere returns the WHERE clause (with a leading space) and its arguments.
func buildWhere(
	kind ledgerDomain.Kind,
	from, to *time.Time,
	placeholder func(int) string,
) (string, []any) {
	var conditions []string
	var args []any

	if kind != "" {
		args = append(args, string(kind))
		conditions = append(conditions, "kind = "+placeholder(len(args)))
	}
	if from != nil {
		args = append(args, *from)
		conditions = append(conditions, "entry_date >= "+placeholder(len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conditions = append(conditions, "entry_date <= "+placeholder(len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func queryTotals(
	ctx context.Context,
	querier database.Querier,
	placeholder func(int) string,
	from, to time.Time,
) (ledgerDomain.Totals, error) {
	where, args := buildWhere("", &from, &to, placeholder)
	query := `SELECT kind, COALESCE(SUM(amount_cents), 0), COALESCE(SUM(gst_cents), 0), COUNT(*)
			  FROM ledger_entries` + where + `
			  GROUP BY kind`

	var totals ledgerDomain.Totals

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return totals, apperrors.Wrap(err, "failed to sum entries")
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var kind string
		var kindTotals ledgerDomain.KindTotals
		if err := rows.Scan(&kind, &kindTotals.AmountCents, &kindTotals.GSTCents, &kindTotals.Count); err != nil {
			return totals, apperrors.Wrap(err, "failed to scan totals row")
		}

		switch ledgerDomain.Kind(kind) {
		case ledgerDomain.KindIncome:
			totals.Income = kindTotals
		case ledgerDomain.KindExpense:
			totals.Expense = kindTotals
		}
	}

	if err := rows.Err(); err != nil {
		return totals, apperrors.Wrap(err, "error iterating totals rows")
	}
	return totals, nil
}

func translateWriteError(err error, message string) error {
	if database.IsForeignKeyViolation(err) {
		return ledgerDomain.ErrUnknownReference
	}
	return apperrors.Wrap(err, message)
}

func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return ledgerDomain.ErrEntryNotFound
	}
	return nil
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func uuidPtr(id uuid.NullUUID) *uuid.UUID {
	if !id.Valid {
		return nil
	}
	v := id.UUID
	return &v
}

// normalizeTimes moves scanned timestamps to UTC and strips any time of day
// the driver attached to the entry date.
func normalizeTimes(entry *ledgerDomain.Entry) {
	entry.Date = ledgerDomain.TruncateDay(entry.Date.UTC())
	entry.CreatedAt = entry.CreatedAt.UTC()
	entry.UpdatedAt = entry.UpdatedAt.UTC()
}
