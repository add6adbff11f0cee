package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/taxledger/internal/database"
	apperrors "github.com/allisson/taxledger/internal/errors"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
)

// MySQLEntryRepository implements ledger entry persistence for MySQL and SQLite.
// UUIDs are stored as 16 raw bytes.
type MySQLEntryRepository struct {
	db *sql.DB
}

// Create inserts a new entry. Unknown category or client IDs yield ErrUnknownReference.
func (m *MySQLEntryRepository) Create(ctx context.Context, entry *ledgerDomain.Entry) error {
	querier := database.GetTx(ctx, m.db)

	id, err := entry.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal entry id")
	}

	query := `INSERT INTO ledger_entries (` + entryColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		string(entry.Kind),
		entry.Date,
		entry.Description,
		entry.AmountCents,
		entry.GSTCents,
		binaryUUID(entry.CategoryID),
		binaryUUID(entry.ClientID),
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
func (m *MySQLEntryRepository) Update(ctx context.Context, entry *ledgerDomain.Entry) error {
	querier := database.GetTx(ctx, m.db)

	id, err := entry.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal entry id")
	}

	query := `UPDATE ledger_entries
			  SET entry_date = ?,
				  description = ?,
				  amount_cents = ?,
				  gst_cents = ?,
				  category_id = ?,
				  client_id = ?,
				  provider = ?,
				  updated_at = ?
			  WHERE id = ? AND kind = ?`

	result, err := querier.ExecContext(
		ctx,
		query,
		entry.Date,
		entry.Description,
		entry.AmountCents,
		entry.GSTCents,
		binaryUUID(entry.CategoryID),
		binaryUUID(entry.ClientID),
		entry.Provider,
		entry.UpdatedAt,
		id,
		string(entry.Kind),
	)
	if err != nil {
		return translateWriteError(err, "failed to update entry")
	}
	return checkAffected(result)
}

// Delete removes an entry of the given kind.
func (m *MySQLEntryRepository) Delete(ctx context.Context, kind ledgerDomain.Kind, entryID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	id, err := entryID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal entry id")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM ledger_entries WHERE id = ? AND kind = ?`, id, string(kind))
	if err != nil {
		return apperrors.Wrap(err, "failed to delete entry")
	}
	return checkAffected(result)
}

// Get retrieves an entry of the given kind by ID.
func (m *MySQLEntryRepository) Get(
	ctx context.Context,
	kind ledgerDomain.Kind,
	entryID uuid.UUID,
) (*ledgerDomain.Entry, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := entryID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal entry id")
	}

	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE id = ? AND kind = ?`

	entry, err := scanBinaryEntry(querier.QueryRowContext(ctx, query, id, string(kind)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledgerDomain.ErrEntryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get entry")
	}
	return entry, nil
}

// List retrieves entries matching q, newest date first.
func (m *MySQLEntryRepository) List(ctx context.Context, q ledgerDomain.Query) ([]*ledgerDomain.Entry, error) {
	querier := database.GetTx(ctx, m.db)

	where, args := buildWhere(q.Kind, q.From, q.To, questionPlaceholder)
	query := `SELECT ` + entryColumns + ` FROM ledger_entries` + where + ` ORDER BY entry_date DESC, id DESC`
	if q.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
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
		entry, err := scanBinaryEntry(rows)
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
func (m *MySQLEntryRepository) Totals(ctx context.Context, from, to time.Time) (ledgerDomain.Totals, error) {
	querier := database.GetTx(ctx, m.db)
	return queryTotals(ctx, querier, questionPlaceholder, from, to)
}

// NewMySQLEntryRepository creates a new MySQL (or SQLite) entry repository.
func NewMySQLEntryRepository(db *sql.DB) *MySQLEntryRepository {
	return &MySQLEntryRepository{db: db}
}

func scanBinaryEntry(row rowScanner) (*ledgerDomain.Entry, error) {
	var entry ledgerDomain.Entry
	var kind string
	var idBytes, categoryBytes, clientBytes []byte

	err := row.Scan(
		&idBytes,
		&kind,
		&entry.Date,
		&entry.Description,
		&entry.AmountCents,
		&entry.GSTCents,
		&categoryBytes,
		&clientBytes,
		&entry.Provider,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := entry.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal entry id")
	}
	if entry.CategoryID, err = optionalBinaryUUID(categoryBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal category id")
	}
	if entry.ClientID, err = optionalBinaryUUID(clientBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal client id")
	}

	entry.Kind = ledgerDomain.Kind(kind)
	normalizeTimes(&entry)
	return &entry, nil
}

// binaryUUID returns the 16 byte form of id, or nil for SQL NULL.
func binaryUUID(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	b, _ := id.MarshalBinary()
	return b
}

func optionalBinaryUUID(b []byte) (*uuid.UUID, error) {
	if b == nil {
		return nil, nil
	}
	var id uuid.UUID
	if err := id.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return &id, nil
}
