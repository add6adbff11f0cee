package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	clientDomain "github.com/allisson/taxledger/internal/client/domain"
	cryptoService "github.com/allisson/taxledger/internal/crypto/service"
	"github.com/allisson/taxledger/internal/database"
	apperrors "github.com/allisson/taxledger/internal/errors"
)

// MySQLClientRepository implements Client persistence for MySQL and SQLite.
// Uses BINARY(16) (BLOB on SQLite) for UUID storage and "?" placeholders.
type MySQLClientRepository struct {
	db    *sql.DB
	codec cryptoService.FieldEncryptor
}

// Create encrypts the sensitive columns and inserts a new client.
func (m *MySQLClientRepository) Create(ctx context.Context, client *clientDomain.Client) error {
	querier := database.GetTx(ctx, m.db)

	name, abn, err := encryptSensitive(m.codec, client)
	if err != nil {
		return err
	}

	id, err := client.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal client id")
	}

	query := `INSERT INTO clients (id, name, abn, email, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query, id, name, abn, client.Email, client.CreatedAt, client.UpdatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create client")
	}
	return nil
}

// Update re-encrypts the sensitive columns and updates an existing client.
// A fresh nonce is drawn on every write, so a matched row always reports a change.
func (m *MySQLClientRepository) Update(ctx context.Context, client *clientDomain.Client) error {
	querier := database.GetTx(ctx, m.db)

	name, abn, err := encryptSensitive(m.codec, client)
	if err != nil {
		return err
	}

	id, err := client.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal client id")
	}

	query := `UPDATE clients
			  SET name = ?,
				  abn = ?,
				  email = ?,
				  updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, name, abn, client.Email, client.UpdatedAt, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update client")
	}
	return checkAffected(result)
}

// Delete removes a client. Returns ErrClientNotFound when no row matches.
func (m *MySQLClientRepository) Delete(ctx context.Context, clientID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	id, err := clientID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal client id")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete client")
	}
	return checkAffected(result)
}

// Get retrieves and decrypts a client by ID.
func (m *MySQLClientRepository) Get(ctx context.Context, clientID uuid.UUID) (*clientDomain.Client, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := clientID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal client id")
	}

	query := `SELECT id, name, abn, email, created_at, updated_at FROM clients WHERE id = ?`

	var row clientRow
	var idBytes []byte
	err = querier.QueryRowContext(ctx, query, id).Scan(
		&idBytes,
		&row.Name,
		&row.ABN,
		&row.Email,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, clientDomain.ErrClientNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get client")
	}

	if err := row.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal client id")
	}

	return row.toDomain(m.codec)
}

// List retrieves clients ordered by ID descending with pagination support.
func (m *MySQLClientRepository) List(ctx context.Context, offset, limit int) ([]*clientDomain.Client, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, abn, email, created_at, updated_at
			  FROM clients
			  ORDER BY id DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list clients")
	}
	defer func() {
		_ = rows.Close()
	}()

	clients := make([]*clientDomain.Client, 0)
	for rows.Next() {
		var row clientRow
		var idBytes []byte
		if err := rows.Scan(&idBytes, &row.Name, &row.ABN, &row.Email, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan client row")
		}

		if err := row.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal client id")
		}

		client, err := row.toDomain(m.codec)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating client rows")
	}

	return clients, nil
}

// ListLegacyIDs returns up to limit IDs of clients whose name or ABN is still
// stored as plaintext, in ID order.
func (m *MySQLClientRepository) ListLegacyIDs(ctx context.Context, limit int) ([]uuid.UUID, error) {
	querier := database.GetTx(ctx, m.db)

	rows, err := querier.QueryContext(ctx, `SELECT id, name, abn FROM clients ORDER BY id`)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to scan clients for legacy values")
	}
	defer func() {
		_ = rows.Close()
	}()

	ids := make([]uuid.UUID, 0)
	for rows.Next() && len(ids) < limit {
		var idBytes []byte
		var name string
		var abn sql.NullString
		if err := rows.Scan(&idBytes, &name, &abn); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan client row")
		}
		if !isLegacy(name, abn) {
			continue
		}

		var id uuid.UUID
		if err := id.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal client id")
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating client rows")
	}

	return ids, nil
}

// NewMySQLClientRepository creates a new MySQL (or SQLite) Client repository.
func NewMySQLClientRepository(db *sql.DB, codec cryptoService.FieldEncryptor) *MySQLClientRepository {
	return &MySQLClientRepository{db: db, codec: codec}
}
