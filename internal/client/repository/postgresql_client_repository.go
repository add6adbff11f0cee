// Package repository implements client persistence for PostgreSQL, MySQL and SQLite.
//
// Name and ABN columns hold the "nonce:tag:ciphertext" form produced by the field
// encryptor. Rows written before encryption was introduced are still readable and
// can be rewritten with ListLegacyIDs plus a Get/Update round trip.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	clientDomain "github.com/allisson/taxledger/internal/client/domain"
	cryptoDomain "github.com/allisson/taxledger/internal/crypto/domain"
	cryptoService "github.com/allisson/taxledger/internal/crypto/service"
	"github.com/allisson/taxledger/internal/database"
	apperrors "github.com/allisson/taxledger/internal/errors"
)

// PostgreSQLClientRepository implements Client persistence for PostgreSQL.
type PostgreSQLClientRepository struct {
	db    *sql.DB
	codec cryptoService.FieldEncryptor
}

// Create encrypts the sensitive columns and inserts a new client.
func (p *PostgreSQLClientRepository) Create(ctx context.Context, client *clientDomain.Client) error {
	querier := database.GetTx(ctx, p.db)

	name, abn, err := encryptSensitive(p.codec, client)
	if err != nil {
		return err
	}

	query := `INSERT INTO clients (id, name, abn, email, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = querier.ExecContext(
		ctx,
		query,
		client.ID,
		name,
		abn,
		client.Email,
		client.CreatedAt,
		client.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create client")
	}
	return nil
}

// Update re-encrypts the sensitive columns and updates an existing client.
// Returns ErrClientNotFound when no row matches the client ID.
func (p *PostgreSQLClientRepository) Update(ctx context.Context, client *clientDomain.Client) error {
	querier := database.GetTx(ctx, p.db)

	name, abn, err := encryptSensitive(p.codec, client)
	if err != nil {
		return err
	}

	query := `UPDATE clients
			  SET name = $1,
				  abn = $2,
				  email = $3,
				  updated_at = $4
			  WHERE id = $5`

	result, err := querier.ExecContext(ctx, query, name, abn, client.Email, client.UpdatedAt, client.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update client")
	}
	return checkAffected(result)
}

// Delete removes a client. Ledger entries referencing it keep their data and
// lose the reference. Returns ErrClientNotFound when no row matches.
func (p *PostgreSQLClientRepository) Delete(ctx context.Context, clientID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, clientID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete client")
	}
	return checkAffected(result)
}

// Get retrieves and decrypts a client by ID.
func (p *PostgreSQLClientRepository) Get(ctx context.Context, clientID uuid.UUID) (*clientDomain.Client, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, abn, email, created_at, updated_at FROM clients WHERE id = $1`

	var row clientRow
	err := querier.QueryRowContext(ctx, query, clientID).Scan(
		&row.ID,
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

	return row.toDomain(p.codec)
}

// List retrieves clients ordered by ID descending with pagination support.
func (p *PostgreSQLClientRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*clientDomain.Client, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, abn, email, created_at, updated_at
			  FROM clients
			  ORDER BY id DESC
			  LIMIT $1 OFFSET $2`

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
		if err := rows.Scan(&row.ID, &row.Name, &row.ABN, &row.Email, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan client row")
		}

		client, err := row.toDomain(p.codec)
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
func (p *PostgreSQLClientRepository) ListLegacyIDs(ctx context.Context, limit int) ([]uuid.UUID, error) {
	querier := database.GetTx(ctx, p.db)

	rows, err := querier.QueryContext(ctx, `SELECT id, name, abn FROM clients ORDER BY id`)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to scan clients for legacy values")
	}
	defer func() {
		_ = rows.Close()
	}()

	ids := make([]uuid.UUID, 0)
	for rows.Next() && len(ids) < limit {
		var id uuid.UUID
		var name string
		var abn sql.NullString
		if err := rows.Scan(&id, &name, &abn); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan client row")
		}
		if isLegacy(name, abn) {
			ids = append(ids, id)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating client rows")
	}

	return ids, nil
}

// NewPostgreSQLClientRepository creates a new PostgreSQL Client repository.
func NewPostgreSQLClientRepository(
	db *sql.DB,
	codec cryptoService.FieldEncryptor,
) *PostgreSQLClientRepository {
	return &PostgreSQLClientRepository{db: db, codec: codec}
}

// clientRow is the stored shape of a client before decryption.
type clientRow struct {
	ID        uuid.UUID
	Name      string
	ABN       sql.NullString
	Email     sql.NullString
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *clientRow) toDomain(codec cryptoService.FieldEncryptor) (*clientDomain.Client, error) {
	name, err := codec.Decrypt(r.Name)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to decrypt name of client %s", r.ID)
	}

	abn, err := codec.DecryptOptional(nullStringPtr(r.ABN))
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to decrypt abn of client %s", r.ID)
	}

	return &clientDomain.Client{
		ID:        r.ID,
		Name:      name,
		ABN:       abn,
		Email:     nullStringPtr(r.Email),
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}, nil
}

func encryptSensitive(
	codec cryptoService.FieldEncryptor,
	client *clientDomain.Client,
) (name string, abn *string, err error) {
	name, err = codec.Encrypt(client.Name)
	if err != nil {
		return "", nil, apperrors.Wrap(err, "failed to encrypt client name")
	}
	abn, err = codec.EncryptOptional(client.ABN)
	if err != nil {
		return "", nil, apperrors.Wrap(err, "failed to encrypt client abn")
	}
	return name, abn, nil
}

func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return clientDomain.ErrClientNotFound
	}
	return nil
}

func isLegacy(name string, abn sql.NullString) bool {
	if !cryptoDomain.IsEncrypted(name) {
		return true
	}
	return abn.Valid && !cryptoDomain.IsEncrypted(abn.String)
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
