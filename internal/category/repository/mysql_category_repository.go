package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	categoryDomain "github.com/allisson/taxledger/internal/category/domain"
	"github.com/allisson/taxledger/internal/database"
	apperrors "github.com/allisson/taxledger/internal/errors"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
)

// MySQLCategoryRepository implements Category persistence for MySQL and SQLite.
type MySQLCategoryRepository struct {
	db *sql.DB
}

// Create inserts a new category. Returns ErrCategoryAlreadyExists when the
// (name, kind) pair is taken.
func (m *MySQLCategoryRepository) Create(ctx context.Context, category *categoryDomain.Category) error {
	querier := database.GetTx(ctx, m.db)

	id, err := category.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal category id")
	}

	query := `INSERT INTO categories (id, name, kind, created_at) VALUES (?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query, id, category.Name, string(category.Kind), category.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return categoryDomain.ErrCategoryAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create category")
	}
	return nil
}

// Delete removes a category. Entries that used it become uncategorised.
func (m *MySQLCategoryRepository) Delete(ctx context.Context, categoryID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	id, err := categoryID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal category id")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete category")
	}
	return checkAffected(result)
}

// Get retrieves a category by ID.
func (m *MySQLCategoryRepository) Get(ctx context.Context, categoryID uuid.UUID) (*categoryDomain.Category, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := categoryID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal category id")
	}

	var idBytes []byte
	var category categoryDomain.Category
	err = querier.QueryRowContext(ctx, `SELECT id, name, kind, created_at FROM categories WHERE id = ?`, id).
		Scan(&idBytes, &category.Name, &category.Kind, &category.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, categoryDomain.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get category")
	}

	if err := category.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal category id")
	}
	category.CreatedAt = category.CreatedAt.UTC()
	return &category, nil
}

// List retrieves categories ordered by kind and name. An empty kind lists both kinds.
func (m *MySQLCategoryRepository) List(
	ctx context.Context,
	kind ledgerDomain.Kind,
) ([]*categoryDomain.Category, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, kind, created_at
			  FROM categories
			  WHERE (? = '' OR kind = ?)
			  ORDER BY kind, name`

	rows, err := querier.QueryContext(ctx, query, string(kind), string(kind))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list categories")
	}
	defer func() {
		_ = rows.Close()
	}()

	categories := make([]*categoryDomain.Category, 0)
	for rows.Next() {
		var idBytes []byte
		var category categoryDomain.Category
		if err := rows.Scan(&idBytes, &category.Name, &category.Kind, &category.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan category row")
		}
		if err := category.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal category id")
		}
		category.CreatedAt = category.CreatedAt.UTC()
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating category rows")
	}

	return categories, nil
}

// NewMySQLCategoryRepository creates a new MySQL (or SQLite) Category repository.
func NewMySQLCategoryRepository(db *sql.DB) *MySQLCategoryRepository {
	return &MySQLCategoryRepository{db: db}
}
