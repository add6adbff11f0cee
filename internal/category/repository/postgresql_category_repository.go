// Package repository implements category persistence for PostgreSQL, MySQL and SQLite.
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

// PostgreSQLCategoryRepository implements Category persistence for PostgreSQL.
type PostgreSQLCategoryRepository struct {
	db *sql.DB
}

// Create inserts a new category. Returns ErrCategoryAlreadyExists when the
// (name, kind) pair is taken.
func (p *PostgreSQLCategoryRepository) Create(ctx context.Context, category *categoryDomain.Category) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO categories (id, name, kind, created_at) VALUES ($1, $2, $3, $4)`

	_, err := querier.ExecContext(ctx, query, category.ID, category.Name, category.Kind, category.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return categoryDomain.ErrCategoryAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create category")
	}
	return nil
}

// Delete removes a category. Entries that used it become uncategorised.
func (p *PostgreSQLCategoryRepository) Delete(ctx context.Context, categoryID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, categoryID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete category")
	}
	return checkAffected(result)
}

// Get retrieves a category by ID.
func (p *PostgreSQLCategoryRepository) Get(
	ctx context.Context,
	categoryID uuid.UUID,
) (*categoryDomain.Category, error) {
	querier := database.GetTx(ctx, p.db)

	var category categoryDomain.Category
	err := querier.QueryRowContext(ctx, `SELECT id, name, kind, created_at FROM categories WHERE id = $1`, categoryID).
		Scan(&category.ID, &category.Name, &category.Kind, &category.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, categoryDomain.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get category")
	}

	category.CreatedAt = category.CreatedAt.UTC()
	return &category, nil
}

// List retrieves categories ordered by kind and name. An empty kind lists both kinds.
func (p *PostgreSQLCategoryRepository) List(
	ctx context.Context,
	kind ledgerDomain.Kind,
) ([]*categoryDomain.Category, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, kind, created_at
			  FROM categories
			  WHERE ($1::text = '' OR kind = $1::text)
			  ORDER BY kind, name`

	rows, err := querier.QueryContext(ctx, query, string(kind))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list categories")
	}
	defer func() {
		_ = rows.Close()
	}()

	categories := make([]*categoryDomain.Category, 0)
	for rows.Next() {
		var category categoryDomain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Kind, &category.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan category row")
		}
		category.CreatedAt = category.CreatedAt.UTC()
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating category rows")
	}

	return categories, nil
}

// NewPostgreSQLCategoryRepository creates a new PostgreSQL Category repository.
func NewPostgreSQLCategoryRepository(db *sql.DB) *PostgreSQLCategoryRepository {
	return &PostgreSQLCategoryRepository{db: db}
}

func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return categoryDomain.ErrCategoryNotFound
	}
	return nil
}
