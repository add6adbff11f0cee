// Package domain defines income and expense categories.
package domain

import (
	"time"

	"github.com/google/uuid"

	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
)

// Category groups ledger entries of one kind for reporting ("Software",
// "Consulting fees"). Names are unique per kind.
type Category struct {
	ID        uuid.UUID
	Name      string
	Kind      ledgerDomain.Kind
	CreatedAt time.Time
}

// CreateCategoryInput contains the parameters for creating a category.
type CreateCategoryInput struct {
	Name string
	Kind ledgerDomain.Kind
}
