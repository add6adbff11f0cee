// Package usecase defines business logic interfaces for client management.
package usecase

import (
	"context"

	"github.com/google/uuid"

	clientDomain "github.com/allisson/taxledger/internal/client/domain"
)

// ClientRepository defines persistence operations for clients. Implementations
// encrypt and decrypt the sensitive columns and honour the transaction carried
// by ctx.
type ClientRepository interface {
	Create(ctx context.Context, client *clientDomain.Client) error
	Update(ctx context.Context, client *clientDomain.Client) error
	Delete(ctx context.Context, clientID uuid.UUID) error

	// Get retrieves a client by ID. Returns ErrClientNotFound if not found.
	Get(ctx context.Context, clientID uuid.UUID) (*clientDomain.Client, error)

	List(ctx context.Context, offset, limit int) ([]*clientDomain.Client, error)

	// ListLegacyIDs returns up to limit IDs of clients that still hold plaintext
	// in an encrypted column.
	ListLegacyIDs(ctx context.Context, limit int) ([]uuid.UUID, error)
}

// ClientUseCase defines business logic operations for managing clients.
type ClientUseCase interface {
	// Create validates and stores a new client. The ABN is normalised to its
	// 11 digits before the checksum is verified.
	Create(ctx context.Context, input *clientDomain.CreateClientInput) (*clientDomain.Client, error)

	// Update replaces the mutable fields of an existing client.
	// Returns ErrClientNotFound if the client doesn't exist.
	Update(ctx context.Context, clientID uuid.UUID, input *clientDomain.UpdateClientInput) (*clientDomain.Client, error)

	// Get retrieves a client by ID.
	Get(ctx context.Context, clientID uuid.UUID) (*clientDomain.Client, error)

	// Delete removes a client. Ledger entries keep their amounts but lose the link.
	Delete(ctx context.Context, clientID uuid.UUID) error

	// List retrieves clients ordered by ID descending with pagination support.
	List(ctx context.Context, offset, limit int) ([]*clientDomain.Client, error)

	// EncryptLegacy rewrites clients whose sensitive fields predate encryption,
	// batchSize rows per transaction, and returns how many were rewritten.
	EncryptLegacy(ctx context.Context, batchSize int) (int, error)
}
