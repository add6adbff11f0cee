package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	clientDomain "github.com/allisson/taxledger/internal/client/domain"
	"github.com/allisson/taxledger/internal/database"
	apperrors "github.com/allisson/taxledger/internal/errors"
	customValidation "github.com/allisson/taxledger/internal/validation"
)

// clientUseCase implements ClientUseCase.
type clientUseCase struct {
	txManager  database.TxManager
	clientRepo ClientRepository
}

// Create normalises the input and persists a new client.
func (c *clientUseCase) Create(
	ctx context.Context,
	input *clientDomain.CreateClientInput,
) (*clientDomain.Client, error) {
	name, abn, email, err := normalize(input.Name, input.ABN, input.Email)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	client := &clientDomain.Client{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      name,
		ABN:       abn,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Update loads the client, replaces its mutable fields and saves it.
func (c *clientUseCase) Update(
	ctx context.Context,
	clientID uuid.UUID,
	input *clientDomain.UpdateClientInput,
) (*clientDomain.Client, error) {
	name, abn, email, err := normalize(input.Name, input.ABN, input.Email)
	if err != nil {
		return nil, err
	}

	var client *clientDomain.Client
	err = c.txManager.WithTx(ctx, func(ctx context.Context) error {
		existing, err := c.clientRepo.Get(ctx, clientID)
		if err != nil {
			return err
		}

		existing.Name = name
		existing.ABN = abn
		existing.Email = email
		existing.UpdatedAt = time.Now().UTC()

		if err := c.clientRepo.Update(ctx, existing); err != nil {
			return err
		}
		client = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

// Get retrieves a client by ID.
func (c *clientUseCase) Get(ctx context.Context, clientID uuid.UUID) (*clientDomain.Client, error) {
	return c.clientRepo.Get(ctx, clientID)
}

// Delete removes a client by ID.
func (c *clientUseCase) Delete(ctx context.Context, clientID uuid.UUID) error {
	return c.clientRepo.Delete(ctx, clientID)
}

// List retrieves clients with pagination support.
func (c *clientUseCase) List(ctx context.Context, offset, limit int) ([]*clientDomain.Client, error) {
	return c.clientRepo.List(ctx, offset, limit)
}

// EncryptLegacy reads each legacy client (which passes plaintext through) and
// saves it again, which stores the encrypted form. It stops when a batch comes
// back empty.
func (c *clientUseCase) EncryptLegacy(ctx context.Context, batchSize int) (int, error) {
	if batchSize <= 0 {
		return 0, apperrors.Wrap(apperrors.ErrInvalidInput, "batch size must be greater than zero")
	}

	total := 0
	for {
		var rewritten int
		err := c.txManager.WithTx(ctx, func(ctx context.Context) error {
			ids, err := c.clientRepo.ListLegacyIDs(ctx, batchSize)
			if err != nil {
				return err
			}

			for _, id := range ids {
				client, err := c.clientRepo.Get(ctx, id)
				if err != nil {
					return err
				}
				if err := c.clientRepo.Update(ctx, client); err != nil {
					return err
				}
				rewritten++
			}
			return nil
		})
		if err != nil {
			return total, err
		}

		total += rewritten
		if rewritten < batchSize {
			return total, nil
		}
	}
}

// normalize trims the input, strips ABN grouping spaces and checks the ABN.
// Empty optional values become nil.
func normalize(name string, abn, email *string) (string, *string, *string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, nil, apperrors.Wrap(apperrors.ErrInvalidInput, "name must not be blank")
	}

	abn = trimOptional(abn)
	if abn != nil {
		normalized := customValidation.NormalizeABN(*abn)
		if !customValidation.IsValidABN(normalized) {
			return "", nil, nil, clientDomain.ErrInvalidABN
		}
		abn = &normalized
	}

	return name, abn, trimOptional(email), nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// NewClientUseCase creates a new ClientUseCase with the provided dependencies.
func NewClientUseCase(txManager database.TxManager, clientRepo ClientRepository) ClientUseCase {
	return &clientUseCase{
		txManager:  txManager,
		clientRepo: clientRepo,
	}
}
