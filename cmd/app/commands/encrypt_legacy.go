package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	clientUseCase "github.com/allisson/taxledger/internal/client/usecase"
)

// RunEncryptLegacyClients encrypts client fields that were written in plaintext,
// batchSize clients per transaction. Running it again after completion reports zero.
//
// Requirements: Database must be migrated and FIELD_ENCRYPTION_KEY must be set.
func RunEncryptLegacyClients(
	ctx context.Context,
	useCase clientUseCase.ClientUseCase,
	logger *slog.Logger,
	w io.Writer,
	batchSize int,
	format string,
) error {
	if batchSize <= 0 {
		return fmt.Errorf("batch size must be a positive number, got: %d", batchSize)
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("encrypting legacy clients", slog.Int("batch_size", batchSize))

	count, err := useCase.EncryptLegacy(ctx, batchSize)
	if err != nil {
		return fmt.Errorf("failed to encrypt legacy clients: %w", err)
	}

	logger.Info("legacy encryption completed", slog.Int("count", count))

	return render(w, format, map[string]any{"encrypted": count}, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Encrypted %d legacy client(s)\n", count)
		return err
	})
}
