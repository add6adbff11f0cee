package commands

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	clientMocks "github.com/allisson/taxledger/internal/client/usecase/mocks"
)

func TestRunEncryptLegacyClients(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := clientMocks.NewMockClientUseCase(t)
		mockUseCase.On("EncryptLegacy", ctx, 50).Return(7, nil).Once()

		var out bytes.Buffer
		err := RunEncryptLegacyClients(ctx, mockUseCase, logger, &out, 50, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Encrypted 7 legacy client(s)")
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := clientMocks.NewMockClientUseCase(t)
		mockUseCase.On("EncryptLegacy", ctx, 100).Return(0, nil).Once()

		var out bytes.Buffer
		err := RunEncryptLegacyClients(ctx, mockUseCase, logger, &out, 100, "json")

		require.NoError(t, err)
		require.JSONEq(t, `{"encrypted": 0}`, out.String())
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := clientMocks.NewMockClientUseCase(t)
		mockUseCase.On("EncryptLegacy", ctx, 10).Return(0, errors.New("db down")).Once()

		err := RunEncryptLegacyClients(ctx, mockUseCase, logger, &bytes.Buffer{}, 10, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to encrypt legacy clients: db down")
	})

	t.Run("invalid-batch-size", func(t *testing.T) {
		mockUseCase := clientMocks.NewMockClientUseCase(t)
		err := RunEncryptLegacyClients(ctx, mockUseCase, logger, &bytes.Buffer{}, 0, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "batch size must be a positive number")
	})

	t.Run("invalid-format", func(t *testing.T) {
		mockUseCase := clientMocks.NewMockClientUseCase(t)
		err := RunEncryptLegacyClients(ctx, mockUseCase, logger, &bytes.Buffer{}, 10, "xml")

		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid format")
	})
}
