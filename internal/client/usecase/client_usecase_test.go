package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	clientDomain "github.com/allisson/taxledger/internal/client/domain"
	databaseMocks "github.com/allisson/taxledger/internal/database/mocks"
	apperrors "github.com/allisson/taxledger/internal/errors"
)

// mockClientRepository is a mock implementation of ClientRepository for testing.
type mockClientRepository struct {
	mock.Mock
}

func (m *mockClientRepository) Create(ctx context.Context, client *clientDomain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *mockClientRepository) Update(ctx context.Context, client *clientDomain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *mockClientRepository) Delete(ctx context.Context, clientID uuid.UUID) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

func (m *mockClientRepository) Get(ctx context.Context, clientID uuid.UUID) (*clientDomain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clientDomain.Client), args.Error(1)
}

func (m *mockClientRepository) List(ctx context.Context, offset, limit int) ([]*clientDomain.Client, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*clientDomain.Client), args.Error(1)
}

func (m *mockClientRepository) ListLegacyIDs(ctx context.Context, limit int) ([]uuid.UUID, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func strPtr(s string) *string {
	return &s
}

func TestClientUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_NormalizesInput", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockClientRepo := &mockClientRepository{}

		mockClientRepo.On("Create", ctx, mock.MatchedBy(func(client *clientDomain.Client) bool {
			return client.Name == "Acme Pty Ltd" &&
				client.ABN != nil && *client.ABN == "51824753556" &&
				client.Email != nil && *client.Email == "accounts@acme.test" &&
				client.ID != uuid.Nil &&
				!client.CreatedAt.IsZero()
		})).
			Return(nil).
			Once()

		uc := NewClientUseCase(mockTxManager, mockClientRepo)
		client, err := uc.Create(ctx, &clientDomain.CreateClientInput{
			Name:  "  Acme Pty Ltd ",
			ABN:   strPtr("51 824 753 556"),
			Email: strPtr(" accounts@acme.test "),
		})

		require.NoError(t, err)
		assert.Equal(t, "Acme Pty Ltd", client.Name)
		assert.Equal(t, "51824753556", *client.ABN)
		assert.Equal(t, client.CreatedAt, client.UpdatedAt)
		mockClientRepo.AssertExpectations(t)
	})

	t.Run("Success_EmptyOptionalFieldsBecomeNil", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockClientRepo := &mockClientRepository{}

		mockClientRepo.On("Create", ctx, mock.MatchedBy(func(client *clientDomain.Client) bool {
			return client.ABN == nil && client.Email == nil
		})).
			Return(nil).
			Once()

		uc := NewClientUseCase(mockTxManager, mockClientRepo)
		client, err := uc.Create(ctx, &clientDomain.CreateClientInput{
			Name:  "Sole Trader",
			ABN:   strPtr("   "),
			Email: strPtr(""),
		})

		require.NoError(t, err)
		assert.Nil(t, client.ABN)
		assert.Nil(t, client.Email)
		mockClientRepo.AssertExpectations(t)
	})

	t.Run("Error_InvalidABN", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockClientRepo := &mockClientRepository{}

		uc := NewClientUseCase(mockTxManager, mockClientRepo)
		client, err := uc.Create(ctx, &clientDomain.CreateClientInput{
			Name: "Acme Pty Ltd",
			ABN:  strPtr("51 824 753 557"),
		})

		assert.Nil(t, client)
		assert.ErrorIs(t, err, clientDomain.ErrInvalidABN)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		mockClientRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Error_BlankName", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockClientRepo := &mockClientRepository{}

		uc := NewClientUseCase(mockTxManager, mockClientRepo)
		_, err := uc.Create(ctx, &clientDomain.CreateClientInput{Name: "  "})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_RepositoryFails", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockClientRepo := &mockClientRepository{}
		repoErr := errors.New("database error")

		mockClientRepo.On("Create", ctx, mock.Anything).Return(repoErr).Once()

		uc := NewClientUseCase(mockTxManager, mockClientRepo)
		client, err := uc.Create(ctx, &clientDomain.CreateClientInput{Name: "Acme"})

		assert.Nil(t, client)
		assert.Equal(t, repoErr, err)
		mockClientRepo.AssertExpectations(t)
	})
}

func TestClientUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ReplacesFields", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockClientRepo := &mockClientRepository{}

		clientID := uuid.Must(uuid.NewV7())
		existing := &clientDomain.Client{ID: clientID, Name: "Old Name", Email: strPtr("old@acme.test")}

		mockClientRepo.On("Get", mock.Anything, clientID).Return(existing, nil).Once()
		mockClientRepo.On("Update", mock.Anything, mock.MatchedBy(func(client *clientDomain.Client) bool {
			return client.ID == clientID &&
				client.Name == "New Name" &&
				client.Email == nil &&
				*client.ABN == "33051775556" &&
				!client.UpdatedAt.IsZero()
		})).
			Return(nil).
			Once()

		uc := NewClientUseCase(mockTxManager, mockClientRepo)
		client, err := uc.Update(ctx, clientID, &clientDomain.UpdateClientInput{
			Name: "New Name",
			ABN:  strPtr("33 051 775 556"),
		})

		require.NoError(t, err)
		assert.Equal(t, "New Name", client.Name)
		mockClientRepo.AssertExpectations(t)
	})

	t.Run("Error_ClientNotFound", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockClientRepo := &mockClientRepository{}
		clientID := uuid.Must(uuid.NewV7())

		mockClientRepo.On("Get", mock.Anything, clientID).Return(nil, clientDomain.ErrClientNotFound).Once()

		uc := NewClientUseCase(mockTxManager, mockClientRepo)
		client, err := uc.Update(ctx, clientID, &clientDomain.UpdateClientInput{Name: "New Name"})

		assert.Nil(t, client)
		assert.ErrorIs(t, err, clientDomain.ErrClientNotFound)
		mockClientRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestClientUseCase_GetDeleteList(t *testing.T) {
	ctx := context.Background()
	mockTxManager := databaseMocks.NewMockTxManager(t)
	mockClientRepo := &mockClientRepository{}
	uc := NewClientUseCase(mockTxManager, mockClientRepo)

	clientID := uuid.Must(uuid.NewV7())
	client := &clientDomain.Client{ID: clientID, Name: "Acme"}

	mockClientRepo.On("Get", ctx, clientID).Return(client, nil).Once()
	mockClientRepo.On("Delete", ctx, clientID).Return(nil).Once()
	mockClientRepo.On("List", ctx, 10, 5).Return([]*clientDomain.Client{client}, nil).Once()

	got, err := uc.Get(ctx, clientID)
	require.NoError(t, err)
	assert.Equal(t, client, got)

	require.NoError(t, uc.Delete(ctx, clientID))

	clients, err := uc.List(ctx, 10, 5)
	require.NoError(t, err)
	assert.Len(t, clients, 1)

	mockClientRepo.AssertExpectations(t)
}

func TestClientUseCase_EncryptLegacy(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ProcessesBatchesUntilShortBatch", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockClientRepo := &mockClientRepository{}

		first := []uuid.UUID{uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7())}
		second := []uuid.UUID{uuid.Must(uuid.NewV7())}

		mockClientRepo.On("ListLegacyIDs", mock.Anything, 2).Return(first, nil).Once()
		mockClientRepo.On("ListLegacyIDs", mock.Anything, 2).Return(second, nil).Once()
		for _, id := range append(append([]uuid.UUID{}, first...), second...) {
			client := &clientDomain.Client{ID: id, Name: "legacy"}
			mockClientRepo.On("Get", mock.Anything, id).Return(client, nil).Once()
			mockClientRepo.On("Update", mock.Anything, client).Return(nil).Once()
		}

		uc := NewClientUseCase(mockTxManager, mockClientRepo)
		count, err := uc.EncryptLegacy(ctx, 2)

		require.NoError(t, err)
		assert.Equal(t, 3, count)
		mockClientRepo.AssertExpectations(t)
	})

	t.Run("Success_NothingToDo", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockClientRepo := &mockClientRepository{}

		mockClientRepo.On("ListLegacyIDs", mock.Anything, 100).Return([]uuid.UUID{}, nil).Once()

		uc := NewClientUseCase(mockTxManager, mockClientRepo)
		count, err := uc.EncryptLegacy(ctx, 100)

		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("Error_InvalidBatchSize", func(t *testing.T) {
		uc := NewClientUseCase(databaseMocks.NewMockTxManager(t), &mockClientRepository{})

		_, err := uc.EncryptLegacy(ctx, 0)

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_UpdateFailsStopsRun", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockClientRepo := &mockClientRepository{}
		id := uuid.Must(uuid.NewV7())
		client := &clientDomain.Client{ID: id, Name: "legacy"}

		mockClientRepo.On("ListLegacyIDs", mock.Anything, 10).Return([]uuid.UUID{id}, nil).Once()
		mockClientRepo.On("Get", mock.Anything, id).Return(client, nil).Once()
		mockClientRepo.On("Update", mock.Anything, client).Return(errors.New("write failed")).Once()

		uc := NewClientUseCase(mockTxManager, mockClientRepo)
		count, err := uc.EncryptLegacy(ctx, 10)

		assert.EqualError(t, err, "write failed")
		assert.Zero(t, count)
	})
}
