package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	clientDomain "github.com/allisson/taxledger/internal/client/domain"
	"github.com/allisson/taxledger/internal/client/usecase"
	usecaseMocks "github.com/allisson/taxledger/internal/client/usecase/mocks"
	metricsMocks "github.com/allisson/taxledger/internal/metrics/mocks"
)

func TestClientUseCaseWithMetrics(t *testing.T) {
	mockNext := &usecaseMocks.MockClientUseCase{}
	mockMetrics := &metricsMocks.MockBusinessMetrics{}
	uc := usecase.NewClientUseCaseWithMetrics(mockNext, mockMetrics)

	ctx := context.Background()
	clientID := uuid.New()
	client := &clientDomain.Client{ID: clientID, Name: "Acme"}

	t.Run("Create success", func(t *testing.T) {
		input := &clientDomain.CreateClientInput{Name: "Acme"}

		mockNext.On("Create", ctx, input).Return(client, nil).Once()
		mockMetrics.ExpectOperation(ctx, "client", "client_create", "success")

		res, err := uc.Create(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, client, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Create error", func(t *testing.T) {
		input := &clientDomain.CreateClientInput{Name: ""}

		mockNext.On("Create", ctx, input).Return(nil, errors.New("error")).Once()
		mockMetrics.ExpectOperation(ctx, "client", "client_create", "error")

		res, err := uc.Create(ctx, input)
		assert.Error(t, err)
		assert.Nil(t, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Update success", func(t *testing.T) {
		input := &clientDomain.UpdateClientInput{Name: "Acme"}

		mockNext.On("Update", ctx, clientID, input).Return(client, nil).Once()
		mockMetrics.ExpectOperation(ctx, "client", "client_update", "success")

		_, err := uc.Update(ctx, clientID, input)
		assert.NoError(t, err)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Get error", func(t *testing.T) {
		mockNext.On("Get", ctx, clientID).Return(nil, clientDomain.ErrClientNotFound).Once()
		mockMetrics.ExpectOperation(ctx, "client", "client_get", "error")

		_, err := uc.Get(ctx, clientID)
		assert.ErrorIs(t, err, clientDomain.ErrClientNotFound)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Delete success", func(t *testing.T) {
		mockNext.On("Delete", ctx, clientID).Return(nil).Once()
		mockMetrics.ExpectOperation(ctx, "client", "client_delete", "success")

		assert.NoError(t, uc.Delete(ctx, clientID))
		mockMetrics.AssertExpectations(t)
	})

	t.Run("List success", func(t *testing.T) {
		mockNext.On("List", ctx, 0, 50).Return([]*clientDomain.Client{client}, nil).Once()
		mockMetrics.ExpectOperation(ctx, "client", "client_list", "success")

		clients, err := uc.List(ctx, 0, 50)
		assert.NoError(t, err)
		assert.Len(t, clients, 1)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("EncryptLegacy success", func(t *testing.T) {
		mockNext.On("EncryptLegacy", ctx, 100).Return(4, nil).Once()
		mockMetrics.ExpectOperation(ctx, "client", "client_encrypt_legacy", "success")

		count, err := uc.EncryptLegacy(ctx, 100)
		assert.NoError(t, err)
		assert.Equal(t, 4, count)
		mockMetrics.AssertExpectations(t)
	})
}
