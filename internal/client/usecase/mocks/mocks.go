// Package mocks provides mock implementations of the client use case interfaces for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	clientDomain "github.com/allisson/taxledger/internal/client/domain"
)

// MockClientUseCase is a mock implementation of ClientUseCase.
type MockClientUseCase struct {
	mock.Mock
}

// NewMockClientUseCase creates a mock and asserts its expectations at test cleanup.
func NewMockClientUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClientUseCase {
	m := &MockClientUseCase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create mocks the Create method.
func (m *MockClientUseCase) Create(
	ctx context.Context,
	input *clientDomain.CreateClientInput,
) (*clientDomain.Client, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clientDomain.Client), args.Error(1)
}

// Update mocks the Update method.
func (m *MockClientUseCase) Update(
	ctx context.Context,
	clientID uuid.UUID,
	input *clientDomain.UpdateClientInput,
) (*clientDomain.Client, error) {
	args := m.Called(ctx, clientID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clientDomain.Client), args.Error(1)
}

// Get mocks the Get method.
func (m *MockClientUseCase) Get(ctx context.Context, clientID uuid.UUID) (*clientDomain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clientDomain.Client), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockClientUseCase) Delete(ctx context.Context, clientID uuid.UUID) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

// List mocks the List method.
func (m *MockClientUseCase) List(ctx context.Context, offset, limit int) ([]*clientDomain.Client, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*clientDomain.Client), args.Error(1)
}

// EncryptLegacy mocks the EncryptLegacy method.
func (m *MockClientUseCase) EncryptLegacy(ctx context.Context, batchSize int) (int, error) {
	args := m.Called(ctx, batchSize)
	return args.Int(0), args.Error(1)
}
