// Package mocks provides mock implementations of the category use case interfaces for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	categoryDomain "github.com/allisson/taxledger/internal/category/domain"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
)

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

// NewMockCategoryRepository creates a mock and asserts its expectations at test cleanup.
func NewMockCategoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create mocks the Create method.
func (m *MockCategoryRepository) Create(ctx context.Context, category *categoryDomain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// Delete mocks the Delete method.
func (m *MockCategoryRepository) Delete(ctx context.Context, categoryID uuid.UUID) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// Get mocks the Get method.
func (m *MockCategoryRepository) Get(ctx context.Context, categoryID uuid.UUID) (*categoryDomain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*categoryDomain.Category), args.Error(1)
}

// List mocks the List method.
func (m *MockCategoryRepository) List(
	ctx context.Context,
	kind ledgerDomain.Kind,
) ([]*categoryDomain.Category, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*categoryDomain.Category), args.Error(1)
}

// MockCategoryUseCase is a mock implementation of CategoryUseCase.
type MockCategoryUseCase struct {
	mock.Mock
}

// NewMockCategoryUseCase creates a mock and asserts its expectations at test cleanup.
func NewMockCategoryUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCategoryUseCase {
	m := &MockCategoryUseCase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create mocks the Create method.
func (m *MockCategoryUseCase) Create(
	ctx context.Context,
	input *categoryDomain.CreateCategoryInput,
) (*categoryDomain.Category, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*categoryDomain.Category), args.Error(1)
}

// Get mocks the Get method.
func (m *MockCategoryUseCase) Get(ctx context.Context, categoryID uuid.UUID) (*categoryDomain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*categoryDomain.Category), args.Error(1)
}

// List mocks the List method.
func (m *MockCategoryUseCase) List(
	ctx context.Context,
	kind ledgerDomain.Kind,
) ([]*categoryDomain.Category, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*categoryDomain.Category), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockCategoryUseCase) Delete(ctx context.Context, categoryID uuid.UUID) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}
