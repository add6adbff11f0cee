// Package mocks provides mock implementations of the ledger use case interfaces for testing.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	categoryDomain "github.com/allisson/taxledger/internal/category/domain"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockEntryRepository is a mock implementation of EntryRepository.
type MockEntryRepository struct {
	mock.Mock
}

// NewMockEntryRepository creates a mock and asserts its expectations at test cleanup.
func NewMockEntryRepository(t testingT) *MockEntryRepository {
	m := &MockEntryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create mocks the Create method.
func (m *MockEntryRepository) Create(ctx context.Context, entry *ledgerDomain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// Update mocks the Update method.
func (m *MockEntryRepository) Update(ctx context.Context, entry *ledgerDomain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// Delete mocks the Delete method.
func (m *MockEntryRepository) Delete(ctx context.Context, kind ledgerDomain.Kind, entryID uuid.UUID) error {
	args := m.Called(ctx, kind, entryID)
	return args.Error(0)
}

// Get mocks the Get method.
func (m *MockEntryRepository) Get(
	ctx context.Context,
	kind ledgerDomain.Kind,
	entryID uuid.UUID,
) (*ledgerDomain.Entry, error) {
	args := m.Called(ctx, kind, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerDomain.Entry), args.Error(1)
}

// List mocks the List method.
func (m *MockEntryRepository) List(ctx context.Context, q ledgerDomain.Query) ([]*ledgerDomain.Entry, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ledgerDomain.Entry), args.Error(1)
}

// Totals mocks the Totals method.
func (m *MockEntryRepository) Totals(ctx context.Context, from, to time.Time) (ledgerDomain.Totals, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(ledgerDomain.Totals), args.Error(1)
}

// MockCategoryReader is a mock implementation of CategoryReader.
type MockCategoryReader struct {
	mock.Mock
}

// NewMockCategoryReader creates a mock and asserts its expectations at test cleanup.
func NewMockCategoryReader(t testingT) *MockCategoryReader {
	m := &MockCategoryReader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Get mocks the Get method.
func (m *MockCategoryReader) Get(ctx context.Context, categoryID uuid.UUID) (*categoryDomain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*categoryDomain.Category), args.Error(1)
}

// MockEntryUseCase is a mock implementation of EntryUseCase.
type MockEntryUseCase struct {
	mock.Mock
}

// NewMockEntryUseCase creates a mock and asserts its expectations at test cleanup.
func NewMockEntryUseCase(t testingT) *MockEntryUseCase {
	m := &MockEntryUseCase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create mocks the Create method.
func (m *MockEntryUseCase) Create(
	ctx context.Context,
	input *ledgerDomain.CreateEntryInput,
) (*ledgerDomain.Entry, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerDomain.Entry), args.Error(1)
}

// Update mocks the Update method.
func (m *MockEntryUseCase) Update(
	ctx context.Context,
	kind ledgerDomain.Kind,
	entryID uuid.UUID,
	input *ledgerDomain.UpdateEntryInput,
) (*ledgerDomain.Entry, error) {
	args := m.Called(ctx, kind, entryID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerDomain.Entry), args.Error(1)
}

// Get mocks the Get method.
func (m *MockEntryUseCase) Get(
	ctx context.Context,
	kind ledgerDomain.Kind,
	entryID uuid.UUID,
) (*ledgerDomain.Entry, error) {
	args := m.Called(ctx, kind, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerDomain.Entry), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockEntryUseCase) Delete(ctx context.Context, kind ledgerDomain.Kind, entryID uuid.UUID) error {
	args := m.Called(ctx, kind, entryID)
	return args.Error(0)
}

// List mocks the List method.
func (m *MockEntryUseCase) List(
	ctx context.Context,
	filter ledgerDomain.ListFilter,
	offset, limit int,
) ([]*ledgerDomain.Entry, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ledgerDomain.Entry), args.Error(1)
}
