// Package mocks provides testify mocks for the import use case.
package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	importDomain "github.com/allisson/taxledger/internal/csvimport/domain"
)

// MockImportUseCase is a mock implementation of usecase.ImportUseCase.
type MockImportUseCase struct {
	mock.Mock
}

// NewMockImportUseCase creates a mock and asserts its expectations at test cleanup.
func NewMockImportUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockImportUseCase {
	m := &MockImportUseCase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Preview mocks the Preview method.
func (m *MockImportUseCase) Preview(ctx context.Context, r io.Reader) (*importDomain.Preview, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*importDomain.Preview), args.Error(1)
}

// Commit mocks the Commit method.
func (m *MockImportUseCase) Commit(ctx context.Context, r io.Reader) (*importDomain.CommitResult, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*importDomain.CommitResult), args.Error(1)
}
