// Package mocks provides a mock implementation of metrics.BusinessMetrics for testing.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockBusinessMetrics is a mock implementation of metrics.BusinessMetrics.
type MockBusinessMetrics struct {
	mock.Mock
}

// NewMockBusinessMetrics creates a mock and asserts its expectations at test cleanup.
func NewMockBusinessMetrics(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBusinessMetrics {
	m := &MockBusinessMetrics{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// RecordOperation mocks the RecordOperation method.
func (m *MockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

// RecordDuration mocks the RecordDuration method.
func (m *MockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

// RecordImportRows mocks the RecordImportRows method.
func (m *MockBusinessMetrics) RecordImportRows(ctx context.Context, status string, count int) {
	m.Called(ctx, status, count)
}

// ExpectOperation registers the RecordOperation and RecordDuration calls a
// metrics decorator makes for one operation.
func (m *MockBusinessMetrics) ExpectOperation(ctx context.Context, domain, operation, status string) {
	m.On("RecordOperation", ctx, domain, operation, status).Return().Once()
	m.On("RecordDuration", ctx, domain, operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}
