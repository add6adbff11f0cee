// Package mocks provides testify mocks for the report use case interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/taxledger/internal/fiscal"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
	reportDomain "github.com/allisson/taxledger/internal/report/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockTotalsReader is a mock implementation of usecase.TotalsReader.
type MockTotalsReader struct {
	mock.Mock
}

// NewMockTotalsReader creates a mock and asserts its expectations at test cleanup.
func NewMockTotalsReader(t testingT) *MockTotalsReader {
	m := &MockTotalsReader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Totals mocks the Totals method.
func (m *MockTotalsReader) Totals(ctx context.Context, from, to time.Time) (ledgerDomain.Totals, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(ledgerDomain.Totals), args.Error(1)
}

// MockReportUseCase is a mock implementation of usecase.ReportUseCase.
type MockReportUseCase struct {
	mock.Mock
}

// NewMockReportUseCase creates a mock and asserts its expectations at test cleanup.
func NewMockReportUseCase(t testingT) *MockReportUseCase {
	m := &MockReportUseCase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// BAS mocks the BAS method.
func (m *MockReportUseCase) BAS(
	ctx context.Context,
	financialYear int,
	quarter fiscal.Quarter,
) (*reportDomain.BAS, error) {
	args := m.Called(ctx, financialYear, quarter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reportDomain.BAS), args.Error(1)
}

// FinancialYear mocks the FinancialYear method.
func (m *MockReportUseCase) FinancialYear(
	ctx context.Context,
	financialYear int,
) (*reportDomain.FinancialYearSummary, error) {
	args := m.Called(ctx, financialYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reportDomain.FinancialYearSummary), args.Error(1)
}
