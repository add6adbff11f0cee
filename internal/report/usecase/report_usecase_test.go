package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/taxledger/internal/errors"
	"github.com/allisson/taxledger/internal/fiscal"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
	metricsMocks "github.com/allisson/taxledger/internal/metrics/mocks"
	"github.com/allisson/taxledger/internal/report/usecase"
	"github.com/allisson/taxledger/internal/report/usecase/mocks"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestReportUseCase_BAS(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		reader := mocks.NewMockTotalsReader(t)
		uc := usecase.NewReportUseCase(reader)

		reader.On("Totals", ctx, day(2024, time.October, 1), day(2024, time.December, 31)).
			Return(ledgerDomain.Totals{
				Income:  ledgerDomain.KindTotals{AmountCents: 550000, GSTCents: 50000, Count: 5},
				Expense: ledgerDomain.KindTotals{AmountCents: 110000, GSTCents: 10000, Count: 4},
			}, nil).
			Once()

		bas, err := uc.BAS(ctx, 2025, fiscal.Q2)
		require.NoError(t, err)
		assert.Equal(t, int64(550000), bas.G1)
		assert.Equal(t, int64(50000), bas.Label1A)
		assert.Equal(t, int64(110000), bas.G11)
		assert.Equal(t, int64(10000), bas.Label1B)
		assert.Equal(t, int64(40000), bas.NetGST)
		assert.Equal(t, "Q2 FY2025", bas.Period.QuarterLabel)
		assert.Equal(t, day(2024, time.October, 1), bas.From)
		assert.Equal(t, day(2024, time.December, 31), bas.To)
	})

	t.Run("Error_InvalidQuarter", func(t *testing.T) {
		uc := usecase.NewReportUseCase(mocks.NewMockTotalsReader(t))

		_, err := uc.BAS(ctx, 2025, fiscal.Quarter("Q5"))
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_InvalidFinancialYear", func(t *testing.T) {
		uc := usecase.NewReportUseCase(mocks.NewMockTotalsReader(t))

		_, err := uc.BAS(ctx, 25, fiscal.Q1)
		assert.ErrorIs(t, err, fiscal.ErrInvalidFinancialYear)
	})

	t.Run("Error_Repository", func(t *testing.T) {
		reader := mocks.NewMockTotalsReader(t)
		uc := usecase.NewReportUseCase(reader)
		dbErr := errors.New("db down")

		reader.On("Totals", ctx, day(2025, time.April, 1), day(2025, time.June, 30)).
			Return(ledgerDomain.Totals{}, dbErr).
			Once()

		_, err := uc.BAS(ctx, 2025, fiscal.Q4)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestReportUseCase_FinancialYear(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		reader := mocks.NewMockTotalsReader(t)
		uc := usecase.NewReportUseCase(reader)

		reader.On("Totals", ctx, day(2024, time.July, 1), day(2024, time.September, 30)).
			Return(ledgerDomain.Totals{
				Income:  ledgerDomain.KindTotals{AmountCents: 110000, GSTCents: 10000, Count: 1},
				Expense: ledgerDomain.KindTotals{AmountCents: 11000, GSTCents: 1000, Count: 1},
			}, nil).Once()
		reader.On("Totals", ctx, day(2024, time.October, 1), day(2024, time.December, 31)).
			Return(ledgerDomain.Totals{}, nil).Once()
		reader.On("Totals", ctx, day(2025, time.January, 1), day(2025, time.March, 31)).
			Return(ledgerDomain.Totals{
				Expense: ledgerDomain.KindTotals{AmountCents: 22000, GSTCents: 2000, Count: 2},
			}, nil).Once()
		reader.On("Totals", ctx, day(2025, time.April, 1), day(2025, time.June, 30)).
			Return(ledgerDomain.Totals{
				Income: ledgerDomain.KindTotals{AmountCents: 50000, GSTCents: 0, Count: 1},
			}, nil).Once()

		summary, err := uc.FinancialYear(ctx, 2025)
		require.NoError(t, err)
		assert.Equal(t, "FY2025", summary.FYLabel)
		assert.Equal(t, day(2024, time.July, 1), summary.From)
		assert.Equal(t, day(2025, time.June, 30), summary.To)
		require.Len(t, summary.Quarters, 4)

		assert.Equal(t, fiscal.Q1, summary.Quarters[0].Period.Quarter)
		assert.Equal(t, int64(90000), summary.Quarters[0].NetProfit)
		assert.Equal(t, int64(0), summary.Quarters[1].NetProfit)
		assert.Equal(t, int64(-20000), summary.Quarters[2].NetProfit)
		assert.Equal(t, int64(-2000), summary.Quarters[2].NetGST)

		assert.Equal(t, int64(150000), summary.Total.IncomeCents)
		assert.Equal(t, int64(30000), summary.Total.ExpenseCents)
		assert.Equal(t, int64(120000), summary.Total.NetProfit)
		assert.Equal(t, int64(10000), summary.Total.GSTCollected)
		assert.Equal(t, int64(3000), summary.Total.GSTPaid)
		assert.Equal(t, 2, summary.Total.IncomeCount)
		assert.Equal(t, 3, summary.Total.ExpenseCount)
	})

	t.Run("Error_StopsOnFirstFailure", func(t *testing.T) {
		reader := mocks.NewMockTotalsReader(t)
		uc := usecase.NewReportUseCase(reader)
		dbErr := errors.New("db down")

		reader.On("Totals", ctx, day(2024, time.July, 1), day(2024, time.September, 30)).
			Return(ledgerDomain.Totals{}, dbErr).Once()

		summary, err := uc.FinancialYear(ctx, 2025)
		assert.Nil(t, summary)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestReportUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_BAS", func(t *testing.T) {
		inner := mocks.NewMockReportUseCase(t)
		m := metricsMocks.NewMockBusinessMetrics(t)
		uc := usecase.NewReportUseCaseWithMetrics(inner, m)

		inner.On("BAS", ctx, 2025, fiscal.Q1).Return(nil, nil).Once()
		m.ExpectOperation(ctx, "report", "bas_summary", "success")

		_, err := uc.BAS(ctx, 2025, fiscal.Q1)
		assert.NoError(t, err)
	})

	t.Run("Error_FinancialYear", func(t *testing.T) {
		inner := mocks.NewMockReportUseCase(t)
		m := metricsMocks.NewMockBusinessMetrics(t)
		uc := usecase.NewReportUseCaseWithMetrics(inner, m)

		inner.On("FinancialYear", ctx, 1800).Return(nil, fiscal.ErrInvalidFinancialYear).Once()
		m.ExpectOperation(ctx, "report", "financial_year_summary", "error")

		_, err := uc.FinancialYear(ctx, 1800)
		assert.Error(t, err)
	})
}
