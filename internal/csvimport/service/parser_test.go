package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	importDomain "github.com/allisson/taxledger/internal/csvimport/domain"
	apperrors "github.com/allisson/taxledger/internal/errors"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
)

func TestParser_Parse_AmountColumn(t *testing.T) {
	input := "\ufeffDate,Narrative,Amount,GST,Category,Payee\n" +
		"2024-07-15,Invoice 0001,\"$1,100.00\",100,Consulting,Acme Pty Ltd\n" +
		"\n" +
		"16/07/2024,GitHub subscription,-11.00,,,\n" +
		"1/8/2024,Refund,(5.50),0.50,,\n"

	rows, err := NewParser(0).Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	first := rows[0]
	assert.Equal(t, 2, first.Line)
	assert.Equal(t, importDomain.StatusValid, first.Status)
	assert.Equal(t, time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "Invoice 0001", first.Description)
	assert.Equal(t, ledgerDomain.KindIncome, first.Kind)
	assert.Equal(t, int64(110000), first.AmountCents)
	require.NotNil(t, first.GSTCents)
	assert.Equal(t, int64(10000), *first.GSTCents)
	assert.Equal(t, "Consulting", first.CategoryName)
	assert.Equal(t, "Acme Pty Ltd", first.Provider)

	second := rows[1]
	assert.Equal(t, 4, second.Line)
	assert.Equal(t, time.Date(2024, time.July, 16, 0, 0, 0, 0, time.UTC), second.Date)
	assert.Equal(t, ledgerDomain.KindExpense, second.Kind)
	assert.Equal(t, int64(1100), second.AmountCents)
	assert.Nil(t, second.GSTCents)

	third := rows[2]
	assert.Equal(t, time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC), third.Date)
	assert.Equal(t, ledgerDomain.KindExpense, third.Kind)
	assert.Equal(t, int64(550), third.AmountCents)
	assert.Equal(t, int64(50), *third.GSTCents)
}

func TestParser_Parse_DebitCreditAndType(t *testing.T) {
	input := "date,details,debit,credit,type\n" +
		"2024-07-01,Office chair,250.00,,\n" +
		"2024-07-02,Client payment,,900.00,\n" +
		"2024-07-03,Supplier rebate,40.00,,income\n" +
		"2024-07-04,Both set,1.00,2.00,\n" +
		"2024-07-05,Neither set,,,\n" +
		"2024-07-06,Zero,0.00,,\n"

	rows, err := NewParser(0).Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 6)

	assert.Equal(t, ledgerDomain.KindExpense, rows[0].Kind)
	assert.Equal(t, int64(25000), rows[0].AmountCents)

	assert.Equal(t, ledgerDomain.KindIncome, rows[1].Kind)
	assert.Equal(t, int64(90000), rows[1].AmountCents)

	assert.Equal(t, ledgerDomain.KindIncome, rows[2].Kind)
	assert.Equal(t, int64(4000), rows[2].AmountCents)
	assert.Equal(t, importDomain.StatusValid, rows[2].Status)

	assert.Equal(t, importDomain.StatusInvalid, rows[3].Status)
	assert.Contains(t, rows[3].Errors, "only one of debit and credit may be set")

	assert.Equal(t, importDomain.StatusInvalid, rows[4].Status)
	assert.Contains(t, rows[4].Errors, "amount is required")

	assert.Equal(t, importDomain.StatusInvalid, rows[5].Status)
	assert.Contains(t, rows[5].Errors, "amount is required")
}

func TestParser_Parse_InvalidRows(t *testing.T) {
	input := "date,description,amount,gst,type\n" +
		"2024-13-01,Bad date,10,,\n" +
		"2024-07-01,,10,,\n" +
		"2024-07-01,Bad amount,ten,,\n" +
		"2024-07-01,Zero,0,,\n" +
		"2024-07-01,GST too big,10,11,\n" +
		"2024-07-01,Bad type,10,,transfer\n" +
		",Missing date,10,,\n"

	rows, err := NewParser(0).Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 7)

	for _, row := range rows {
		assert.Equal(t, importDomain.StatusInvalid, row.Status, "line %d", row.Line)
		assert.NotEmpty(t, row.Errors, "line %d", row.Line)
	}
	assert.Equal(t, []string{"description is required"}, rows[1].Errors)
	assert.Equal(t, []string{"gst must not exceed the amount"}, rows[4].Errors)
	assert.Equal(t, []string{"date is required"}, rows[6].Errors)
}

func TestParser_Parse_FileErrors(t *testing.T) {
	t.Run("Error_Empty", func(t *testing.T) {
		_, err := NewParser(0).Parse(strings.NewReader(""))
		assert.ErrorIs(t, err, importDomain.ErrEmptyFile)
	})

	t.Run("Error_MissingColumns", func(t *testing.T) {
		_, err := NewParser(0).Parse(strings.NewReader("date,payee\n2024-07-01,Acme\n"))
		assert.ErrorIs(t, err, importDomain.ErrMissingColumns)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.ErrorContains(t, err, "description")
		assert.ErrorContains(t, err, "amount (or debit/credit)")
	})

	t.Run("Error_Malformed", func(t *testing.T) {
		_, err := NewParser(0).Parse(strings.NewReader("date,description,amount\n2024-07-01,\"unterminated,10\n"))
		assert.ErrorIs(t, err, importDomain.ErrMalformedCSV)
	})

	t.Run("Error_TooManyRows", func(t *testing.T) {
		input := "date,description,amount\n2024-07-01,a,1\n2024-07-02,b,2\n2024-07-03,c,3\n"

		_, err := NewParser(2).Parse(strings.NewReader(input))
		assert.ErrorIs(t, err, importDomain.ErrTooManyRows)
		assert.ErrorIs(t, err, apperrors.ErrPayloadTooLarge)
	})

	t.Run("Success_HeaderOnly", func(t *testing.T) {
		rows, err := NewParser(1).Parse(strings.NewReader("date,description,amount\n"))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{"2024-03-05", "05/03/2024", "5/3/2024"} {
		got, err := parseDate(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := parseDate("March 5 2024")
	assert.Error(t, err)
}
