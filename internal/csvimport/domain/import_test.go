package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
)

func TestRow_StatusTransitions(t *testing.T) {
	row := Row{Line: 2, Status: StatusValid}

	row.AddError("invalid date")
	row.AddError("amount is required")
	assert.Equal(t, StatusInvalid, row.Status)
	assert.Equal(t, []string{"invalid date", "amount is required"}, row.Errors)

	other := Row{Line: 3, Status: StatusValid}
	other.MarkDuplicate("line 2")
	assert.Equal(t, StatusDuplicate, other.Status)
	assert.Equal(t, "line 2", other.DuplicateOf)
}

func TestRow_ToCreateInput(t *testing.T) {
	categoryID := uuid.New()
	gst := int64(100)
	row := Row{
		Date:        time.Date(2024, time.August, 2, 0, 0, 0, 0, time.UTC),
		Description: "Github",
		Kind:        ledgerDomain.KindExpense,
		AmountCents: 1100,
		GSTCents:    &gst,
		CategoryID:  &categoryID,
		Provider:    "GitHub Inc",
	}

	input := row.ToCreateInput()
	assert.Equal(t, ledgerDomain.KindExpense, input.Kind)
	assert.Equal(t, row.Date, input.Date)
	assert.Equal(t, int64(1100), input.AmountCents)
	assert.Equal(t, &gst, input.GSTCents)
	assert.Equal(t, &categoryID, input.CategoryID)
	assert.False(t, input.GSTInclusive)
}

func TestNewPreview(t *testing.T) {
	preview := NewPreview([]Row{
		{Status: StatusValid},
		{Status: StatusInvalid},
		{Status: StatusValid},
		{Status: StatusDuplicate},
	})

	assert.Len(t, preview.Rows, 4)
	assert.Equal(t, 2, preview.Valid)
	assert.Equal(t, 1, preview.Invalid)
	assert.Equal(t, 1, preview.Duplicate)
}
