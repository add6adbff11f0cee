package dto

import (
	"time"

	"github.com/allisson/taxledger/internal/fiscal"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
)

// EntryResponse represents an income or expense in API responses.
type EntryResponse struct {
	ID          string            `json:"id"`
	Kind        string            `json:"kind"`
	Date        string            `json:"date"`
	Description string            `json:"description"`
	Amount      string            `json:"amount"`
	GST         string            `json:"gst"`
	Net         string            `json:"net"`
	AmountCents int64             `json:"amount_cents"`
	GSTCents    int64             `json:"gst_cents"`
	CategoryID  *string           `json:"category_id"`
	ClientID    *string           `json:"client_id"`
	Provider    string            `json:"provider"`
	Period      fiscal.PeriodInfo `json:"period"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// MapEntryToResponse converts a domain entry to an API response.
func MapEntryToResponse(entry *ledgerDomain.Entry) EntryResponse {
	response := EntryResponse{
		ID:          entry.ID.String(),
		Kind:        string(entry.Kind),
		Date:        entry.Date.Format("2006-01-02"),
		Description: entry.Description,
		Amount:      ledgerDomain.FormatCents(entry.AmountCents),
		GST:         ledgerDomain.FormatCents(entry.GSTCents),
		Net:         ledgerDomain.FormatCents(entry.NetCents()),
		AmountCents: entry.AmountCents,
		GSTCents:    entry.GSTCents,
		Provider:    entry.Provider,
		Period:      entry.Period(),
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
	if entry.CategoryID != nil {
		id := entry.CategoryID.String()
		response.CategoryID = &id
	}
	if entry.ClientID != nil {
		id := entry.ClientID.String()
		response.ClientID = &id
	}
	return response
}

// ListEntriesResponse represents a paginated list of entries in API responses.
type ListEntriesResponse struct {
	Data []EntryResponse `json:"data"`
}

// MapEntriesToListResponse converts domain entries to a list API response.
func MapEntriesToListResponse(entries []*ledgerDomain.Entry) ListEntriesResponse {
	responses := make([]EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, MapEntryToResponse(entry))
	}
	return ListEntriesResponse{Data: responses}
}
