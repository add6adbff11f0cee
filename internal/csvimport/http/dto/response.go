// Package dto maps import previews and results to API responses.
package dto

import (
	importDomain "github.com/allisson/taxledger/internal/csvimport/domain"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
	ledgerDTO "github.com/allisson/taxledger/internal/ledger/http/dto"
)

// RowResponse represents one classified CSV row.
type RowResponse struct {
	Line              int      `json:"line"`
	Status            string   `json:"status"`
	Date              string   `json:"date,omitempty"`
	Description       string   `json:"description"`
	Kind              string   `json:"kind,omitempty"`
	Amount            string   `json:"amount,omitempty"`
	AmountCents       int64    `json:"amount_cents"`
	GST               *string  `json:"gst"`
	Category          string   `json:"category,omitempty"`
	CategoryID        *string  `json:"category_id"`
	CategorySuggested bool     `json:"category_suggested"`
	Provider          string   `json:"provider,omitempty"`
	Errors            []string `json:"errors,omitempty"`
	DuplicateOf       string   `json:"duplicate_of,omitempty"`
}

// SummaryResponse counts rows by status.
type SummaryResponse struct {
	Total     int `json:"total"`
	Valid     int `json:"valid"`
	Invalid   int `json:"invalid"`
	Duplicate int `json:"duplicate"`
}

// PreviewResponse represents an import preview.
type PreviewResponse struct {
	Summary SummaryResponse `json:"summary"`
	Rows    []RowResponse   `json:"rows"`
}

// CommitResponse represents a committed import.
type CommitResponse struct {
	PreviewResponse
	Created []ledgerDTO.EntryResponse `json:"created"`
}

func mapRow(row *importDomain.Row) RowResponse {
	response := RowResponse{
		Line:              row.Line,
		Status:            string(row.Status),
		Description:       row.Description,
		Kind:              string(row.Kind),
		AmountCents:       row.AmountCents,
		Category:          row.CategoryName,
		CategorySuggested: row.CategorySuggested,
		Provider:          row.Provider,
		Errors:            row.Errors,
		DuplicateOf:       row.DuplicateOf,
	}
	if !row.Date.IsZero() {
		response.Date = row.Date.Format("2006-01-02")
	}
	if row.AmountCents != 0 {
		response.Amount = ledgerDomain.FormatCents(row.AmountCents)
	}
	if row.GSTCents != nil {
		gst := ledgerDomain.FormatCents(*row.GSTCents)
		response.GST = &gst
	}
	if row.CategoryID != nil {
		id := row.CategoryID.String()
		response.CategoryID = &id
	}
	return response
}

// MapPreviewToResponse converts a preview to an API response.
func MapPreviewToResponse(preview *importDomain.Preview) PreviewResponse {
	rows := make([]RowResponse, 0, len(preview.Rows))
	for i := range preview.Rows {
		rows = append(rows, mapRow(&preview.Rows[i]))
	}
	return PreviewResponse{
		Summary: SummaryResponse{
			Total:     len(preview.Rows),
			Valid:     preview.Valid,
			Invalid:   preview.Invalid,
			Duplicate: preview.Duplicate,
		},
		Rows: rows,
	}
}

// MapCommitToResponse converts a commit result to an API response.
func MapCommitToResponse(result *importDomain.CommitResult) CommitResponse {
	return CommitResponse{
		PreviewResponse: MapPreviewToResponse(result.Preview),
		Created:         ledgerDTO.MapEntriesToListResponse(result.Created).Data,
	}
}
