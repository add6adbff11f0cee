// Package http provides HTTP handlers for incomes and expenses.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allisson/taxledger/internal/fiscal"
	"github.com/allisson/taxledger/internal/httputil"
	"github.com/allisson/taxledger/internal/ledger/http/dto"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
	ledgerUseCase "github.com/allisson/taxledger/internal/ledger/usecase"
	customValidation "github.com/allisson/taxledger/internal/validation"
)

// EntryHandler serves one kind of ledger entry. Incomes and expenses each get
// their own handler and route prefix.
type EntryHandler struct {
	kind         ledgerDomain.Kind
	entryUseCase ledgerUseCase.EntryUseCase
	logger       *slog.Logger
}

// NewEntryHandler creates a handler for entries of the given kind.
func NewEntryHandler(
	kind ledgerDomain.Kind,
	entryUseCase ledgerUseCase.EntryUseCase,
	logger *slog.Logger,
) *EntryHandler {
	return &EntryHandler{
		kind:         kind,
		entryUseCase: entryUseCase,
		logger:       logger,
	}
}

// RegisterRoutes mounts the endpoints under /incomes or /expenses.
func (h *EntryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	entries := rg.Group("/" + string(h.kind) + "s")
	entries.POST("", h.CreateHandler)
	entries.GET("", h.ListHandler)
	entries.GET("/:id", h.GetHandler)
	entries.PUT("/:id", h.UpdateHandler)
	entries.DELETE("/:id", h.DeleteHandler)
}

// CreateHandler records a new entry.
// POST /v1/incomes - Returns 201 Created with the entry and its period.
func (h *EntryHandler) CreateHandler(c *gin.Context) {
	var req dto.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input, err := req.ToCreateInput(h.kind)
	if err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	entry, err := h.entryUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapEntryToResponse(entry))
}

// GetHandler retrieves an entry by ID.
// GET /v1/incomes/:id - Returns 200 OK.
func (h *EntryHandler) GetHandler(c *gin.Context) {
	entryID, err := httputil.ParseIDParam(c, string(h.kind))
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	entry, err := h.entryUseCase.Get(c.Request.Context(), h.kind, entryID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEntryToResponse(entry))
}

// UpdateHandler replaces the mutable fields of an entry.
// PUT /v1/incomes/:id - Returns 200 OK.
func (h *EntryHandler) UpdateHandler(c *gin.Context) {
	entryID, err := httputil.ParseIDParam(c, string(h.kind))
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input, err := req.ToUpdateInput()
	if err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	entry, err := h.entryUseCase.Update(c.Request.Context(), h.kind, entryID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEntryToResponse(entry))
}

// DeleteHandler removes an entry.
// DELETE /v1/incomes/:id - Returns 204 No Content.
func (h *EntryHandler) DeleteHandler(c *gin.Context) {
	entryID, err := httputil.ParseIDParam(c, string(h.kind))
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.entryUseCase.Delete(c.Request.Context(), h.kind, entryID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// ListHandler lists entries of the handler's kind.
// GET /v1/expenses?financial_year=2025&quarter=Q2&from=2024-10-01&to=2024-12-31&offset=0&limit=50
func (h *EntryHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	filter, err := h.parseFilter(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	entries, err := h.entryUseCase.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEntriesToListResponse(entries))
}

func (h *EntryHandler) parseFilter(c *gin.Context) (ledgerDomain.ListFilter, error) {
	filter := ledgerDomain.ListFilter{Kind: h.kind}

	if raw := c.Query("financial_year"); raw != "" {
		fy, err := strconv.Atoi(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid financial_year parameter: must be a year such as 2025")
		}
		filter.FinancialYear = fy
	}

	if raw := c.Query("quarter"); raw != "" {
		quarter, err := fiscal.ParseQuarter(raw)
		if err != nil {
			return filter, err
		}
		filter.Quarter = quarter
	}

	for _, bound := range []struct {
		name   string
		target **time.Time
	}{
		{"from", &filter.From},
		{"to", &filter.To},
	} {
		raw := c.Query(bound.name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(customValidation.DateLayout, raw)
		if err != nil {
			return filter, fmt.Errorf("invalid %s parameter: must be a date in YYYY-MM-DD format", bound.name)
		}
		*bound.target = &t
	}

	return filter, nil
}
