// Package http provides HTTP handlers for BAS and financial-year reports.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/allisson/taxledger/internal/fiscal"
	"github.com/allisson/taxledger/internal/httputil"
	"github.com/allisson/taxledger/internal/report/http/dto"
	reportUseCase "github.com/allisson/taxledger/internal/report/usecase"
)

var errFinancialYearRequired = errors.New("financial_year parameter is required")

// ReportHandler serves the reporting endpoints.
type ReportHandler struct {
	reportUseCase reportUseCase.ReportUseCase
	logger        *slog.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportUseCase reportUseCase.ReportUseCase, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
		logger:        logger,
	}
}

// RegisterRoutes mounts the report endpoints on the given router group.
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	reports.GET("/bas", h.BASHandler)
	reports.GET("/financial-year", h.FinancialYearHandler)
}

// BASHandler returns the BAS labels for a quarter.
// GET /v1/reports/bas?financial_year=2025&quarter=Q2
func (h *ReportHandler) BASHandler(c *gin.Context) {
	financialYear, err := parseFinancialYear(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	quarter, err := fiscal.ParseQuarter(c.Query("quarter"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	bas, err := h.reportUseCase.BAS(c.Request.Context(), financialYear, quarter)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapBASToResponse(bas))
}

// FinancialYearHandler returns the per-quarter summary of a financial year.
// GET /v1/reports/financial-year?financial_year=2025
func (h *ReportHandler) FinancialYearHandler(c *gin.Context) {
	financialYear, err := parseFinancialYear(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	summary, err := h.reportUseCase.FinancialYear(c.Request.Context(), financialYear)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapFinancialYearToResponse(summary))
}

func parseFinancialYear(c *gin.Context) (int, error) {
	raw := c.Query("financial_year")
	if raw == "" {
		return 0, errFinancialYearRequired
	}
	financialYear, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid financial_year parameter: must be a year such as 2025")
	}
	if err := fiscal.ValidateFinancialYear(financialYear); err != nil {
		return 0, err
	}
	return financialYear, nil
}
