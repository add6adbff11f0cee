// Package http provides HTTP handlers for category management.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/taxledger/internal/category/http/dto"
	categoryUseCase "github.com/allisson/taxledger/internal/category/usecase"
	"github.com/allisson/taxledger/internal/httputil"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
	customValidation "github.com/allisson/taxledger/internal/validation"
)

// CategoryHandler handles HTTP requests for category management operations.
type CategoryHandler struct {
	categoryUseCase categoryUseCase.CategoryUseCase
	logger          *slog.Logger
}

// NewCategoryHandler creates a new category handler with required dependencies.
func NewCategoryHandler(categoryUseCase categoryUseCase.CategoryUseCase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
		logger:          logger,
	}
}

// RegisterRoutes mounts the category endpoints on the given router group.
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	categories.POST("", h.CreateHandler)
	categories.GET("", h.ListHandler)
	categories.GET("/:id", h.GetHandler)
	categories.DELETE("/:id", h.DeleteHandler)
}

// CreateHandler creates a new category.
// POST /v1/categories - Returns 201 Created.
func (h *CategoryHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	category, err := h.categoryUseCase.Create(c.Request.Context(), req.ToCreateInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapCategoryToResponse(category))
}

// GetHandler retrieves a category by ID.
// GET /v1/categories/:id - Returns 200 OK.
func (h *CategoryHandler) GetHandler(c *gin.Context) {
	categoryID, err := httputil.ParseIDParam(c, "category")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	category, err := h.categoryUseCase.Get(c.Request.Context(), categoryID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCategoryToResponse(category))
}

// DeleteHandler removes a category.
// DELETE /v1/categories/:id - Returns 204 No Content.
func (h *CategoryHandler) DeleteHandler(c *gin.Context) {
	categoryID, err := httputil.ParseIDParam(c, "category")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.categoryUseCase.Delete(c.Request.Context(), categoryID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// ListHandler lists categories.
// GET /v1/categories?kind=expense - Returns 200 OK.
func (h *CategoryHandler) ListHandler(c *gin.Context) {
	var kind ledgerDomain.Kind
	if raw := c.Query("kind"); raw != "" {
		parsed, err := ledgerDomain.ParseKind(raw)
		if err != nil {
			httputil.HandleValidationErrorGin(c, err, h.logger)
			return
		}
		kind = parsed
	}

	categories, err := h.categoryUseCase.List(c.Request.Context(), kind)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCategoriesToListResponse(categories))
}
