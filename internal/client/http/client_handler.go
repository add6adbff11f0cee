// Package http provides HTTP handlers for client management.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/taxledger/internal/client/http/dto"
	clientUseCase "github.com/allisson/taxledger/internal/client/usecase"
	"github.com/allisson/taxledger/internal/httputil"
	customValidation "github.com/allisson/taxledger/internal/validation"
)

// ClientHandler handles HTTP requests for client management operations.
type ClientHandler struct {
	clientUseCase clientUseCase.ClientUseCase
	logger        *slog.Logger
}

// NewClientHandler creates a new client handler with required dependencies.
func NewClientHandler(clientUseCase clientUseCase.ClientUseCase, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{
		clientUseCase: clientUseCase,
		logger:        logger,
	}
}

// RegisterRoutes mounts the client endpoints on the given router group.
func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients")
	clients.POST("", h.CreateHandler)
	clients.GET("", h.ListHandler)
	clients.GET("/:id", h.GetHandler)
	clients.PUT("/:id", h.UpdateHandler)
	clients.DELETE("/:id", h.DeleteHandler)
}

// CreateHandler creates a new client.
// POST /v1/clients - Returns 201 Created with the stored client.
func (h *ClientHandler) CreateHandler(c *gin.Context) {
	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	client, err := h.clientUseCase.Create(c.Request.Context(), req.ToCreateInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapClientToResponse(client))
}

// GetHandler retrieves a client by ID.
// GET /v1/clients/:id - Returns 200 OK with the decrypted client.
func (h *ClientHandler) GetHandler(c *gin.Context) {
	clientID, err := httputil.ParseIDParam(c, "client")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	client, err := h.clientUseCase.Get(c.Request.Context(), clientID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapClientToResponse(client))
}

// UpdateHandler replaces the mutable fields of a client.
// PUT /v1/clients/:id - Returns 200 OK with the updated client.
func (h *ClientHandler) UpdateHandler(c *gin.Context) {
	clientID, err := httputil.ParseIDParam(c, "client")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	client, err := h.clientUseCase.Update(c.Request.Context(), clientID, req.ToUpdateInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapClientToResponse(client))
}

// DeleteHandler removes a client.
// DELETE /v1/clients/:id - Returns 204 No Content.
func (h *ClientHandler) DeleteHandler(c *gin.Context) {
	clientID, err := httputil.ParseIDParam(c, "client")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.clientUseCase.Delete(c.Request.Context(), clientID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// ListHandler retrieves clients with pagination support.
// GET /v1/clients?offset=0&limit=50 - Returns 200 OK with a paginated list.
func (h *ClientHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	clients, err := h.clientUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapClientsToListResponse(clients))
}
