// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	cryptoDomain "github.com/allisson/taxledger/internal/crypto/domain"
	apperrors "github.com/allisson/taxledger/internal/errors"
)

const internalErrorMessage = "An internal error occurred"

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// errorMapping ties a sentinel error to the response written for it. An empty
// message means the wrapped error text is returned to the caller.
type errorMapping struct {
	target  error
	status  int
	kind    string
	message string
	code    string
}

// errorMappings is evaluated in order; the first matching sentinel wins.
var errorMappings = []errorMapping{
	{target: apperrors.ErrNotFound, status: http.StatusNotFound, kind: "not_found",
		message: "The requested resource was not found"},
	{target: apperrors.ErrConflict, status: http.StatusConflict, kind: "conflict",
		message: "A conflict occurred with existing data"},
	{target: apperrors.ErrInvalidInput, status: http.StatusUnprocessableEntity, kind: "invalid_input"},
	{target: apperrors.ErrPayloadTooLarge, status: http.StatusRequestEntityTooLarge, kind: "payload_too_large"},
	// Ciphertext that fails authentication must not leak anything about the stored value.
	{target: cryptoDomain.ErrDecryptionFailed, status: http.StatusInternalServerError, kind: "internal_error",
		message: internalErrorMessage, code: "decryption_failed"},
	{target: cryptoDomain.ErrConfiguration, status: http.StatusInternalServerError, kind: "internal_error",
		message: internalErrorMessage, code: "configuration_error"},
}

func mapError(err error) (int, ErrorResponse) {
	for _, m := range errorMappings {
		if !apperrors.Is(err, m.target) {
			continue
		}
		message := m.message
		if message == "" {
			message = err.Error()
		}
		return m.status, ErrorResponse{Error: m.kind, Message: message, Code: m.code}
	}
	return http.StatusInternalServerError, ErrorResponse{Error: "internal_error", Message: internalErrorMessage}
}

// HandleErrorGin maps domain errors to HTTP status codes and writes a JSON response.
// Server side failures are logged at error level with the full chain; client
// errors are logged at warn level.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	status, body := mapError(err)
	if logger != nil {
		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request failed",
			slog.Int("status_code", status),
			slog.String("error_code", body.Error),
			slog.Any("error", err),
		)
	}

	c.JSON(status, body)
}

// HandleBadRequestGin writes a 400 for bodies or parameters that could not be decoded.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	writeClientError(c, logger, http.StatusBadRequest, "bad_request", "bad request", err)
}

// HandleValidationErrorGin writes a 422 for well formed requests that fail validation.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	writeClientError(c, logger, http.StatusUnprocessableEntity, "validation_error", "validation failed", err)
}

func writeClientError(c *gin.Context, logger *slog.Logger, status int, code, logMsg string, err error) {
	if logger != nil {
		logger.Warn(logMsg, slog.Any("error", err))
	}
	c.JSON(status, ErrorResponse{Error: code, Message: err.Error()})
}
