// Package http provides HTTP handlers for CSV imports.
package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	importDomain "github.com/allisson/taxledger/internal/csvimport/domain"
	"github.com/allisson/taxledger/internal/csvimport/http/dto"
	importUseCase "github.com/allisson/taxledger/internal/csvimport/usecase"
	"github.com/allisson/taxledger/internal/httputil"
)

// multipartOverhead is the allowance for multipart boundaries and headers on
// top of the file size limit.
const multipartOverhead = 64 << 10

var errFileRequired = errors.New("multipart form field \"file\" is required")

// ImportHandler handles CSV uploads.
type ImportHandler struct {
	importUseCase importUseCase.ImportUseCase
	maxFileSize   int64
	logger        *slog.Logger
}

// NewImportHandler creates a new import handler. Uploads larger than
// maxFileSize bytes are rejected with 413.
func NewImportHandler(
	importUseCase importUseCase.ImportUseCase,
	maxFileSize int64,
	logger *slog.Logger,
) *ImportHandler {
	return &ImportHandler{
		importUseCase: importUseCase,
		maxFileSize:   maxFileSize,
		logger:        logger,
	}
}

// RegisterRoutes mounts the import endpoints on the given router group.
func (h *ImportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	imports := rg.Group("/imports")
	imports.POST("/preview", h.PreviewHandler)
	imports.POST("/commit", h.CommitHandler)
}

// PreviewHandler classifies the rows of an uploaded CSV file.
// POST /v1/imports/preview (multipart field "file") - Returns 200 OK.
func (h *ImportHandler) PreviewHandler(c *gin.Context) {
	file, ok := h.openUpload(c)
	if !ok {
		return
	}
	defer file.Close() //nolint:errcheck

	preview, err := h.importUseCase.Preview(c.Request.Context(), file)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPreviewToResponse(preview))
}

// CommitHandler imports the valid rows of an uploaded CSV file.
// POST /v1/imports/commit (multipart field "file") - Returns 201 Created.
func (h *ImportHandler) CommitHandler(c *gin.Context) {
	file, ok := h.openUpload(c)
	if !ok {
		return
	}
	defer file.Close() //nolint:errcheck

	result, err := h.importUseCase.Commit(c.Request.Context(), file)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapCommitToResponse(result))
}

// openUpload returns the uploaded file or writes the error response.
func (h *ImportHandler) openUpload(c *gin.Context) (io.ReadCloser, bool) {
	if h.maxFileSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxFileSize+multipartOverhead)
	}

	header, err := c.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			httputil.HandleErrorGin(c, importDomain.ErrFileTooLarge, h.logger)
			return nil, false
		}
		httputil.HandleBadRequestGin(c, errFileRequired, h.logger)
		return nil, false
	}

	if h.maxFileSize > 0 && header.Size > h.maxFileSize {
		httputil.HandleErrorGin(c, importDomain.ErrFileTooLarge, h.logger)
		return nil, false
	}

	file, err := header.Open()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return nil, false
	}
	return file, true
}
