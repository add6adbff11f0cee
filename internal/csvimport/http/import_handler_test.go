package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	importDomain "github.com/allisson/taxledger/internal/csvimport/domain"
	"github.com/allisson/taxledger/internal/csvimport/http/dto"
	"github.com/allisson/taxledger/internal/csvimport/usecase/mocks"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
)

const testCSV = "date,description,amount\n2024-07-01,Invoice 0001,1100\n"

func setupTestRouter(t *testing.T, maxFileSize int64) (*gin.Engine, *mocks.MockImportUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockImportUseCase := mocks.NewMockImportUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := gin.New()
	NewImportHandler(mockImportUseCase, maxFileSize, logger).RegisterRoutes(router.Group("/v1"))
	return router, mockImportUseCase
}

func uploadRequest(t *testing.T, path, field, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, "statement.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// readsCSV matches the reader handed to the use case by its content.
func readsCSV(want string) interface{} {
	return mock.MatchedBy(func(r io.Reader) bool {
		data, err := io.ReadAll(r)
		return err == nil && string(data) == want
	})
}

func validRow() importDomain.Row {
	gst := int64(10000)
	return importDomain.Row{
		Line:        2,
		Status:      importDomain.StatusValid,
		Date:        time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		Description: "Invoice 0001",
		Kind:        ledgerDomain.KindIncome,
		AmountCents: 110000,
		GSTCents:    &gst,
	}
}

func TestImportHandler_PreviewHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockUseCase := setupTestRouter(t, 1<<20)
		invalid := importDomain.Row{Line: 3, Status: importDomain.StatusInvalid, Errors: []string{"date is required"}}

		mockUseCase.On("Preview", mock.Anything, readsCSV(testCSV)).
			Return(importDomain.NewPreview([]importDomain.Row{validRow(), invalid}), nil).
			Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, uploadRequest(t, "/v1/imports/preview", "file", testCSV))
		require.Equal(t, http.StatusOK, w.Code)

		var response dto.PreviewResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, dto.SummaryResponse{Total: 2, Valid: 1, Invalid: 1}, response.Summary)
		require.Len(t, response.Rows, 2)
		assert.Equal(t, "2024-07-01", response.Rows[0].Date)
		assert.Equal(t, "1100.00", response.Rows[0].Amount)
		require.NotNil(t, response.Rows[0].GST)
		assert.Equal(t, "100.00", *response.Rows[0].GST)
		assert.Equal(t, "", response.Rows[1].Date)
		assert.Equal(t, []string{"date is required"}, response.Rows[1].Errors)
	})

	t.Run("Error_MissingFile", func(t *testing.T) {
		router, _ := setupTestRouter(t, 1<<20)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, uploadRequest(t, "/v1/imports/preview", "upload", testCSV))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_FileTooLarge", func(t *testing.T) {
		router, _ := setupTestRouter(t, 10)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, uploadRequest(t, "/v1/imports/preview", "file", testCSV))
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("Error_MissingColumns", func(t *testing.T) {
		router, mockUseCase := setupTestRouter(t, 1<<20)

		mockUseCase.On("Preview", mock.Anything, mock.Anything).
			Return(nil, importDomain.ErrMissingColumns).
			Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, uploadRequest(t, "/v1/imports/preview", "file", "foo\n"))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestImportHandler_CommitHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockUseCase := setupTestRouter(t, 0)
		entry := &ledgerDomain.Entry{
			ID:          uuid.Must(uuid.NewV7()),
			Kind:        ledgerDomain.KindIncome,
			Date:        time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
			Description: "Invoice 0001",
			AmountCents: 110000,
			GSTCents:    10000,
		}

		mockUseCase.On("Commit", mock.Anything, readsCSV(testCSV)).Return(&importDomain.CommitResult{
			Preview: importDomain.NewPreview([]importDomain.Row{validRow()}),
			Created: []*ledgerDomain.Entry{entry},
		}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, uploadRequest(t, "/v1/imports/commit", "file", testCSV))
		require.Equal(t, http.StatusCreated, w.Code)

		var response dto.CommitResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 1, response.Summary.Valid)
		require.Len(t, response.Created, 1)
		assert.Equal(t, entry.ID.String(), response.Created[0].ID)
		assert.Equal(t, "Q1 FY2025", response.Created[0].Period.QuarterLabel)
	})

	t.Run("Error_TooManyRows", func(t *testing.T) {
		router, mockUseCase := setupTestRouter(t, 0)

		mockUseCase.On("Commit", mock.Anything, mock.Anything).
			Return(nil, importDomain.ErrTooManyRows).
			Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, uploadRequest(t, "/v1/imports/commit", "file", testCSV))
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}
