package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	categoryDomain "github.com/allisson/taxledger/internal/category/domain"
	"github.com/allisson/taxledger/internal/category/http/dto"
	"github.com/allisson/taxledger/internal/category/usecase/mocks"
	ledgerDomain "github.com/allisson/taxledger/internal/ledger/domain"
)

func setupTestHandler(t *testing.T) (*CategoryHandler, *mocks.MockCategoryUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockCategoryUseCase := mocks.NewMockCategoryUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewCategoryHandler(mockCategoryUseCase, logger), mockCategoryUseCase
}

func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func sampleCategory() *categoryDomain.Category {
	return &categoryDomain.Category{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      "Software",
		Kind:      ledgerDomain.KindExpense,
		CreatedAt: time.Now().UTC(),
	}
}

func TestCategoryHandler_CreateHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		category := sampleCategory()

		mockUseCase.On("Create", mock.Anything, &categoryDomain.CreateCategoryInput{
			Name: "Software",
			Kind: ledgerDomain.KindExpense,
		}).Return(category, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/categories", dto.CreateCategoryRequest{
			Name: "Software",
			Kind: "expense",
		})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.CategoryResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, category.ID.String(), response.ID)
		assert.Equal(t, "expense", response.Kind)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/categories", nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("{")))

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_ValidationFailed", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/categories", dto.CreateCategoryRequest{Name: "Misc", Kind: "asset"})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_AlreadyExists", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Create", mock.Anything, mock.Anything).
			Return(nil, categoryDomain.ErrCategoryAlreadyExists).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/categories", dto.CreateCategoryRequest{
			Name: "Software",
			Kind: "expense",
		})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestCategoryHandler_GetHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		category := sampleCategory()

		mockUseCase.On("Get", mock.Anything, category.ID).Return(category, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/categories/"+category.ID.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: category.ID.String()}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		id := uuid.Must(uuid.NewV7())

		mockUseCase.On("Get", mock.Anything, id).Return(nil, categoryDomain.ErrCategoryNotFound).Once()

		c, w := createTestContext(http.MethodGet, "/v1/categories/"+id.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: id.String()}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_InvalidUUID", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/categories/x", nil)
		c.Params = gin.Params{{Key: "id", Value: "x"}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestCategoryHandler_DeleteHandler(t *testing.T) {
	handler, mockUseCase := setupTestHandler(t)
	id := uuid.Must(uuid.NewV7())

	mockUseCase.On("Delete", mock.Anything, id).Return(nil).Once()

	c, w := createTestContext(http.MethodDelete, "/v1/categories/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	handler.DeleteHandler(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCategoryHandler_ListHandler(t *testing.T) {
	t.Run("Success_FilterByKind", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("List", mock.Anything, ledgerDomain.KindExpense).
			Return([]*categoryDomain.Category{sampleCategory()}, nil).
			Once()

		router := gin.New()
		handler.RegisterRoutes(router.Group("/v1"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/categories?kind=Expense", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListCategoriesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Data, 1)
	})

	t.Run("Error_InvalidKind", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/categories?kind=asset", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
