package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/taxledger/internal/httputil"
)

func contextFor(url string, params ...gin.Param) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, url, nil)
	c.Params = params
	return c
}

func TestParsePagination(t *testing.T) {
	const (
		badOffset = "invalid offset parameter: must be a non-negative integer"
		badLimit  = "invalid limit parameter: must be between 1 and 100"
	)

	tests := []struct {
		url    string
		offset int
		limit  int
		err    string
	}{
		{url: "/", offset: 0, limit: httputil.DefaultLimit},
		{url: "/?offset=10&limit=20", offset: 10, limit: 20},
		{url: "/?limit=100", offset: 0, limit: httputil.MaxLimit},
		{url: "/?limit=1&offset=0", offset: 0, limit: 1},
		{url: "/?offset=-1", err: badOffset},
		{url: "/?offset=abc", err: badOffset},
		{url: "/?offset=", err: badOffset},
		{url: "/?limit=0", err: badLimit},
		{url: "/?limit=101", err: badLimit},
		{url: "/?limit=xyz", err: badLimit},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			offset, limit, err := httputil.ParsePagination(contextFor(tt.url))
			if tt.err != "" {
				require.EqualError(t, err, tt.err)
				assert.Zero(t, offset)
				assert.Zero(t, limit)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.offset, offset)
			assert.Equal(t, tt.limit, limit)
		})
	}
}

func TestParseIDParam(t *testing.T) {
	id, err := httputil.ParseIDParam(
		contextFor("/", gin.Param{Key: "id", Value: "0190a6b2-7c1e-7a3d-9f00-5c2d4b1e8a11"}),
		"client",
	)
	require.NoError(t, err)
	assert.Equal(t, "0190a6b2-7c1e-7a3d-9f00-5c2d4b1e8a11", id.String())

	_, err = httputil.ParseIDParam(contextFor("/", gin.Param{Key: "id", Value: "not-a-uuid"}), "income")
	assert.EqualError(t, err, "invalid income ID format: must be a valid UUID")

	_, err = httputil.ParseIDParam(contextFor("/"), "expense")
	assert.EqualError(t, err, "invalid expense ID format: must be a valid UUID")
}
