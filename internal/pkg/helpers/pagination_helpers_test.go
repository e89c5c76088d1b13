package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func contextWithQuery(query string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/recognition/received/STU001?"+query, nil)
	return c
}

func TestParseLimitOffset(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", DefaultLimit, 0},
		{"explicit values", "limit=20&offset=40", 20, 40},
		{"limit above max falls back", "limit=500", DefaultLimit, 0},
		{"zero limit falls back", "limit=0", DefaultLimit, 0},
		{"negative offset falls back", "offset=-5", DefaultLimit, 0},
		{"non-numeric values fall back", "limit=abc&offset=xyz", DefaultLimit, 0},
		{"max limit accepted", "limit=100", MaxLimit, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := ParseLimitOffset(contextWithQuery(tt.query))
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	t.Run("first page with more to come", func(t *testing.T) {
		info := NewPaginationInfo(120, 50, 0, 50)
		assert.Equal(t, int64(120), info.Total)
		assert.True(t, info.HasMore)
		assert.Equal(t, 3, info.TotalPages)
		assert.Equal(t, 1, info.CurrentPage)
	})

	t.Run("last partial page", func(t *testing.T) {
		info := NewPaginationInfo(120, 50, 100, 20)
		assert.False(t, info.HasMore)
		assert.Equal(t, 3, info.TotalPages)
		assert.Equal(t, 3, info.CurrentPage)
	})

	t.Run("empty result", func(t *testing.T) {
		info := NewPaginationInfo(0, 50, 0, 0)
		assert.False(t, info.HasMore)
		assert.Equal(t, 0, info.TotalPages)
		assert.Equal(t, 1, info.CurrentPage)
	})
}
