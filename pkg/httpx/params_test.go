package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gunvolt24/inventory_search/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// Утилита для создания *gin.Context с query-строкой
func ctxWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/?"+rawQuery, http.NoBody)
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c
}

func TestClampInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		v, min, max int
		want        int
	}{
		{"below_min", 0, 1, 10, 1},
		{"above_max", 11, 1, 10, 10},
		{"inside", 5, 1, 10, 5},
		{"equal_min", 1, 1, 10, 1},
		{"equal_max", 10, 1, 10, 10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := httpx.ClampInt(tt.v, tt.min, tt.max); got != tt.want {
				t.Fatalf("ClampInt(%d,%d,%d) = %d, want %d", tt.v, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestParsePageSize_Defaults_NoQuery(t *testing.T) {
	t.Parallel()

	c := ctxWithQuery("")
	page, size := httpx.ParsePageSize(c, 200)
	if page != 0 || size != httpx.DefaultPageSize {
		t.Fatalf("got page=%d size=%d, want 0/%d", page, size, httpx.DefaultPageSize)
	}
}

func TestParsePageSize_QueryProvided(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{"explicit", "page=3&size=50", 3, 50},
		{"size_above_max_clamped", "size=500", 0, 200},
		{"size_below_min_clamped", "size=0", 0, 1},
		{"negative_page_ignored", "page=-1", 0, httpx.DefaultPageSize},
		{"garbage_page_ignored", "page=abc&size=10", 0, 10},
		{"garbage_size_default", "size=xyz", 0, httpx.DefaultPageSize},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := ctxWithQuery(tt.query)
			page, size := httpx.ParsePageSize(c, 200)
			if page != tt.wantPage || size != tt.wantSize {
				t.Fatalf("ParsePageSize(%q) = page %d size %d, want %d/%d",
					tt.query, page, size, tt.wantPage, tt.wantSize)
			}
		})
	}
}
