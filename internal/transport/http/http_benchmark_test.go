//go:build !integration

package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/inventory_search/internal/domain"
)

// --- Бенчмарки ---

func benchItem(i int) domain.InventoryItem {
	return domain.InventoryItem{
		PartNumber:   "BOLT-" + strconv.Itoa(i),
		SupplierSku:  "SKU-" + strconv.Itoa(i),
		Description:  "Hex bolt M" + strconv.Itoa(i%12),
		Branch:       "A",
		UOM:          "ea",
		AvailableQty: i % 50,
	}
}

// Базовый бенч: поиск со страницей из 20 позиций — сравниваем LEAN vs FULL пайплайн
func BenchmarkHTTP_Search(b *testing.B) {
	log := nopLogger{}

	items := make([]domain.InventoryItem, 20)
	for i := range items {
		items[i] = benchItem(i)
	}
	h := NewHandler(svcFixed{res: &domain.SearchResult{Total: len(items), Items: items}}, log, 2*time.Second)

	lean := makeLeanRouter(h)
	full := makeFullRouter(h)

	b.Run("lean/no-mw", func(b *testing.B) {
		benchServeGET(b, lean, "/api/v1/items/search?q=bolt")
	})
	b.Run("full/prod-mw", func(b *testing.B) {
		benchServeGET(b, full, "/api/v1/items/search?q=bolt")
	})
}

// Потолок без маршалинга: та же выдача, но заранее закодированный JSON
// Показывает, сколько «ест» encoding/json в хендлере.
func BenchmarkHTTP_Search_PreMarshaledBytes(b *testing.B) {
	items := make([]domain.InventoryItem, 20)
	for i := range items {
		items[i] = benchItem(i)
	}
	raw, _ := json.Marshal(domain.SearchResult{Total: len(items), Items: items})

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	// отдельный эндпоинт, который просто отдаёт готовый []byte
	r.GET("/api/v1/items/search", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", raw)
	})

	benchServeGET(b, r, "/api/v1/items/search?q=bolt")
}

// Размер страницы: 10/50/100 — измеряем рост аллокаций и времени
func BenchmarkHTTP_Search_PageSizes(b *testing.B) {
	log := nopLogger{}

	for _, n := range []int{10, 50, 100} {
		b.Run("N="+strconv.Itoa(n), func(b *testing.B) {
			items := make([]domain.InventoryItem, n)
			for i := range items {
				items[i] = benchItem(i)
			}
			h := NewHandler(svcFixed{res: &domain.SearchResult{Total: n, Items: items}}, log, 2*time.Second)

			lean := makeLeanRouter(h)
			benchServeGET(b, lean, "/api/v1/items/search?q=bolt&size="+strconv.Itoa(n))
		})
	}
}

// Ошибочный путь (404): "цена" роутера и 404-хендлера
func BenchmarkHTTP_404(b *testing.B) {
	log := nopLogger{}
	h := NewHandler(svcFixed{res: &domain.SearchResult{}}, log, 2*time.Second)
	r := makeLeanRouter(h)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, "/nope", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusNotFound {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}

// --- nopLogger — логгер, который не делает ничего. ---

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// --- Стабы ---

type svcFixed struct{ res *domain.SearchResult }

func (s svcFixed) Search(context.Context, domain.SearchQuery) (*domain.SearchResult, error) {
	return s.res, nil
}

func (s svcFixed) Peak(context.Context, string) (*domain.PeakAvailability, error) {
	return &domain.PeakAvailability{}, nil
}

// --- функции-помощники ---

func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New() // без Recovery/otel/logger — получаем меньшую аллокацию
	r.GET("/api/v1/items/search", h.searchItems)
	r.GET("/api/v1/items/:partNumber/peak", h.getPeak)
	return r
}

func makeFullRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	// prod пайплайн из NewRouter
	return NewRouter(h, "", "")
}

func benchServeGET(b *testing.B, r *gin.Engine, path string) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	// Параллельный режим ближе к реальности без TCP
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			// вычитываем тело
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusOK {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}
