// Пакет rest — HTTP-граница поиска: парсинг query-параметров, коды ответов,
// маршрутизация. Вся поисковая логика живёт в usecase/engine.
package rest

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/inventory_search/internal/domain"
	"github.com/Gunvolt24/inventory_search/internal/ports"
	"github.com/Gunvolt24/inventory_search/pkg/httpx"
	"github.com/Gunvolt24/inventory_search/pkg/validate"
)

// Handler — HTTP-хендлеры поиска поверх SearchReadService.
type Handler struct {
	service        ports.SearchReadService
	log            ports.Logger
	handlerTimeout time.Duration
}

// NewHandler — конструктор. handlerTimeout <= 0 — без принудительного таймаута.
func NewHandler(service ports.SearchReadService, log ports.Logger, handlerTimeout time.Duration) *Handler {
	return &Handler{service: service, log: log, handlerTimeout: handlerTimeout}
}

// NewRouter — собирает маршруты и middleware.
// otelServiceName != "" включает otelgin-трейсинг входящих запросов.
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.GET("/items/search", h.searchItems)
	api.GET("/items/:partNumber/peak", h.getPeak)

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.Header("Allow", http.MethodGet)
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return r
}

// searchItems — GET /api/v1/items/search.
// Пустая выдача — 200 с total=0; невалидные параметры — 400.
func (h *Handler) searchItems(c *gin.Context) {
	ctx := c.Request.Context()
	if h.handlerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.handlerTimeout)
		defer cancel()
	}

	query := parseSearchQuery(c)

	result, err := h.service.Search(ctx, query)
	if err != nil {
		if errors.Is(err, validate.ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Errorf(ctx, "Search failed criteria=%q err=%v", query.Criteria, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// getPeak — GET /api/v1/items/:partNumber/peak.
// Неизвестный артикул — 404.
func (h *Handler) getPeak(c *gin.Context) {
	ctx := c.Request.Context()
	if h.handlerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.handlerTimeout)
		defer cancel()
	}

	partNumber := strings.TrimSpace(c.Param("partNumber"))
	if partNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty part number"})
		return
	}

	peak, err := h.service.Peak(ctx, partNumber)
	if err != nil {
		h.log.Errorf(ctx, "Peak failed part_number=%s err=%v", partNumber, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if peak == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "part not found"})
		return
	}

	c.JSON(http.StatusOK, peak)
}

// parseSearchQuery — разбор query-параметров поиска.
// Параметры не нормализуются здесь: нормализация и валидация — забота нижних слоёв.
func parseSearchQuery(c *gin.Context) domain.SearchQuery {
	page, size := httpx.ParsePageSize(c, domain.MaxPageSize)

	query := domain.SearchQuery{
		Criteria:      c.Query("q"),
		By:            domain.SearchBy(c.DefaultQuery("by", string(domain.ByPartNumber))),
		OnlyAvailable: isTruthy(c.Query("onlyAvailable")),
		Page:          page,
		Size:          size,
	}

	if raw := c.Query("branches"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				query.Branches = append(query.Branches, b)
			}
		}
	}

	if raw := c.Query("sort"); raw != "" {
		field, dir, found := strings.Cut(raw, ":")
		spec := &domain.SortSpec{Field: field, Direction: domain.SortAsc}
		if found && dir != "" {
			// Направление не приводится к asc/desc: неизвестное значение
			// должен отклонить валидатор, а не маскировать парсер.
			spec.Direction = domain.SortDirection(strings.ToLower(strings.TrimSpace(dir)))
		}
		query.Sort = spec
	}

	return query
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
