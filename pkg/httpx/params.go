package httpx

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// DefaultPageSize — размер страницы, если клиент не передал size.
const DefaultPageSize = 20

// ClampInt — ограничение значения v в диапазоне [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParsePageSize — читает page/size из query с дефолтами и границами.
// Нечисловые значения откатываются к дефолтам; границы зажимаются,
// чтобы мусорный ввод не превращался в 400 на ровном месте.
func ParsePageSize(c *gin.Context, maxSize int) (page, size int) {
	size = DefaultPageSize
	if v, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(DefaultPageSize))); err == nil {
		size = ClampInt(v, 1, maxSize)
	}
	if v, err := strconv.Atoi(c.DefaultQuery("page", "0")); err == nil && v >= 0 {
		page = v
	}
	return
}
