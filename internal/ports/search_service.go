package ports

import (
	"context"

	"github.com/Gunvolt24/inventory_search/internal/domain"
)

// SearchReadService — серверная сторона: выполнение запроса над полным
// набором позиций и агрегация пиковой доступности.
// Пустой результат — валидный успех (Total=0), не ошибка.
type SearchReadService interface {
	Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResult, error)
	Peak(ctx context.Context, partNumber string) (*domain.PeakAvailability, error)
}
