package ports

import (
	"context"

	"github.com/Gunvolt24/inventory_search/internal/domain"
)

// SearchClient — удалённая поисковая способность, потребляемая оркестратором.
// Отмена — через контекст: реализация обязана освобождать транспортные
// ресурсы при ctx.Done() и возвращать ctx.Err().
type SearchClient interface {
	Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResult, error)
	GetPeak(ctx context.Context, partNumber string) (*domain.PeakAvailability, error)
}
