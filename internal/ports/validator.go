package ports

import (
	"context"

	"github.com/Gunvolt24/inventory_search/internal/domain"
)

// ItemValidator — доменная валидация позиции (для ingestion-потока).
type ItemValidator interface {
	Validate(ctx context.Context, item *domain.InventoryItem) error
}

// QueryValidator — граница валидации поисковых запросов: page/size/by/sort
// отсекаются до движка.
type QueryValidator interface {
	ValidateQuery(ctx context.Context, query *domain.SearchQuery) error
}
