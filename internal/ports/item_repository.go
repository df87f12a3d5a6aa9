package ports

import (
	"context"

	"github.com/Gunvolt24/inventory_search/internal/domain"
)

// ItemRepository — хранилище позиций склада.
// Реализации обязаны возвращать копии: мутация результата вызывающим
// не должна портить общее состояние.
type ItemRepository interface {
	GetAll(ctx context.Context) ([]domain.InventoryItem, error)
	FindByPartNumber(ctx context.Context, partNumber string) ([]domain.InventoryItem, error)
	Save(ctx context.Context, item *domain.InventoryItem) error
}
