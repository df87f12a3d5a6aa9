// Пакет memory — репозиторий позиций склада в памяти.
// Используется как хранилище по умолчанию, когда Postgres не сконфигурирован,
// и в тестах верхних слоёв.
package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/Gunvolt24/inventory_search/internal/domain"
	"github.com/Gunvolt24/inventory_search/internal/ports"
)

// Проверка, что ItemRepository удовлетворяет интерфейсу ItemRepository.
var _ ports.ItemRepository = (*ItemRepository)(nil)

// itemKey — ключ позиции: (part_number, branch) в нижнем регистре.
type itemKey struct {
	partNumber string
	branch     string
}

// ItemRepository — потокобезопасное хранилище позиций в памяти.
// Наружу отдаются только копии: мутация результата вызывающим
// не трогает внутреннее состояние.
type ItemRepository struct {
	mu    sync.RWMutex
	items map[itemKey]*domain.InventoryItem
	order []itemKey // порядок первого появления
}

// NewItemRepository — конструктор ItemRepository.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{items: make(map[itemKey]*domain.InventoryItem)}
}

func keyOf(partNumber, branch string) itemKey {
	return itemKey{
		partNumber: strings.ToLower(partNumber),
		branch:     strings.ToLower(branch),
	}
}

// Save — идемпотентный upsert по ключу (part_number, branch).
func (r *ItemRepository) Save(_ context.Context, item *domain.InventoryItem) error {
	if item == nil || item.PartNumber == "" {
		return errors.New("item is empty or part_number is required")
	}
	if item.Branch == "" {
		return errors.New("branch is required")
	}

	key := keyOf(item.PartNumber, item.Branch)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[key]; !exists {
		r.order = append(r.order, key)
	}
	r.items[key] = item.Clone()
	return nil
}

// GetAll — копии всех позиций в порядке первого появления.
func (r *ItemRepository) GetAll(_ context.Context) ([]domain.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.InventoryItem, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, *r.items[key].Clone())
	}
	return out, nil
}

// FindByPartNumber — позиции артикула по всем филиалам (без учёта регистра).
// Если артикул неизвестен, возвращает пустой срез.
func (r *ItemRepository) FindByPartNumber(_ context.Context, partNumber string) ([]domain.InventoryItem, error) {
	want := strings.ToLower(partNumber)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.InventoryItem, 0)
	for _, key := range r.order {
		if key.partNumber == want {
			out = append(out, *r.items[key].Clone())
		}
	}
	return out, nil
}

// Seed — массовая загрузка позиций (например, стартовый снапшот).
// Невалидные позиции пропускаются, возвращается первая ошибка.
func (r *ItemRepository) Seed(ctx context.Context, items []domain.InventoryItem) error {
	var firstErr error
	for i := range items {
		if err := r.Save(ctx, &items[i]); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Len — количество позиций в хранилище.
func (r *ItemRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
