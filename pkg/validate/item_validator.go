package validate

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Gunvolt24/inventory_search/internal/domain"
	"github.com/Gunvolt24/inventory_search/internal/ports"
)

// Проверка, что ItemValidator удовлетворяет интерфейсу ItemValidator.
var _ ports.ItemValidator = (*ItemValidator)(nil)

// ErrInvalidItem — базовая (sentinel error) ошибка валидации позиции.
var ErrInvalidItem = errors.New("inventory item validation failed")

// ItemValidator — доменная валидация позиции склада (ingestion-поток).
type ItemValidator struct{}

// NewItemValidator — конструктор ItemValidator.
func NewItemValidator() *ItemValidator { return &ItemValidator{} }

// Validate — проверяет корректность полей позиции.
// Возвращает ErrInvalidItem (с обёрнутой причиной) при любой проблеме.
func (v *ItemValidator) Validate(_ context.Context, item *domain.InventoryItem) error {
	if err := v.validateCore(item); err != nil {
		return err
	}
	return v.validateLots(item.Lots)
}

// validateCore — валидация основных полей позиции.
func (v *ItemValidator) validateCore(item *domain.InventoryItem) error {
	if item == nil {
		return fmt.Errorf("%w: позиция не может быть nil", ErrInvalidItem)
	}
	if item.PartNumber == "" {
		return fmt.Errorf("%w: part_number обязателен", ErrInvalidItem)
	}
	if item.AvailableQty < 0 {
		return fmt.Errorf("%w: available_qty должен быть неотрицательным", ErrInvalidItem)
	}
	if item.LeadTimeDays != nil && *item.LeadTimeDays < 0 {
		return fmt.Errorf("%w: lead_time_days должен быть неотрицательным", ErrInvalidItem)
	}
	return nil
}

// Валидация партий
func (v *ItemValidator) validateLots(lots []domain.LotInfo) error {
	for i := range lots {
		lot := &lots[i]
		idx := strconv.Itoa(i)

		if lot.LotNumber == "" {
			return fmt.Errorf("%w: lots[%s].lot_number обязателен", ErrInvalidItem, idx)
		}
		if lot.Qty < 0 {
			return fmt.Errorf("%w: lots[%s].qty должен быть неотрицательным", ErrInvalidItem, idx)
		}
	}
	return nil
}
