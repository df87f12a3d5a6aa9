package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/inventory_search/internal/domain"
	"github.com/Gunvolt24/inventory_search/internal/engine"
	"github.com/Gunvolt24/inventory_search/internal/ports"
)

// Проверка, что QueryValidator удовлетворяет интерфейсу QueryValidator.
var _ ports.QueryValidator = (*QueryValidator)(nil)

// ErrInvalidQuery — базовая (sentinel error) ошибка валидации запроса.
var ErrInvalidQuery = errors.New("search query validation failed")

// QueryValidator — граница валидации поисковых запросов.
// Движок получает только уже проверенные page/size/by/sort.
type QueryValidator struct{}

// NewQueryValidator — конструктор QueryValidator.
func NewQueryValidator() *QueryValidator { return &QueryValidator{} }

// ValidateQuery — проверяет корректность параметров запроса.
// Возвращает ErrInvalidQuery (с обёрнутой причиной) при любой проблеме.
func (v *QueryValidator) ValidateQuery(_ context.Context, q *domain.SearchQuery) error {
	if q == nil {
		return fmt.Errorf("%w: запрос не может быть nil", ErrInvalidQuery)
	}
	if q.Page < 0 {
		return fmt.Errorf("%w: page должен быть >= 0 (получено %d)", ErrInvalidQuery, q.Page)
	}
	if q.Size < 1 || q.Size > domain.MaxPageSize {
		return fmt.Errorf("%w: size должен быть в диапазоне [1, %d] (получено %d)", ErrInvalidQuery, domain.MaxPageSize, q.Size)
	}
	if err := v.validateBy(q.By); err != nil {
		return err
	}
	return v.validateSort(q.Sort)
}

// validateBy — поле поиска из фиксированного множества.
func (v *QueryValidator) validateBy(by domain.SearchBy) error {
	switch by {
	case domain.ByPartNumber, domain.ByDescription, domain.BySupplierSku:
		return nil
	default:
		return fmt.Errorf("%w: недопустимое поле поиска %q", ErrInvalidQuery, by)
	}
}

// validateSort — поле сортировки из допустимого множества; supplierSku и lots
// не сортируемы и отсекаются здесь, а не в движке.
func (v *QueryValidator) validateSort(spec *domain.SortSpec) error {
	if spec == nil {
		return nil
	}
	if spec.Field == "supplierSku" || spec.Field == "lots" {
		return fmt.Errorf("%w: поле %q не поддерживает сортировку", ErrInvalidQuery, spec.Field)
	}
	if _, ok := engine.SortableFields()[spec.Field]; !ok {
		return fmt.Errorf("%w: недопустимое поле сортировки %q", ErrInvalidQuery, spec.Field)
	}
	if spec.Direction != domain.SortAsc && spec.Direction != domain.SortDesc {
		return fmt.Errorf("%w: направление сортировки должно быть asc или desc (получено %q)", ErrInvalidQuery, spec.Direction)
	}
	return nil
}
