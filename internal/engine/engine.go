// Пакет engine — детерминированные filter → sort → page над полным набором
// позиций. Чистые функции: исходный набор не мутируется, результат — копии.
// Движок рассчитывает на уже провалидированные page/size (граница — pkg/validate).
package engine

import (
	"sort"
	"strings"

	"github.com/Gunvolt24/inventory_search/internal/domain"
)

// Сортируемые поля. supplierSku и lots сортировке не подлежат —
// это отсекается валидатором до движка.
const (
	SortFieldPartNumber       = "partNumber"
	SortFieldDescription      = "description"
	SortFieldBranch           = "branch"
	SortFieldUOM              = "uom"
	SortFieldAvailableQty     = "availableQty"
	SortFieldLeadTimeDays     = "leadTimeDays"
	SortFieldLastPurchaseDate = "lastPurchaseDate"
)

// SortableFields — множество допустимых полей сортировки.
func SortableFields() map[string]struct{} {
	return map[string]struct{}{
		SortFieldPartNumber:       {},
		SortFieldDescription:      {},
		SortFieldBranch:           {},
		SortFieldUOM:              {},
		SortFieldAvailableQty:     {},
		SortFieldLeadTimeDays:     {},
		SortFieldLastPurchaseDate: {},
	}
}

// Apply — выполняет запрос над полным набором позиций:
// фильтр по критерию/филиалам/доступности, устойчивая сортировка, пагинация.
// Total считается после фильтрации, до пагинации.
func Apply(items []domain.InventoryItem, q domain.SearchQuery) domain.SearchResult {
	filtered := Filter(items, q)
	SortItems(filtered, q.Sort)
	total := len(filtered)

	return domain.SearchResult{
		Total: total,
		Items: Page(filtered, q.Page, q.Size),
	}
}

// Filter — применяет три фильтра запроса; возвращает новый срез копий.
func Filter(items []domain.InventoryItem, q domain.SearchQuery) []domain.InventoryItem {
	criteria := strings.ToLower(strings.TrimSpace(q.Criteria))

	branches := make(map[string]struct{}, len(q.Branches))
	for _, b := range q.Branches {
		branches[strings.ToLower(strings.TrimSpace(b))] = struct{}{}
	}

	out := make([]domain.InventoryItem, 0, len(items))
	for i := range items {
		item := &items[i]

		// Подстрочный фильтр по одному полю; пустой критерий — без фильтра.
		if criteria != "" && !strings.Contains(strings.ToLower(fieldFor(item, q.By)), criteria) {
			continue
		}

		// Пустое множество филиалов — без фильтра, а не "ничего не подходит".
		if len(branches) > 0 {
			if _, ok := branches[strings.ToLower(item.Branch)]; !ok {
				continue
			}
		}

		if q.OnlyAvailable && item.AvailableQty <= 0 {
			continue
		}

		out = append(out, *item.Clone())
	}
	return out
}

// fieldFor — значение поля, выбранного параметром by; по умолчанию partNumber.
func fieldFor(item *domain.InventoryItem, by domain.SearchBy) string {
	switch by {
	case domain.ByDescription:
		return item.Description
	case domain.BySupplierSku:
		return item.SupplierSku
	default:
		return item.PartNumber
	}
}

// SortItems — устойчивая сортировка на месте.
// nil или неизвестное поле → partNumber по возрастанию.
// Для опциональных полей (leadTimeDays, lastPurchaseDate) позиции со значением
// всегда идут раньше позиций без значения, независимо от направления.
func SortItems(items []domain.InventoryItem, spec *domain.SortSpec) {
	field := SortFieldPartNumber
	desc := false
	if spec != nil {
		if _, ok := SortableFields()[spec.Field]; ok {
			field = spec.Field
		}
		desc = spec.Direction == domain.SortDesc
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := &items[i], &items[j]

		// Позиции без значения опционального поля всегда в конце;
		// направление сортировки на это не влияет.
		if p := presenceRank(a, field) - presenceRank(b, field); p != 0 {
			return p < 0
		}

		c := compareItems(a, b, field)
		if desc {
			return c > 0
		}
		return c < 0
	})
}

// presenceRank — 0 для присутствующего значения опционального поля, 1 для nil.
// Для остальных полей всегда 0.
func presenceRank(item *domain.InventoryItem, field string) int {
	switch field {
	case SortFieldLeadTimeDays:
		if item.LeadTimeDays == nil {
			return 1
		}
	case SortFieldLastPurchaseDate:
		if item.LastPurchaseDate == nil {
			return 1
		}
	}
	return 0
}

// compareItems — трёхзначное сравнение по полю сортировки
// (для опциональных полей — только внутри группы присутствующих значений).
func compareItems(a, b *domain.InventoryItem, field string) int {
	switch field {
	case SortFieldDescription:
		return compareStringsFold(a.Description, b.Description)
	case SortFieldBranch:
		return compareStringsFold(a.Branch, b.Branch)
	case SortFieldUOM:
		return compareStringsFold(a.UOM, b.UOM)
	case SortFieldAvailableQty:
		return compareInts(a.AvailableQty, b.AvailableQty)
	case SortFieldLeadTimeDays:
		return compareOptionalInts(a.LeadTimeDays, b.LeadTimeDays)
	case SortFieldLastPurchaseDate:
		return compareOptionalDates(a.LastPurchaseDate, b.LastPurchaseDate)
	default:
		return compareStringsFold(a.PartNumber, b.PartNumber)
	}
}

// Page — срез страницы [page*size, page*size+size).
// Выход за пределы набора — пустой срез, не ошибка.
// page ограничивается до умножения: page*size может переполниться
// на больших, но формально валидных номерах страниц.
func Page(items []domain.InventoryItem, page, size int) []domain.InventoryItem {
	if page < 0 || size <= 0 || page > len(items)/size {
		return []domain.InventoryItem{}
	}
	start := page * size
	if start >= len(items) {
		return []domain.InventoryItem{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
