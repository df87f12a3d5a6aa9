package domain

import (
	"sort"
	"strconv"
	"strings"
)

// SearchBy — поле, по которому ищем подстроку.
type SearchBy string

const (
	ByPartNumber  SearchBy = "partNumber"
	ByDescription SearchBy = "description"
	BySupplierSku SearchBy = "supplierSku"
)

// SortDirection — направление сортировки.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortSpec — поле и направление сортировки; nil в SearchQuery = сортировка по умолчанию.
type SortSpec struct {
	Field     string        `json:"field"`
	Direction SortDirection `json:"direction"`
}

// MaxPageSize — верхняя граница размера страницы (валидируется на границе).
const MaxPageSize = 200

// SearchQuery — неизменяемое значение поискового запроса.
// Эквивалентность для кэширования определяется нормализованной формой (CacheKey),
// а не структурным равенством.
type SearchQuery struct {
	Criteria      string    `json:"criteria"`
	By            SearchBy  `json:"by"`
	Branches      []string  `json:"branches,omitempty"`
	OnlyAvailable bool      `json:"only_available"`
	Page          int       `json:"page"`
	Size          int       `json:"size"`
	Sort          *SortSpec `json:"sort,omitempty"`
}

// CacheKey — детерминированный канонический ключ запроса.
// Нормализация: criteria без пробелов по краям и в нижнем регистре;
// branches отсортированы без учёта регистра; onlyAvailable как "0"/"1";
// sort как "field:direction" или пустая строка.
// Пустой branches ≠ "все филиалы": пустота означает отсутствие фильтра.
func (q SearchQuery) CacheKey() string {
	branches := make([]string, 0, len(q.Branches))
	for _, b := range q.Branches {
		branches = append(branches, strings.ToLower(strings.TrimSpace(b)))
	}
	sort.Strings(branches)

	avail := "0"
	if q.OnlyAvailable {
		avail = "1"
	}

	sortPart := ""
	if q.Sort != nil {
		sortPart = q.Sort.Field + ":" + string(q.Sort.Direction)
	}

	parts := []string{
		strings.ToLower(strings.TrimSpace(q.Criteria)),
		string(q.By),
		strings.Join(branches, ","),
		avail,
		strconv.Itoa(q.Page),
		strconv.Itoa(q.Size),
		sortPart,
	}
	return strings.Join(parts, "|")
}
