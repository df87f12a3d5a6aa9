// Пакет orchestrator — клиентская машина состояний поиска: дебаунс триггеров,
// построение запроса из состояния формы/сортировки/страницы, отмена
// вытесненных запросов и доставка результата ровно один раз на поколение.
package orchestrator

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/inventory_search/internal/cache/memory"
	"github.com/Gunvolt24/inventory_search/internal/client"
	"github.com/Gunvolt24/inventory_search/internal/domain"
	"github.com/Gunvolt24/inventory_search/internal/ports"
)

// CancelNotice — текст info-уведомления при вытеснении запроса.
// Отмена — не ошибка: категория уведомления информационная.
const CancelNotice = "Previous search cancelled."

// DefaultDebounce — окно дебаунса по умолчанию.
const DefaultDebounce = 50 * time.Millisecond

// DefaultPageSize — размер страницы по умолчанию.
const DefaultPageSize = 20

// Form — состояние поисковой формы на момент срабатывания дебаунса.
type Form struct {
	Criteria      string
	By            domain.SearchBy
	Branches      []string
	OnlyAvailable bool
}

// Config — настройки оркестратора.
type Config struct {
	Debounce time.Duration // <= 0 → DefaultDebounce
	PageSize int           // <= 0 → DefaultPageSize
}

// SearchCache — кэш результатов поиска (разделяемые pending-хэндлы).
type SearchCache = memory.Cache[string, *client.Pending[domain.SearchResult]]

// PeakCache — кэш пиковой доступности.
type PeakCache = memory.Cache[string, *client.Pending[domain.PeakAvailability]]

// inflight — текущий незавершённый запрос поколения.
// owned=true — сетевой вызов запущен нами; false — подписка на чужой хэндл.
type inflight struct {
	key    string
	handle *client.Pending[domain.SearchResult]
	cancel context.CancelFunc
	owned  bool
}

// Orchestrator — держит не больше одного «текущего» запроса;
// более ранний, но позже завершившийся запрос никогда не перекрывает
// состояние более нового поколения.
type Orchestrator struct {
	searchClient ports.SearchClient
	notifier     ports.Notifier
	validator    ports.QueryValidator
	log          ports.Logger

	searchCache *SearchCache
	peakCache   *PeakCache

	debounce time.Duration
	pageSize int
	onResult func(*domain.SearchResult)

	mu      sync.Mutex
	timer   *time.Timer
	form    Form
	sort    *domain.SortSpec
	page    int
	loading bool
	gen     uint64
	current *inflight
}

// NewOrchestrator — DI-конструктор. onResult вызывается вне внутреннего мьютекса
// ровно один раз на неотменённое поколение.
func NewOrchestrator(
	searchClient ports.SearchClient,
	notifier ports.Notifier,
	validator ports.QueryValidator,
	log ports.Logger,
	searchCache *SearchCache,
	peakCache *PeakCache,
	cfg Config,
	onResult func(*domain.SearchResult),
) *Orchestrator {
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Orchestrator{
		searchClient: searchClient,
		notifier:     notifier,
		validator:    validator,
		log:          log,
		searchCache:  searchCache,
		peakCache:    peakCache,
		debounce:     debounce,
		pageSize:     pageSize,
		onResult:     onResult,
	}
}

// UpdateForm — обновляет состояние формы без запуска поиска.
func (o *Orchestrator) UpdateForm(f Form) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.form = f
}

// Submit — явный запуск поиска (кнопка «искать»).
func (o *Orchestrator) Submit() {
	o.schedule()
}

// ToggleSort — клик по заголовку: активное asc-поле переключается в desc,
// любое другое поле сбрасывается в asc. Любая смена сортировки
// возвращает страницу на 0 и запускает поиск.
func (o *Orchestrator) ToggleSort(field string) {
	o.mu.Lock()
	if o.sort != nil && o.sort.Field == field && o.sort.Direction == domain.SortAsc {
		o.sort = &domain.SortSpec{Field: field, Direction: domain.SortDesc}
	} else {
		o.sort = &domain.SortSpec{Field: field, Direction: domain.SortAsc}
	}
	o.page = 0
	o.mu.Unlock()

	o.schedule()
}

// SetPage — смена страницы; сортировку не трогает.
func (o *Orchestrator) SetPage(page int) {
	o.mu.Lock()
	o.page = page
	o.mu.Unlock()

	o.schedule()
}

// Loading — идёт ли сейчас поиск.
func (o *Orchestrator) Loading() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.loading
}

// Page — текущая страница.
func (o *Orchestrator) Page() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.page
}

// Sort — копия текущей сортировки; nil — сортировка по умолчанию.
func (o *Orchestrator) Sort() *domain.SortSpec {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.sort == nil {
		return nil
	}
	s := *o.sort
	return &s
}

// Stop — останавливает таймер дебаунса и отменяет незавершённый запрос.
// Уведомление об отмене при остановке не выпускается.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
	if o.current != nil {
		o.current.cancel()
		o.current = nil
	}
	o.loading = false
}

// schedule — перезапускает окно дебаунса: выживает только последний триггер.
func (o *Orchestrator) schedule() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.timer != nil {
		o.timer.Stop()
	}
	o.timer = time.AfterFunc(o.debounce, o.fire)
}

// fire — срабатывание дебаунса: собрать запрос из текущего состояния,
// провалидировать и отправить.
func (o *Orchestrator) fire() {
	ctx := context.Background()

	o.mu.Lock()
	o.timer = nil
	query := domain.SearchQuery{
		Criteria:      o.form.Criteria,
		By:            o.form.By,
		Branches:      append([]string(nil), o.form.Branches...),
		OnlyAvailable: o.form.OnlyAvailable,
		Page:          o.page,
		Size:          o.pageSize,
	}
	if o.sort != nil {
		s := *o.sort
		query.Sort = &s
	}
	o.mu.Unlock()

	if err := o.validator.ValidateQuery(ctx, &query); err != nil {
		// Невалидная форма — поиск не запускается, пользователю предупреждение.
		o.notifier.Warning(ctx, err.Error())
		return
	}

	o.dispatch(ctx, query)
}
