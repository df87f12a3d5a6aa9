package orchestrator

import (
	"context"
	"strings"

	"github.com/Gunvolt24/inventory_search/internal/client"
	"github.com/Gunvolt24/inventory_search/internal/domain"
)

// LookupPeak — пиковая доступность артикула через второй кэш-инстанс.
// Конкурентные запросы одного артикула разделяют один pending-хэндл
// и порождают не больше одного сетевого вызова.
// Отмена ctx вызывающего прерывает только его ожидание, не общий вызов.
func (o *Orchestrator) LookupPeak(ctx context.Context, partNumber string) (*domain.PeakAvailability, error) {
	key := strings.ToLower(strings.TrimSpace(partNumber))

	o.mu.Lock()
	if handle, ok := o.peakCache.Get(key); ok {
		o.mu.Unlock()
		return handle.Await(ctx)
	}

	handle := client.NewPending[domain.PeakAvailability]()
	o.peakCache.Put(key, handle)
	o.mu.Unlock()

	go func() {
		peak, err := o.searchClient.GetPeak(context.Background(), partNumber)
		if err != nil {
			// Ошибка не должна отравлять кэш: убираем хэндл, чтобы
			// следующая попытка повторила сеть.
			o.mu.Lock()
			if cached, ok := o.peakCache.Get(key); ok && cached == handle {
				o.peakCache.Remove(key)
			}
			o.mu.Unlock()
		}
		handle.Resolve(peak, err)
	}()

	return handle.Await(ctx)
}
