package orchestrator

import (
	"context"
	"errors"

	"github.com/Gunvolt24/inventory_search/internal/client"
	"github.com/Gunvolt24/inventory_search/internal/domain"
	"github.com/Gunvolt24/inventory_search/pkg/metrics"
)

// dispatch — запуск нового поколения поиска.
// Любой незавершённый запрос предыдущего поколения отменяется: в полёте
// всегда не больше одного запроса, поэтому более ранний не может перекрыть
// результат более нового.
func (o *Orchestrator) dispatch(ctx context.Context, query domain.SearchQuery) {
	key := query.CacheKey()

	o.mu.Lock()
	o.gen++
	gen := o.gen

	cancelled := false
	if o.current != nil {
		cur := o.current
		o.current = nil
		cur.cancel()
		if cur.owned {
			// Незавершённый хэндл вытесненного запроса не должен остаться в кэше,
			// иначе следующий запрос с тем же ключом навсегда ждал бы отменённый вызов.
			o.removeIfSame(cur.key, cur.handle)
		}
		cancelled = true
	}
	o.loading = true

	// Попадание в кэш: завершённый результат отдаём без сети,
	// незавершённый — разделяем с тем, кто его запустил.
	if handle, ok := o.searchCache.Get(key); ok {
		if handle.Settled() {
			result, err := handle.Await(context.Background())
			if err == nil {
				o.loading = false
				o.mu.Unlock()

				if cancelled {
					o.emitCancelNotice(ctx)
				}
				o.log.Infof(ctx, "search cache hit key=%s", key)
				o.deliver(result)
				metrics.SearchRequests.WithLabelValues("success").Inc()
				return
			}
			// Хэндл разрешён с ошибкой, но ещё не выметен — считаем промахом.
			o.searchCache.Remove(key)
		} else {
			subCtx, subCancel := context.WithCancel(context.Background())
			o.current = &inflight{key: key, handle: handle, cancel: subCancel, owned: false}
			o.mu.Unlock()

			if cancelled {
				o.emitCancelNotice(ctx)
			}
			o.log.Infof(ctx, "search joins in-flight request key=%s", key)
			go o.awaitShared(gen, handle, subCtx)
			return
		}
	}

	// Промах: свой сетевой вызов под свежим pending-хэндлом.
	handle := client.NewPending[domain.SearchResult]()
	o.searchCache.Put(key, handle)

	fetchCtx, cancel := context.WithCancel(context.Background())
	o.current = &inflight{key: key, handle: handle, cancel: cancel, owned: true}
	o.mu.Unlock()

	if cancelled {
		o.emitCancelNotice(ctx)
	}
	o.log.Infof(ctx, "search dispatched gen=%d key=%s", gen, key)
	go o.fetch(fetchCtx, gen, key, query, handle)
}

// fetch — сетевой вызов одного поколения.
func (o *Orchestrator) fetch(ctx context.Context, gen uint64, key string, query domain.SearchQuery, handle *client.Pending[domain.SearchResult]) {
	result, err := o.searchClient.Search(ctx, query)
	handle.Resolve(result, err)

	if err != nil {
		o.settleFailure(gen, key, handle, err)
		return
	}
	o.settleSuccess(gen, result)
}

// awaitShared — ожидание чужого in-flight хэндла.
func (o *Orchestrator) awaitShared(gen uint64, handle *client.Pending[domain.SearchResult], ctx context.Context) {
	result, err := handle.Await(ctx)
	if err != nil {
		// Ключ чистит владелец вызова; наша задача — только не доставить
		// устаревший или отменённый исход.
		o.settleFailure(gen, "", nil, err)
		return
	}
	o.settleSuccess(gen, result)
}

// settleSuccess — доставка успеха, если поколение всё ещё текущее.
func (o *Orchestrator) settleSuccess(gen uint64, result *domain.SearchResult) {
	o.mu.Lock()
	if gen != o.gen {
		// Поколение вытеснено: результат остаётся в кэше, но не всплывает.
		o.mu.Unlock()
		return
	}
	o.loading = false
	o.current = nil
	o.mu.Unlock()

	o.deliver(result)
	metrics.SearchRequests.WithLabelValues("success").Inc()
}

// settleFailure — обработка ошибки поколения.
// Отменённое поколение не доставляет ни успех, ни ошибку: только info-уведомление,
// уже выпущенное в момент отмены.
func (o *Orchestrator) settleFailure(gen uint64, key string, handle *client.Pending[domain.SearchResult], err error) {
	o.mu.Lock()
	if handle != nil {
		// Неудачный запрос не должен отравлять кэш: запись убирается,
		// чтобы следующая попытка повторила сеть.
		o.removeIfSame(key, handle)
	}
	if errors.Is(err, context.Canceled) || gen != o.gen {
		o.mu.Unlock()
		return
	}
	o.loading = false
	o.current = nil
	o.mu.Unlock()

	o.notifier.Error(context.Background(), err.Error())
	metrics.SearchRequests.WithLabelValues("failure").Inc()
}

// removeIfSame — удаляет запись кэша, только если там всё ещё лежит именно
// этот хэндл (чтобы не снести запись нового поколения). Вызывается под o.mu.
func (o *Orchestrator) removeIfSame(key string, handle *client.Pending[domain.SearchResult]) {
	if cached, ok := o.searchCache.Get(key); ok && cached == handle {
		o.searchCache.Remove(key)
	}
}

// emitCancelNotice — ровно одно информационное уведомление на отмену.
func (o *Orchestrator) emitCancelNotice(ctx context.Context) {
	o.notifier.Info(ctx, CancelNotice)
	metrics.SearchRequests.WithLabelValues("cancelled").Inc()
}

// deliver — доставка результата наблюдателю (вне мьютекса).
func (o *Orchestrator) deliver(result *domain.SearchResult) {
	if o.onResult != nil {
		o.onResult(result)
	}
}
