// Пакет client — клиентская сторона: HTTP-доступ к поисковому API и
// разделяемые pending-хэндлы, которыми оркестратор кэширует незавершённые
// и завершённые запросы.
package client

import (
	"context"
	"sync"
)

// Pending — разделяемый хэндл будущего результата.
// Кладётся в кэш ДО завершения сетевого вызова: конкурентные запросы с тем же
// ключом получают этот же хэндл и не порождают второй вызов.
// После Resolve хэндл реплейится: поздние подписчики сразу получают исход.
type Pending[T any] struct {
	done chan struct{}

	mu    sync.Mutex
	value *T
	err   error
}

// NewPending — конструктор неразрешённого хэндла.
func NewPending[T any]() *Pending[T] {
	return &Pending[T]{done: make(chan struct{})}
}

// Resolve — фиксирует исход ровно один раз; повторные вызовы игнорируются.
func (p *Pending[T]) Resolve(value *T, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	select {
	case <-p.done:
		return // уже разрешён
	default:
	}
	p.value = value
	p.err = err
	close(p.done)
}

// Await — ждёт исход или отмену контекста вызывающего.
// Отмена ожидания НЕ отменяет сам сетевой вызов: хэндл могут ждать другие.
func (p *Pending[T]) Await(ctx context.Context) (*T, error) {
	select {
	case <-p.done:
		p.mu.Lock()
		defer p.mu.Unlock()
		return p.value, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Settled — true, если исход уже зафиксирован.
func (p *Pending[T]) Settled() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}
