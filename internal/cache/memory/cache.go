package memory

import (
	"container/list"
	"sync"
	"time"

	"github.com/Gunvolt24/inventory_search/pkg/metrics"
)

// Дефолты для кэшей запросов (search и peak).
const (
	DefaultCapacity = 5
	DefaultTTL      = 60 * time.Second
)

type entry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time
}

// Cache — потокобезопасный кэш с TTL и вытеснением по порядку вставки (FIFO).
// Чтение НЕ продлевает жизнь записи и не меняет её позицию: возраст записи
// определяется только моментом вставки. Истекшие записи убираются лениво при Get.
// Значением может быть разделяемый pending-хэндл: тогда конкурентные читатели
// одного ключа получают один и тот же хэндл и сетевой вызов не дублируется.
type Cache[K comparable, V any] struct {
	name     string // имя инстанса для метрик
	capacity int
	ttl      time.Duration

	ll    *list.List // фронт — самые новые вставки
	index map[K]*list.Element

	mu sync.Mutex
}

// NewCache — конструктор. capacity <= 0 трактуется как 1.
func NewCache[K comparable, V any](name string, capacity int, ttl time.Duration) *Cache[K, V] {
	if capacity <= 0 {
		capacity = 1
	}
	return &Cache[K, V]{
		name:     name,
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[K]*list.Element),
	}
}

// Get — вернуть живое значение; (zero, false) при промахе или истечении TTL.
// Истечение — строго now >= expiresAt; такая запись удаляется тут же.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	var zero V
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		metrics.CacheOps.WithLabelValues(c.name, "miss").Inc()
		return zero, false
	}
	ent := elem.Value.(*entry[K, V])
	if c.isExpired(ent, now) {
		c.removeElement(elem)
		metrics.CacheOps.WithLabelValues(c.name, "expired").Inc()
		metrics.CacheSize.WithLabelValues(c.name).Set(float64(c.ll.Len()))
		return zero, false
	}

	metrics.CacheOps.WithLabelValues(c.name, "hit").Inc()
	return ent.value, true
}

// Put — вставить или перезаписать значение; expiresAt = now + ttl.
// Перезапись переносит запись на самую новую позицию (повторная вставка).
// При переполнении вытесняется ровно одна самая старая по вставке запись.
func (c *Cache[K, V]) Put(key K, value V) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*entry[K, V])
		ent.value = value
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry[K, V]{
		key:       key,
		value:     value,
		expiresAt: c.expiryFrom(now),
	})
	c.index[key] = elem

	if c.ll.Len() > c.capacity {
		c.evictOldest()
	}
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(c.ll.Len()))
}

// Remove — безусловное удаление (инвалидация после неудачного запроса,
// чтобы повтор не был навсегда заблокирован).
func (c *Cache[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		c.removeElement(elem)
		metrics.CacheOps.WithLabelValues(c.name, "removed").Inc()
		metrics.CacheSize.WithLabelValues(c.name).Set(float64(c.ll.Len()))
	}
}

// Len — текущее число записей (включая ещё не выметенные истекшие).
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
