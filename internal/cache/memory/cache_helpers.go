package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/inventory_search/pkg/metrics"
)

// evictOldest — удаляет самую старую по вставке запись (хвост списка).
func (c *Cache[K, V]) evictOldest() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues(c.name, "evicted").Inc()
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (c *Cache[K, V]) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	ent := elem.Value.(*entry[K, V])
	delete(c.index, ent.key)
	c.ll.Remove(elem)
}

// isExpired — строгая проверка TTL: запись мертва, когда now >= expiresAt.
func (c *Cache[K, V]) isExpired(ent *entry[K, V], now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return !now.Before(ent.expiresAt)
}

// expiryFrom — момент истечения для текущего времени.
func (c *Cache[K, V]) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — выметает истекшие записи с хвоста до первой живой.
func (c *Cache[K, V]) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent := back.Value.(*entry[K, V])
		if !c.isExpired(ent, now) {
			return
		}
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues(c.name, "expired").Inc()
	}
}
