package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/agent_orders/internal/domain"
	"github.com/Gunvolt24/agent_orders/internal/ports"
	"github.com/Gunvolt24/agent_orders/internal/querykey"
	"github.com/Gunvolt24/agent_orders/pkg/metrics"
)

// upsert — найти запись по ключу или вставить пустую в голову списка.
// Вызывать под c.mu.
func (c *QueryCache) upsert(key querykey.Key) *entry {
	id := key.String()
	if elem, ok := c.index[id]; ok {
		c.ll.MoveToFront(elem)
		return elem.Value.(*entry)
	}

	ent := &entry{id: id, key: append(querykey.Key(nil), key...)}
	c.index[id] = c.ll.PushFront(ent)
	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	metrics.CacheSize.Set(float64(len(c.index)))
	return ent
}

// evictLRU — удаляет наименее используемый элемент.
func (c *QueryCache) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("evicted").Inc()
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (c *QueryCache) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	if ent, ok := elem.Value.(*entry); ok {
		delete(c.index, ent.id)
	}
	c.ll.Remove(elem)
}

// isExpired — проверяет истечение TTL.
func (c *QueryCache) isExpired(ent *entry, now time.Time) bool {
	if c.ttl <= 0 || ent.expiresAt.IsZero() {
		return false
	}
	return now.After(ent.expiresAt)
}

// expiryFrom — вычисляет момент истечения для текущего времени.
func (c *QueryCache) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

func (e *entry) snapshot() ports.Entry {
	return ports.Entry{
		Value:     cloneValue(e.value),
		Err:       e.err,
		Status:    e.status,
		Stale:     e.stale,
		UpdatedAt: e.updatedAt,
	}
}

// cloneValue — копия заказов, чтобы внешние изменения не отражались на данных внутри кэша.
// Прочие типы хранятся как есть.
func cloneValue(v any) any {
	switch val := v.(type) {
	case *domain.Order:
		if val == nil {
			return val
		}
		cp := *val
		return &cp
	case []domain.Order:
		if val == nil {
			return val
		}
		return append([]domain.Order(nil), val...)
	default:
		return v
	}
}
