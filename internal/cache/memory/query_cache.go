package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/agent_orders/internal/ports"
	"github.com/Gunvolt24/agent_orders/internal/querykey"
	"github.com/Gunvolt24/agent_orders/pkg/metrics"
)

// Проверка соответствия порту.
var _ ports.QueryCache = (*QueryCache)(nil)

type entry struct {
	id        string
	key       querykey.Key
	value     any
	err       error
	status    ports.EntryStatus
	stale     bool
	loadedAt  uint64 // поколение, при котором начата загрузка значения
	updatedAt time.Time
	expiresAt time.Time
}

// QueryCache — LRU-кэш результатов запросов с TTL.
// Записи с истекшим TTL не удаляются, а считаются устаревшими: значение остаётся доступным
// до перезагрузки. Префиксная инвалидация — линейный проход по записям.
// gen растёт при каждой инвалидации, в том числе ключей, которых ещё нет в кэше:
// загрузка, начатая до инвалидации, не может записать свежее значение поверх неё.
type QueryCache struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time
	gen      uint64

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

// NewQueryCache — конструктор. capacity <= 0 приводится к 1; ttl <= 0 — без устаревания по времени.
func NewQueryCache(capacity int, ttl time.Duration) *QueryCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &QueryCache{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

func (c *QueryCache) Get(_ context.Context, key querykey.Key) (ports.Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key.String()]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return ports.Entry{}, false
	}
	c.ll.MoveToFront(elem)

	ent := elem.Value.(*entry)
	out := ent.snapshot()
	if c.isExpired(ent, c.now()) {
		out.Stale = true
	}
	if out.Stale {
		metrics.CacheOps.WithLabelValues("stale").Inc()
	} else {
		metrics.CacheOps.WithLabelValues("hit").Inc()
	}
	return out, true
}

func (c *QueryCache) Set(_ context.Context, key querykey.Key, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store(key, value, c.gen, false)
}

func (c *QueryCache) SetSince(_ context.Context, key querykey.Key, value any, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key.String()]; ok && elem.Value.(*entry).loadedAt > gen {
		// значение из более поздней загрузки не перезаписывается
		return false
	}
	stale := c.gen != gen
	c.store(key, value, gen, stale)
	return !stale
}

func (c *QueryCache) Generation(context.Context) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

func (c *QueryCache) store(key querykey.Key, value any, gen uint64, stale bool) {
	ent := c.upsert(key)
	ent.loadedAt = gen
	ent.value = cloneValue(value)
	ent.err = nil
	ent.status = ports.StatusSuccess
	ent.stale = stale
	ent.updatedAt = c.now()
	ent.expiresAt = c.expiryFrom(ent.updatedAt)
	metrics.CacheOps.WithLabelValues("set").Inc()
}

// SetError — запись с ошибкой сразу считается устаревшей: следующее чтение повторит загрузку.
func (c *QueryCache) SetError(_ context.Context, key querykey.Key, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent := c.upsert(key)
	ent.err = err
	ent.status = ports.StatusError
	ent.stale = true
	ent.updatedAt = c.now()
	metrics.CacheOps.WithLabelValues("error").Inc()
}

func (c *QueryCache) Invalidate(_ context.Context, prefix querykey.Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	n := 0
	for e := c.ll.Front(); e != nil; e = e.Next() {
		ent := e.Value.(*entry)
		if ent.key.HasPrefix(prefix) {
			ent.stale = true
			n++
		}
	}
	metrics.CacheOps.WithLabelValues("invalidated").Add(float64(n))
	return n
}

func (c *QueryCache) InvalidateExact(_ context.Context, key querykey.Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	elem, ok := c.index[key.String()]
	if !ok {
		return false
	}
	elem.Value.(*entry).stale = true
	metrics.CacheOps.WithLabelValues("invalidated").Inc()
	return true
}

func (c *QueryCache) Remove(_ context.Context, key querykey.Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	elem, ok := c.index[key.String()]
	if !ok {
		return false
	}
	c.removeElement(elem)
	metrics.CacheOps.WithLabelValues("removed").Inc()
	metrics.CacheSize.Set(float64(len(c.index)))
	return true
}

// Len — число записей в кэше.
func (c *QueryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.index)
}
