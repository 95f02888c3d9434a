package orders

import (
	"context"
	"errors"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/Gunvolt24/agent_orders/internal/domain"
	"github.com/Gunvolt24/agent_orders/internal/ports"
	"github.com/Gunvolt24/agent_orders/internal/querykey"
)

// OrderQueries — чтение заказов через кэш запросов.
// Свежая запись отдаётся из кэша; отсутствующая или устаревшая загружается заново.
// Параллельные загрузки одного ключа объединяются.
type OrderQueries struct {
	transport ports.OrderTransport
	cache     ports.QueryCache
	log       ports.Logger
	group     singleflight.Group
}

func NewOrderQueries(transport ports.OrderTransport, cache ports.QueryCache, log ports.Logger) *OrderQueries {
	return &OrderQueries{transport: transport, cache: cache, log: log}
}

// Orders — полный список под ключом All().
func (q *OrderQueries) Orders(ctx context.Context) ([]domain.Order, error) {
	return query(ctx, q, keys.All(), q.transport.GetOrders)
}

// OrdersByAgent — список заказов агента под ключом List({agent_id}).
func (q *OrderQueries) OrdersByAgent(ctx context.Context, agentID string) ([]domain.Order, error) {
	filters := &domain.OrderFilters{AgentID: agentID}
	if filters.IsZero() {
		return q.Orders(ctx)
	}
	return query(ctx, q, keys.List(filters), func(ctx context.Context) ([]domain.Order, error) {
		return q.transport.GetOrdersByAgent(ctx, agentID)
	})
}

// Order — заказ под ключом Detail(id).
func (q *OrderQueries) Order(ctx context.Context, id int64) (*domain.Order, error) {
	return query(ctx, q, keys.Detail(id), func(ctx context.Context) (*domain.Order, error) {
		return q.transport.GetOrder(ctx, id)
	})
}

// CachedOrder — заказ из кэша без сетевого запроса (в том числе устаревший).
func (q *OrderQueries) CachedOrder(ctx context.Context, id int64) (*domain.Order, bool) {
	entry, ok := q.cache.Get(ctx, keys.Detail(id))
	if !ok {
		return nil, false
	}
	order, ok := entry.Value.(*domain.Order)
	return order, ok && order != nil
}

// query — общий путь чтения: кэш → singleflight → транспорт → кэш.
func query[T any](ctx context.Context, q *OrderQueries, key querykey.Key, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	if entry, ok := q.cache.Get(ctx, key); ok && !entry.Stale && entry.Status == ports.StatusSuccess {
		if v, ok := entry.Value.(T); ok {
			return v, nil
		}
	}

	// загрузки из разных поколений не объединяются: после инвалидации нужен новый запрос
	gen := q.cache.Generation(ctx)
	ch := q.group.DoChan(key.String()+"#"+strconv.FormatUint(gen, 10), func() (any, error) {
		return q.load(ctx, key, gen, func(ctx context.Context) (any, error) { return fetch(ctx) })
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		var discarded *discardedError
		if errors.As(res.Err, &discarded) {
			if ctx.Err() != nil {
				return zero, ctx.Err()
			}
			// ответ ведущего запроса отброшен по его контексту — свой ещё жив, грузим сами
			v, err := q.load(ctx, key, q.cache.Generation(ctx), func(ctx context.Context) (any, error) { return fetch(ctx) })
			if err != nil {
				if errors.As(err, &discarded) {
					return zero, discarded.err
				}
				return zero, err
			}
			return v.(T), nil
		}
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

// load — сетевая загрузка и запись в кэш. Ответ, пришедший после отмены ctx, в кэш не пишется.
// Если за время загрузки кэш инвалидировали (gen сменилось), ответ сохраняется устаревшим.
func (q *OrderQueries) load(ctx context.Context, key querykey.Key, gen uint64, fetch func(context.Context) (any, error)) (any, error) {
	v, err := fetch(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, &discardedError{err: ctxErr}
	}
	if err != nil {
		q.cache.SetError(ctx, key, err)
		q.log.Warnf(ctx, "query %s failed: %v", key, err)
		return nil, err
	}
	if !q.cache.SetSince(ctx, key, v, gen) {
		q.log.Infof(ctx, "query %s: invalidated while loading, stored as stale", key)
	}
	return v, nil
}

// discardedError — ответ пришёл после отмены контекста запросившего и отброшен.
type discardedError struct {
	err error
}

func (e *discardedError) Error() string { return "response discarded: " + e.err.Error() }

func (e *discardedError) Unwrap() error { return e.err }
