package orders

import (
	"context"

	"github.com/Gunvolt24/agent_orders/internal/domain"
	"github.com/Gunvolt24/agent_orders/internal/ports"
	"github.com/Gunvolt24/agent_orders/internal/querykey"
)

var keys = querykey.Orders

// cacheEffects — изменения кэша после успешной операции над заказом.
// Общие для мутаций и событий из Kafka; повторное применение безопасно.
type cacheEffects struct {
	cache ports.QueryCache
}

// invalidateCollections — все списки по префиксу и точный ключ All(), под которым живёт полный список.
func (e cacheEffects) invalidateCollections(ctx context.Context) {
	e.cache.Invalidate(ctx, keys.Lists())
	e.cache.InvalidateExact(ctx, keys.All())
}

func (e cacheEffects) created(ctx context.Context, order *domain.Order) {
	e.invalidateCollections(ctx)
	if order != nil {
		e.cache.Set(ctx, keys.Detail(order.ID), order)
	}
}

func (e cacheEffects) updated(ctx context.Context, id int64, order *domain.Order) {
	if order != nil {
		e.cache.Set(ctx, keys.Detail(id), order)
	}
	e.invalidateCollections(ctx)
}

func (e cacheEffects) deleted(ctx context.Context, id int64) {
	e.cache.Remove(ctx, keys.Detail(id))
	e.invalidateCollections(ctx)
}
