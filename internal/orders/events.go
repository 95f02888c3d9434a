package orders

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Gunvolt24/agent_orders/internal/domain"
	"github.com/Gunvolt24/agent_orders/internal/ports"
)

// EventApplier — применяет события об изменении заказов к кэшу BFF
// так же, как это делают успешные мутации.
type EventApplier struct {
	effects cacheEffects
	log     ports.Logger
}

func NewEventApplier(cache ports.QueryCache, log ports.Logger) *EventApplier {
	return &EventApplier{effects: cacheEffects{cache: cache}, log: log}
}

// ApplyMessage — разобрать сырое сообщение и применить событие.
// Неразборчивое сообщение — domain.ErrInvalidEvent.
func (a *EventApplier) ApplyMessage(ctx context.Context, raw []byte) error {
	var ev domain.OrderEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return fmt.Errorf("%w: decode: %v", domain.ErrInvalidEvent, err)
	}
	return a.Apply(ctx, ev)
}

// Apply — применить событие к кэшу.
func (a *EventApplier) Apply(ctx context.Context, ev domain.OrderEvent) error {
	if ev.Order.ID <= 0 {
		return fmt.Errorf("%w: order id must be positive, got %d", domain.ErrInvalidEvent, ev.Order.ID)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	switch ev.Type {
	case domain.EventOrderCreated:
		order := ev.Order
		a.effects.created(ctx, &order)
	case domain.EventOrderUpdated:
		order := ev.Order
		a.effects.updated(ctx, order.ID, &order)
	case domain.EventOrderDeleted:
		a.effects.deleted(ctx, ev.Order.ID)
	default:
		return fmt.Errorf("%w: unknown type %q", domain.ErrInvalidEvent, ev.Type)
	}

	a.log.Infof(ctx, "order event applied type=%s id=%d", ev.Type, ev.Order.ID)
	return nil
}
