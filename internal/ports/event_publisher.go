package ports

import (
	"context"

	"github.com/Gunvolt24/agent_orders/internal/domain"
)

// EventPublisher — публикация событий об изменении заказов.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.OrderEvent) error
	Close() error
}
