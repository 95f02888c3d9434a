package ports

import (
	"context"

	"github.com/Gunvolt24/agent_orders/internal/domain"
)

// OrderTransport — HTTP-клиент к API заказов агента.
// Одна сетевая попытка на вызов; ошибки — *domain.RequestError или обёртка над domain.ErrTransportUnavailable.
type OrderTransport interface {
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error)
	GetOrders(ctx context.Context) ([]domain.Order, error)
	GetOrdersByAgent(ctx context.Context, agentID string) ([]domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	UpdateOrder(ctx context.Context, id int64, req domain.UpdateOrderRequest) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}
