package ports

import (
	"context"

	"github.com/Gunvolt24/agent_orders/internal/domain"
)

// OrderRepository — хранилище заказов бэкенда.
// Get/Update/Delete отсутствующего заказа возвращают (nil, nil) / (false, nil).
type OrderRepository interface {
	Create(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	ListByAgent(ctx context.Context, agentID string) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Update(ctx context.Context, id int64, req domain.UpdateOrderRequest) (*domain.Order, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
