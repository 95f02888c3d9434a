package ports

import (
	"context"

	"github.com/Gunvolt24/agent_orders/internal/domain"
)

// OrderValidator — проверка входных данных заказа.
// Ошибка — *domain.ValidationError (errors.Is(err, domain.ErrValidationFailed)).
type OrderValidator interface {
	ValidateCreate(ctx context.Context, req *domain.CreateOrderRequest) error
	ValidateUpdate(ctx context.Context, req *domain.UpdateOrderRequest) error
}
