package agentapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Gunvolt24/agent_orders/internal/domain"
)

// Операции клиента; используются как метка op в метриках.
const (
	OpCreateOrder      = "create_order"
	OpGetOrders        = "get_orders"
	OpGetOrdersByAgent = "get_orders_by_agent"
	OpGetOrder         = "get_order"
	OpUpdateOrder      = "update_order"
	OpDeleteOrder      = "delete_order"
)

// CreateOrder — POST /orders.
func (c *Client) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	order, err := call[*domain.Order](ctx, c, OpCreateOrder, http.MethodPost, "/orders", req)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%s: empty response body", OpCreateOrder)
	}
	return order, nil
}

// GetOrders — GET /orders.
func (c *Client) GetOrders(ctx context.Context) ([]domain.Order, error) {
	return listOrders(ctx, c, OpGetOrders, "/orders")
}

// GetOrdersByAgent — GET /orders/agent_id/{agentID}.
func (c *Client) GetOrdersByAgent(ctx context.Context, agentID string) ([]domain.Order, error) {
	agentID = strings.TrimSpace(agentID)
	if agentID == "" {
		return nil, fmt.Errorf("%s: %w", OpGetOrdersByAgent, &domain.ValidationError{
			Fields: []domain.FieldError{{Field: "agent_id", Message: "Agent ID is required"}},
		})
	}
	return listOrders(ctx, c, OpGetOrdersByAgent, "/orders/agent_id/"+url.PathEscape(agentID))
}

// GetOrder — GET /orders/{id}.
func (c *Client) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := call[*domain.Order](ctx, c, OpGetOrder, http.MethodGet, orderPath(id), nil)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%s: empty response body", OpGetOrder)
	}
	return order, nil
}

// UpdateOrder — PATCH /orders/{id}; отправляются только заданные поля.
func (c *Client) UpdateOrder(ctx context.Context, id int64, req domain.UpdateOrderRequest) (*domain.Order, error) {
	order, err := call[*domain.Order](ctx, c, OpUpdateOrder, http.MethodPatch, orderPath(id), req)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%s: empty response body", OpUpdateOrder)
	}
	return order, nil
}

// DeleteOrder — DELETE /orders/{id}; тело ответа (если есть) не разбирается в структуру.
func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	_, err := call[json.RawMessage](ctx, c, OpDeleteOrder, http.MethodDelete, orderPath(id), nil)
	return err
}

func listOrders(ctx context.Context, c *Client, op, path string) ([]domain.Order, error) {
	orders, err := call[[]domain.Order](ctx, c, op, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

func orderPath(id int64) string {
	return fmt.Sprintf("/orders/%d", id)
}
