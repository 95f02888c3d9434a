package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/agent_orders/internal/domain"
	"github.com/Gunvolt24/agent_orders/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository — репозиторий заказов на Postgres (pgxpool).
type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

const orderColumns = `id, agent_id, item`

// Create — вставляет заказ; id назначает БД.
func (r *OrderRepository) Create(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	var order domain.Order
	err := r.pool.QueryRow(ctx, `
		INSERT INTO orders (agent_id, item) VALUES ($1, $2)
		RETURNING `+orderColumns,
		req.AgentID, req.Item,
	).Scan(&order.ID, &order.AgentID, &order.Item)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return &order, nil
}

// List — все заказы по возрастанию id.
func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	return collectOrders(rows)
}

// ListByAgent — заказы конкретного агента.
func (r *OrderRepository) ListByAgent(ctx context.Context, agentID string) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE agent_id = $1
		ORDER BY id
	`, agentID)
	if err != nil {
		return nil, fmt.Errorf("select orders by agent: %w", err)
	}
	return collectOrders(rows)
}

// GetByID — заказ по id. Если не нашли, возвращает (nil, nil).
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	err := r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id).
		Scan(&order.ID, &order.AgentID, &order.Item)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}
	return &order, nil
}

// Update — частичное обновление: NULL-параметр оставляет колонку как есть.
// Если заказа нет, возвращает (nil, nil).
func (r *OrderRepository) Update(ctx context.Context, id int64, req domain.UpdateOrderRequest) (*domain.Order, error) {
	var order domain.Order
	err := r.pool.QueryRow(ctx, `
		UPDATE orders SET
			agent_id   = COALESCE($2, agent_id),
			item       = COALESCE($3, item),
			updated_at = now()
		WHERE id = $1
		RETURNING `+orderColumns,
		id, req.AgentID, req.Item,
	).Scan(&order.ID, &order.AgentID, &order.Item)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return &order, nil
}

// Delete — удаляет заказ; false, если его не было.
func (r *OrderRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// collectOrders — всегда непустой срез (JSON `[]`, а не `null`).
func collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	orders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Order, error) {
		var o domain.Order
		err := row.Scan(&o.ID, &o.AgentID, &o.Item)
		return o, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan orders: %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}
