package domain

import "time"

// Order — заказ, принятый агентом. ID назначается сервером и уникален.
type Order struct {
	ID      int64  `json:"id"`
	AgentID string `json:"agent_id"`
	Item    string `json:"item"`
}

// CreateOrderRequest — тело запроса на создание заказа (живёт только как payload).
type CreateOrderRequest struct {
	AgentID string `json:"agent_id" form:"agent_id" validate:"required,max=255"`
	Item    string `json:"item" form:"item" validate:"required,max=255"`
}

// UpdateOrderRequest — частичное обновление (PATCH): nil-поля не отправляются.
type UpdateOrderRequest struct {
	AgentID *string `json:"agent_id,omitempty" validate:"omitempty,min=1,max=255"`
	Item    *string `json:"item,omitempty" validate:"omitempty,min=1,max=255"`
}

// Empty — в запросе нет ни одного поля для обновления.
func (r UpdateOrderRequest) Empty() bool {
	return r.AgentID == nil && r.Item == nil
}

// Apply — накладывает частичное обновление на копию заказа.
func (r UpdateOrderRequest) Apply(order Order) Order {
	if r.AgentID != nil {
		order.AgentID = *r.AgentID
	}
	if r.Item != nil {
		order.Item = *r.Item
	}
	return order
}

// OrderFilters — фильтры списка заказов.
type OrderFilters struct {
	AgentID string `json:"agent_id,omitempty"`
}

// IsZero — фильтры не заданы.
func (f *OrderFilters) IsZero() bool {
	return f == nil || f.AgentID == ""
}

// Типы событий изменения заказа.
const (
	EventOrderCreated = "order.created"
	EventOrderUpdated = "order.updated"
	EventOrderDeleted = "order.deleted"
)

// OrderEvent — событие об изменении заказа, публикуется бэкендом в Kafka.
type OrderEvent struct {
	Type       string    `json:"type"`
	Order      Order     `json:"order"`
	OccurredAt time.Time `json:"occurred_at"`
}
