package orders

import (
	"context"

	"github.com/Gunvolt24/agent_orders/internal/domain"
	"github.com/Gunvolt24/agent_orders/internal/ports"
)

// Метки op для мутаций.
const (
	OpCreate = "create_order"
	OpUpdate = "update_order"
	OpDelete = "delete_order"
)

// UpdateInput — вход мутации обновления.
type UpdateInput struct {
	ID      int64
	Request domain.UpdateOrderRequest
}

// OrderMutations — фабрика мутаций заказов над общим кэшем.
// Обновление и удаление одного id выполняются строго по очереди; создание не сериализуется.
type OrderMutations struct {
	transport ports.OrderTransport
	effects   cacheEffects
	validator ports.OrderValidator
	log       ports.Logger
	locks     *keyedLock
}

// NewOrderMutations — конструктор; validator может быть nil (проверка только на стороне сервера).
func NewOrderMutations(transport ports.OrderTransport, cache ports.QueryCache, validator ports.OrderValidator, log ports.Logger) *OrderMutations {
	return &OrderMutations{
		transport: transport,
		effects:   cacheEffects{cache: cache},
		validator: validator,
		log:       log,
		locks:     newKeyedLock(),
	}
}

// NewCreate — мутация создания: списки инвалидируются, Detail(newID) заполняется ответом.
func (m *OrderMutations) NewCreate() *Mutation[domain.CreateOrderRequest, *domain.Order] {
	mut := NewMutation(OpCreate,
		func(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
			order, err := m.transport.CreateOrder(ctx, req)
			if err != nil {
				m.log.Warnf(ctx, "create order failed item=%q: %v", req.Item, err)
				return nil, err
			}
			return order, nil
		},
		func(ctx context.Context, _ domain.CreateOrderRequest, order *domain.Order) {
			m.effects.created(ctx, order)
			m.log.Infof(ctx, "order created id=%d agent_id=%s", order.ID, order.AgentID)
		},
	)
	if m.validator != nil {
		mut.validate = func(ctx context.Context, req domain.CreateOrderRequest) error {
			return m.validator.ValidateCreate(ctx, &req)
		}
	}
	return mut
}

// NewUpdate — мутация обновления: Detail(id) перезаписывается ответом, списки инвалидируются.
func (m *OrderMutations) NewUpdate() *Mutation[UpdateInput, *domain.Order] {
	mut := NewMutation(OpUpdate,
		func(ctx context.Context, in UpdateInput) (*domain.Order, error) {
			order, err := m.transport.UpdateOrder(ctx, in.ID, in.Request)
			if err != nil {
				m.log.Warnf(ctx, "update order failed id=%d: %v", in.ID, err)
				return nil, err
			}
			return order, nil
		},
		func(ctx context.Context, in UpdateInput, order *domain.Order) {
			m.effects.updated(ctx, in.ID, order)
			m.log.Infof(ctx, "order updated id=%d", in.ID)
		},
	)
	mut.guard = func(ctx context.Context, in UpdateInput) (func(), error) {
		return m.locks.Lock(ctx, in.ID)
	}
	if m.validator != nil {
		mut.validate = func(ctx context.Context, in UpdateInput) error {
			return m.validator.ValidateUpdate(ctx, &in.Request)
		}
	}
	return mut
}

// NewDelete — мутация удаления: Detail(id) удаляется, списки инвалидируются.
func (m *OrderMutations) NewDelete() *Mutation[int64, struct{}] {
	mut := NewMutation(OpDelete,
		func(ctx context.Context, id int64) (struct{}, error) {
			if err := m.transport.DeleteOrder(ctx, id); err != nil {
				m.log.Warnf(ctx, "delete order failed id=%d: %v", id, err)
				return struct{}{}, err
			}
			return struct{}{}, nil
		},
		func(ctx context.Context, id int64, _ struct{}) {
			m.effects.deleted(ctx, id)
			m.log.Infof(ctx, "order deleted id=%d", id)
		},
	)
	mut.guard = func(ctx context.Context, id int64) (func(), error) {
		return m.locks.Lock(ctx, id)
	}
	return mut
}

// CreateOrder — однократная мутация создания; ошибка возвращается без обёртки.
func (m *OrderMutations) CreateOrder(ctx context.Context, req domain.CreateOrderRequest, cb Callbacks[domain.CreateOrderRequest, *domain.Order]) (*domain.Order, error) {
	return m.NewCreate().Mutate(ctx, req, cb)
}

// UpdateOrder — однократная мутация обновления.
func (m *OrderMutations) UpdateOrder(ctx context.Context, id int64, req domain.UpdateOrderRequest, cb Callbacks[UpdateInput, *domain.Order]) (*domain.Order, error) {
	return m.NewUpdate().Mutate(ctx, UpdateInput{ID: id, Request: req}, cb)
}

// DeleteOrder — однократная мутация удаления.
func (m *OrderMutations) DeleteOrder(ctx context.Context, id int64, cb Callbacks[int64, struct{}]) error {
	_, err := m.NewDelete().Mutate(ctx, id, cb)
	return err
}
