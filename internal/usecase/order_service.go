package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/agent_orders/internal/domain"
	"github.com/Gunvolt24/agent_orders/internal/ports"
)

var _ ports.OrderService = (*OrderService)(nil)

// OrderService — прикладная логика бэкенда заказов (без знаний о транспорте):
// валидация → хранилище → событие в Kafka.
type OrderService struct {
	repo      ports.OrderRepository
	validator ports.OrderValidator
	publisher ports.EventPublisher // nil — события не публикуются
	log       ports.Logger
	now       func() time.Time
}

func NewOrderService(
	repo ports.OrderRepository,
	validator ports.OrderValidator,
	publisher ports.EventPublisher,
	log ports.Logger,
) *OrderService {
	return &OrderService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

// Create — проверить и сохранить заказ. Ошибка валидации — *domain.ValidationError.
func (s *OrderService) Create(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	if err := s.validator.ValidateCreate(ctx, &req); err != nil {
		return nil, err
	}

	order, err := s.repo.Create(ctx, req)
	if err != nil {
		s.log.Errorf(ctx, "repo.Create failed agent_id=%s err=%v", req.AgentID, err)
		return nil, err
	}

	s.log.Infof(ctx, "order created id=%d agent_id=%s", order.ID, order.AgentID)
	s.publish(ctx, domain.EventOrderCreated, *order)
	return order, nil
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

func (s *OrderService) ListByAgent(ctx context.Context, agentID string) ([]domain.Order, error) {
	return s.repo.ListByAgent(ctx, agentID)
}

// Get — заказ по id; отсутствующий — domain.ErrNotFound.
func (s *OrderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID failed id=%d err=%v", id, err)
		return nil, err
	}
	if order == nil {
		return nil, notFound(id)
	}
	return order, nil
}

// Update — частичное обновление; пустой запрос — ошибка валидации.
func (s *OrderService) Update(ctx context.Context, id int64, req domain.UpdateOrderRequest) (*domain.Order, error) {
	if err := s.validator.ValidateUpdate(ctx, &req); err != nil {
		return nil, err
	}

	order, err := s.repo.Update(ctx, id, req)
	if err != nil {
		s.log.Errorf(ctx, "repo.Update failed id=%d err=%v", id, err)
		return nil, err
	}
	if order == nil {
		return nil, notFound(id)
	}

	s.log.Infof(ctx, "order updated id=%d", id)
	s.publish(ctx, domain.EventOrderUpdated, *order)
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "repo.Delete failed id=%d err=%v", id, err)
		return err
	}
	if !deleted {
		return notFound(id)
	}

	s.log.Infof(ctx, "order deleted id=%d", id)
	s.publish(ctx, domain.EventOrderDeleted, domain.Order{ID: id})
	return nil
}

// publish — ошибка публикации не отменяет уже сохранённое изменение, только warning.
func (s *OrderService) publish(ctx context.Context, eventType string, order domain.Order) {
	if s.publisher == nil {
		return
	}

	ev := domain.OrderEvent{Type: eventType, Order: order, OccurredAt: s.now().UTC()}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.log.Warnf(ctx, "publish %s failed id=%d err=%v", eventType, order.ID, err)
	}
}

func notFound(id int64) error {
	return fmt.Errorf("order %d: %w", id, domain.ErrNotFound)
}
