package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/Gunvolt24/agent_orders/internal/domain"
	"github.com/Gunvolt24/agent_orders/internal/ports"
	"github.com/Gunvolt24/agent_orders/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

var _ ports.EventPublisher = (*Producer)(nil)

// messageWriter — минимальный контракт над kafka.Writer.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ProducerConfig — параметры публикации событий заказов.
type ProducerConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// Producer публикует domain.OrderEvent; ключ сообщения — id заказа,
// поэтому события одного заказа попадают в одну партицию и читаются по порядку.
type Producer struct {
	writer    messageWriter
	topic     string
	log       ports.Logger
	closeOnce sync.Once
}

func NewProducer(cfg ProducerConfig, log ports.Logger) *Producer {
	wt := cfg.WriteTimeout
	if wt <= 0 {
		wt = 5 * time.Second
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		WriteTimeout:           wt,
		AllowAutoTopicCreation: true,
	}

	return &Producer{writer: w, topic: cfg.Topic, log: log}
}

// Publish — записать событие; ошибка сериализации или брокера возвращается как есть.
func (p *Producer) Publish(ctx context.Context, event domain.OrderEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	raw, err := json.Marshal(event)
	if err != nil {
		metrics.KafkaMessagesPublished.WithLabelValues(p.topic, "error").Inc()
		return fmt.Errorf("marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.Order.ID, 10)),
		Value: raw,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		metrics.KafkaMessagesPublished.WithLabelValues(p.topic, "error").Inc()
		return fmt.Errorf("write order event: %w", err)
	}

	metrics.KafkaMessagesPublished.WithLabelValues(p.topic, "ok").Inc()
	p.log.Infof(ctx, "order event published type=%s id=%d", event.Type, event.Order.ID)
	return nil
}

func (p *Producer) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}
