package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/agent_orders/internal/domain"
	"github.com/Gunvolt24/agent_orders/internal/kafka/mocks"
)

func newTestProducer(w messageWriter) *Producer {
	return &Producer{writer: w, topic: "order-events", log: nopLogger{}}
}

func TestProducer_Publish_KeyIsOrderID(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockmessageWriter(ctrl)

	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	ev := domain.OrderEvent{
		Type:       domain.EventOrderCreated,
		Order:      domain.Order{ID: 42, AgentID: "california-coffee-shop", Item: "Matcha Latte"},
		OccurredAt: at,
	}

	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			require.Equal(t, "42", string(msgs[0].Key))
			require.Equal(t, []kafka.Header{{Key: "event_type", Value: []byte(domain.EventOrderCreated)}}, msgs[0].Headers)

			var got domain.OrderEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &got))
			require.Equal(t, ev.Order, got.Order)
			require.Equal(t, ev.Type, got.Type)
			require.True(t, at.Equal(got.OccurredAt))
			return nil
		})

	require.NoError(t, newTestProducer(w).Publish(context.Background(), ev))
}

func TestProducer_Publish_FillsOccurredAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockmessageWriter(ctrl)

	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			var got domain.OrderEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &got))
			require.False(t, got.OccurredAt.IsZero())
			return nil
		})

	ev := domain.OrderEvent{Type: domain.EventOrderDeleted, Order: domain.Order{ID: 1}}
	require.NoError(t, newTestProducer(w).Publish(context.Background(), ev))
}

func TestProducer_Publish_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockmessageWriter(ctrl)

	boom := errors.New("broker unavailable")
	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(boom)

	err := newTestProducer(w).Publish(context.Background(), domain.OrderEvent{Type: domain.EventOrderUpdated, Order: domain.Order{ID: 3}})
	require.ErrorIs(t, err, boom)
}

func TestProducer_Close_Once(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockmessageWriter(ctrl)
	w.EXPECT().Close().Return(nil).Times(1)

	p := newTestProducer(w)
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
}
