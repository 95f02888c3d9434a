package kafka_test

import (
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	mykafka "github.com/Gunvolt24/agent_orders/internal/kafka"
)

func TestConsumerConfig_ReaderConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		startOffset string
		wantOffset  int64
	}{
		{"first", "first", kafkago.FirstOffset},
		{"first mixed case and spaces", " FiRsT \n", kafkago.FirstOffset},
		{"earliest alias", "Earliest", kafkago.FirstOffset},
		{"empty -> last", "", kafkago.LastOffset},
		{"last", "LAST", kafkago.LastOffset},
		{"latest -> last", "latest", kafkago.LastOffset},
		{"unknown -> last", "from-the-beginning", kafkago.LastOffset},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := mykafka.ConsumerConfig{
				Brokers:        []string{"k1:9092", "k2:9092"},
				Topic:          "order-events",
				GroupID:        "orders-bff",
				StartOffset:    tt.startOffset,
				ProcessTimeout: 3 * time.Second,
			}

			rc := cfg.ReaderConfig()

			require.Equal(t, tt.wantOffset, rc.StartOffset)
			require.Equal(t, cfg.Brokers, rc.Brokers)
			require.Equal(t, "order-events", rc.Topic)
			require.Equal(t, "orders-bff", rc.GroupID)
			require.Zero(t, rc.CommitInterval, "offsets are committed manually")
			require.Equal(t, 1, rc.MinBytes)
			require.Equal(t, 10_000_000, rc.MaxBytes)
			require.Equal(t, 500*time.Millisecond, rc.MaxWait)
		})
	}
}
