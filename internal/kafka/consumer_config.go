package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// ConsumerConfig — параметры чтения событий заказов.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string

	ProcessTimeout time.Duration
	RetryInitial   time.Duration
	RetryMax       time.Duration
}

// maxWait — события инвалидируют кэш BFF, долго копить батч незачем.
const (
	maxWait  = 500 * time.Millisecond
	maxBytes = 10e6
)

// ReaderConfig — конфиг kafka.Reader с ручным коммитом.
// StartOffset "first"/"earliest" (без учёта регистра и пробелов) — с начала топика, иначе с конца.
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		MinBytes:       1,
		MaxBytes:       maxBytes,
		MaxWait:        maxWait,
		CommitInterval: 0,
	}

	switch strings.ToLower(strings.TrimSpace(c.StartOffset)) {
	case "first", "earliest":
		rc.StartOffset = kafka.FirstOffset
	default:
		rc.StartOffset = kafka.LastOffset
	}

	return rc
}

func (c *ConsumerConfig) timeouts() (process, retryInitial, retryMax time.Duration) {
	process, retryInitial, retryMax = c.ProcessTimeout, c.RetryInitial, c.RetryMax
	if process <= 0 {
		process = 5 * time.Second
	}
	if retryInitial <= 0 {
		retryInitial = time.Second
	}
	if retryMax <= 0 {
		retryMax = 30 * time.Second
	}
	if retryMax < retryInitial {
		retryMax = retryInitial
	}
	return process, retryInitial, retryMax
}
