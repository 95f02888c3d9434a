package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
	KafkaMessagesPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_published_total",
			Help: "Number of order events written to Kafka",
		},
		[]string{"topic", "result"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Query cache operations",
		},
		[]string{"op"}, // hit|miss|stale|set|error|invalidated|removed|evicted
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of entries currently in query cache",
		},
	)
)

var (
	AgentRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_requests_total",
			Help: "Requests sent to the agent API",
		},
		[]string{"op", "outcome"}, // outcome: ok|request_failed|transport_unavailable|canceled
	)
	AgentRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agent_request_duration_seconds",
			Help:    "Agent API request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
	OrderMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_mutations_total",
			Help: "Order mutations by result",
		},
		[]string{"op", "result"}, // result: succeeded|failed|discarded
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в prometheus.DefaultRegisterer; повторные вызовы ничего не делают.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed, KafkaMessagesPublished,
			CacheOps, CacheSize,
			AgentRequests, AgentRequestDuration, OrderMutations,
		)
	})
}
