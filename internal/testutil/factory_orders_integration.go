//go:build integration

package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Gunvolt24/agent_orders/internal/domain"
)

var seq atomic.Int64

// OrderOpt — модификатор тестового запроса.
type OrderOpt func(*domain.CreateOrderRequest)

func WithAgent(agentID string) OrderOpt {
	return func(r *domain.CreateOrderRequest) { r.AgentID = agentID }
}

func WithItem(item string) OrderOpt {
	return func(r *domain.CreateOrderRequest) { r.Item = item }
}

// MakeCreateRequest — валидный запрос с уникальным item.
func MakeCreateRequest(opts ...OrderOpt) domain.CreateOrderRequest {
	n := seq.Add(1)
	req := domain.CreateOrderRequest{
		AgentID: "california-coffee-shop",
		Item:    fmt.Sprintf("Matcha Latte #%d-%d", time.Now().UnixNano(), n),
	}
	for _, opt := range opts {
		opt(&req)
	}
	return req
}
