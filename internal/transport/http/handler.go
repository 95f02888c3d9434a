package rest

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/agent_orders/internal/orders"
	"github.com/Gunvolt24/agent_orders/internal/ports"
)

// Deps — зависимости HTTP-слоя BFF.
type Deps struct {
	Mutations *orders.OrderMutations
	Queries   *orders.OrderQueries
	Forwarder ports.AgentForwarder
	Validator ports.OrderValidator
	Log       ports.Logger

	// AgentTarget — имя агента в ответе прокси.
	AgentTarget string
	// DefaultAgentID — agent_id для формы, если пользователь его не указал.
	DefaultAgentID string
	// Timeout — верхняя граница обработки запроса (0 — без ограничения).
	Timeout time.Duration
}

// Handler — обработчики BFF: страница заказа, JSON API и прокси к агенту.
type Handler struct {
	mutations *orders.OrderMutations
	queries   *orders.OrderQueries
	forwarder ports.AgentForwarder
	validator ports.OrderValidator
	log       ports.Logger

	agentTarget    string
	defaultAgentID string
	timeout        time.Duration
}

func NewHandler(d Deps) *Handler {
	return &Handler{
		mutations:      d.Mutations,
		queries:        d.Queries,
		forwarder:      d.Forwarder,
		validator:      d.Validator,
		log:            d.Log,
		agentTarget:    d.AgentTarget,
		defaultAgentID: d.DefaultAgentID,
		timeout:        d.Timeout,
	}
}

// requestContext — контекст запроса с таймаутом обработчика.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}
