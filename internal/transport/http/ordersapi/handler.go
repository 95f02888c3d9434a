// Package ordersapi — HTTP API бэкенда заказов, с которым работает агент и BFF.
package ordersapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/agent_orders/internal/domain"
	"github.com/Gunvolt24/agent_orders/internal/ports"
	"github.com/Gunvolt24/agent_orders/pkg/httpx"
)

type Handler struct {
	service ports.OrderService
	log     ports.Logger
	timeout time.Duration
}

func NewHandler(service ports.OrderService, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{service: service, log: log, timeout: timeout}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (h *Handler) create(c *gin.Context) {
	var req domain.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid json body"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.service.Create(ctx, req)
	if err != nil {
		h.writeError(c, "create order", err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) list(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	list, err := h.service.List(ctx)
	if err != nil {
		h.writeError(c, "list orders", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) listByAgent(c *gin.Context) {
	agentID := c.Param("agent_id")

	ctx, cancel := h.requestContext(c)
	defer cancel()

	list, err := h.service.ListByAgent(ctx, agentID)
	if err != nil {
		h.writeError(c, "list orders by agent", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order id"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.service.Get(ctx, id)
	if err != nil {
		h.writeError(c, "get order", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order id"})
		return
	}
	var req domain.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid json body"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.service.Update(ctx, id, req)
	if err != nil {
		h.writeError(c, "update order", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order id"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		h.writeError(c, "delete order", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeError — ответы в форме {"message": ...}, которую разбирает клиент агента.
func (h *Handler) writeError(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"message": verr.Error(), "errors": verr.FieldMessages()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "order not found"})
	case errors.Is(err, context.DeadlineExceeded):
		h.log.Warnf(ctx, "%s timed out: %v", op, err)
		c.JSON(http.StatusGatewayTimeout, gin.H{"message": "request timed out"})
	default:
		h.log.Errorf(ctx, "%s failed: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}
