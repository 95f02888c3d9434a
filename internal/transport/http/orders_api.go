package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/agent_orders/internal/domain"
	"github.com/Gunvolt24/agent_orders/internal/orders"
	"github.com/Gunvolt24/agent_orders/pkg/httpx"
)

// listOrders — GET /api/orders[?agent_id=] из кэша запросов.
func (h *Handler) listOrders(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	list, err := h.queries.OrdersByAgent(ctx, httpx.QueryTrimmed(c, "agent_id"))
	if err != nil {
		h.writeError(c, "list orders", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) getOrder(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.queries.Order(ctx, id)
	if err != nil {
		h.writeError(c, "get order", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// createOrder — POST /api/orders; пустой agent_id заменяется агентом по умолчанию.
func (h *Handler) createOrder(c *gin.Context) {
	var req domain.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}
	if req.AgentID == "" {
		req.AgentID = h.defaultAgentID
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.mutations.CreateOrder(ctx, req, orders.Callbacks[domain.CreateOrderRequest, *domain.Order]{})
	if err != nil {
		h.writeError(c, "create order", err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) updateOrder(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	var req domain.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.mutations.UpdateOrder(ctx, id, req, orders.Callbacks[orders.UpdateInput, *domain.Order]{})
	if err != nil {
		h.writeError(c, "update order", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) deleteOrder(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.mutations.DeleteOrder(ctx, id, orders.Callbacks[int64, struct{}]{}); err != nil {
		h.writeError(c, "delete order", err)
		return
	}
	c.Status(http.StatusNoContent)
}
