package rest

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/agent_orders/internal/domain"
	"github.com/Gunvolt24/agent_orders/internal/orders"
)

const (
	successMessage = "Order success"
	failedMessage  = "Order failed"
)

type formView struct {
	Item           string
	AgentID        string
	DefaultAgentID string
	Errors         map[string]string
}

type successView struct {
	Message string
	Order   *domain.Order
}

type failedView struct {
	Message string
	Details string
}

func (h *Handler) orderForm(c *gin.Context) {
	c.HTML(http.StatusOK, "order_form.html", formView{DefaultAgentID: h.defaultAgentID})
}

// confirmOrder — POST /orders/confirm: проверка формы (ошибки рядом с полями, 422, без сети),
// затем мутация создания и 303 на страницу успеха или ошибки.
func (h *Handler) confirmOrder(c *gin.Context) {
	var req domain.CreateOrderRequest
	_ = c.ShouldBind(&req)

	view := formView{Item: req.Item, AgentID: req.AgentID, DefaultAgentID: h.defaultAgentID}
	if req.AgentID == "" {
		req.AgentID = h.defaultAgentID
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.validator.ValidateCreate(ctx, &req); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			view.Errors = verr.FieldMessages()
		} else {
			view.Errors = map[string]string{"item": err.Error()}
		}
		c.HTML(http.StatusUnprocessableEntity, "order_form.html", view)
		return
	}

	location := ""
	_, err := h.mutations.CreateOrder(ctx, req, orders.Callbacks[domain.CreateOrderRequest, *domain.Order]{
		OnSuccess: func(_ context.Context, order *domain.Order, _ domain.CreateOrderRequest) {
			location = "/orders/success?id=" + strconv.FormatInt(order.ID, 10)
		},
		OnError: func(_ context.Context, err error, _ domain.CreateOrderRequest) {
			location = failedLocation(err)
		},
	})
	if location == "" {
		// Ответ отброшен (таймаут обработчика или клиент ушёл): обработчики не вызывались.
		location = failedLocation(err)
	}
	c.Redirect(http.StatusSeeOther, location)
}

// orderSuccess — заказ берётся только из кэша: после создания Detail(id) уже заполнен.
func (h *Handler) orderSuccess(c *gin.Context) {
	view := successView{Message: successMessage}
	if id, err := strconv.ParseInt(c.Query("id"), 10, 64); err == nil && id > 0 {
		if order, ok := h.queries.CachedOrder(c.Request.Context(), id); ok {
			view.Order = order
		}
	}
	c.HTML(http.StatusOK, "order_success.html", view)
}

func (h *Handler) orderFailed(c *gin.Context) {
	c.HTML(http.StatusOK, "order_failed.html", failedView{Message: failedMessage, Details: c.Query("message")})
}

func failedLocation(err error) string {
	if err == nil {
		return "/orders/failed"
	}
	return "/orders/failed?message=" + url.QueryEscape(err.Error())
}
