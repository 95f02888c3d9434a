package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/agent_orders/internal/domain"
)

// writeError — ошибка слоя заказов в JSON {"error": ...}:
// ValidationFailed → 422 (+ fields), RequestFailed → статус агента,
// TransportUnavailable → 502, таймаут → 504, прочее → 500.
func (h *Handler) writeError(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()

	var (
		verr *domain.ValidationError
		rerr *domain.RequestError
	)
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Error(), "fields": verr.FieldMessages()})
	case errors.As(err, &rerr):
		h.log.Warnf(ctx, "%s: agent responded status=%d: %s", op, rerr.StatusCode, rerr.Message)
		c.JSON(statusOrBadGateway(rerr.StatusCode), gin.H{"error": rerr.Message})
	case errors.Is(err, domain.ErrTransportUnavailable):
		h.log.Errorf(ctx, "%s: %v", op, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		h.log.Warnf(ctx, "%s: %v", op, err)
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "request timed out"})
	default:
		h.log.Errorf(ctx, "%s: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// statusOrBadGateway — не-ошибочный статус агента (например, 3xx) в ответ не пробрасываем.
func statusOrBadGateway(status int) int {
	if status < http.StatusBadRequest || status > 599 {
		return http.StatusBadGateway
	}
	return status
}
