package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Gunvolt24/agent_orders/pkg/ctxmeta"
)

// HeaderRequestID — заголовок сквозного идентификатора запроса.
const HeaderRequestID = "X-Request-ID"

// RequestIDMiddleware:
// - принимает X-Request-ID от клиента или генерирует UUID
// - кладёт request_id в контекст
// - возвращает его в ответном заголовке X-Request-ID
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(HeaderRequestID, requestID)

		ctx := ctxmeta.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// PropagateRequestID — переносит request_id из контекста исходящего запроса в заголовок.
func PropagateRequestID(req *http.Request) {
	if req == nil || req.Header.Get(HeaderRequestID) != "" {
		return
	}
	if id, ok := ctxmeta.RequestIDFromContext(req.Context()); ok {
		req.Header.Set(HeaderRequestID, id)
	}
}
