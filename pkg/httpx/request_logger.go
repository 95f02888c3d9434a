package httpx

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/agent_orders/internal/ports"
)

// quietPaths — служебные маршруты, которые не пишем в лог; health-check — под любым префиксом.
var quietPaths = map[string]struct{}{
	"/metrics": {},
	"/ping":    {},
}

func quiet(path string) bool {
	if _, ok := quietPaths[path]; ok {
		return true
	}
	return strings.HasSuffix(path, "/health")
}

// RequestLogger — middleware для логирования HTTP-запросов.
// request_id/trace_id логгер берёт из контекста сам.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if quiet(path) {
			return
		}
		if path == "" {
			path = c.Request.URL.Path
		}

		status := c.Writer.Status()
		logf := log.Infof
		if status >= 500 {
			logf = log.Warnf
		}
		logf(
			c.Request.Context(),
			"request method=%s path=%s status=%d ip=%s duration=%s size=%d errors=%d",
			c.Request.Method,
			path,
			status,
			c.ClientIP(),
			time.Since(start),
			c.Writer.Size(),
			len(c.Errors),
		)
	}
}
