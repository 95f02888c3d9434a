package ordersapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/agent_orders/pkg/httpx"
)

// RouterOptions — префикс маршрутов и имя сервиса для трейсинга (пустое — без otelgin).
type RouterOptions struct {
	BasePath    string
	ServiceName string
}

// NewRouter — API заказов под BasePath (по умолчанию /agent/api).
func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if opts.ServiceName != "" {
		r.Use(otelgin.Middleware(opts.ServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	base := "/" + strings.Trim(opts.BasePath, "/")
	if base == "/" {
		base = ""
	}

	g := r.Group(base)
	{
		g.GET("/orders/health", h.health)
		g.POST("/orders", h.create)
		g.GET("/orders", h.list)
		g.GET("/orders/agent_id/:agent_id", h.listByAgent)
		g.GET("/orders/:id", h.get)
		g.PATCH("/orders/:id", h.update)
		g.DELETE("/orders/:id", h.delete)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "method not allowed"})
	})

	return r
}
