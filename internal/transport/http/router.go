package rest

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/agent_orders/pkg/httpx"
)

//go:embed templates/*.html
var templatesFS embed.FS

// RouterOptions — необязательные части роутера.
type RouterOptions struct {
	// ServiceName — имя сервиса для otelgin; пустое — без трейсинга.
	ServiceName string
}

// NewRouter — gin-роутер BFF.
func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if opts.ServiceName != "" {
		r.Use(otelgin.Middleware(opts.ServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/orders") })
	r.GET("/orders", h.orderForm)
	r.POST("/orders/confirm", h.confirmOrder)
	r.GET("/orders/success", h.orderSuccess)
	r.GET("/orders/failed", h.orderFailed)

	api := r.Group("/api")
	{
		api.GET("/orders", h.listOrders)
		api.POST("/orders", h.createOrder)
		api.GET("/orders/:id", h.getOrder)
		api.PATCH("/orders/:id", h.updateOrder)
		api.DELETE("/orders/:id", h.deleteOrder)
		api.POST("/agent/interact", h.agentInteract)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	return r
}
