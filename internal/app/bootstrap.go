// Package app — сборка процессов: BFF (страница заказа, JSON API, прокси к агенту)
// и бэкенд заказов.
package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Gunvolt24/agent_orders/config"
	cachemem "github.com/Gunvolt24/agent_orders/internal/cache/memory"
	"github.com/Gunvolt24/agent_orders/internal/kafka"
	"github.com/Gunvolt24/agent_orders/internal/orders"
	"github.com/Gunvolt24/agent_orders/internal/ports"
	"github.com/Gunvolt24/agent_orders/internal/transport/agentapi"
	rest "github.com/Gunvolt24/agent_orders/internal/transport/http"
	"github.com/Gunvolt24/agent_orders/pkg/logger"
	"github.com/Gunvolt24/agent_orders/pkg/metrics"
	"github.com/Gunvolt24/agent_orders/pkg/telemetry"
	"github.com/Gunvolt24/agent_orders/pkg/validate"
)

// App — собранный процесс и его внешние интерфейсы.
type App struct {
	Logger        ports.Logger          // логгер
	HTTPServer    *http.Server          // основной HTTP-сервер
	MetricsServer *http.Server          // отдельный /metrics (nil — только на основном)
	KafkaConsumer ports.MessageConsumer // nil — события не читаются

	gracefulTimeout time.Duration
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// setupTracing — трейсинг OTEL; ошибка настройки не роняет процесс.
func setupTracing(ctx context.Context, cfg config.Tracing, log ports.Logger) (shutdown telemetry.ShutdownFunc, serviceName string) {
	shutdown, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Warnf(ctx, "failed to setup tracing: %v", err)
		return func(context.Context) error { return nil }, ""
	}
	if !cfg.Enabled {
		return shutdown, ""
	}
	log.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
		cfg.ServiceName, cfg.Endpoint, cfg.SampleRatio)
	return shutdown, cfg.ServiceName
}

func newHTTPServer(addr string, h http.Handler, cfg config.HTTP) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

func newMetricsServer(addr string) *http.Server {
	if addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
}

// Bootstrap — собирает BFF: кэш запросов, клиент API заказов, мутации и чтения,
// пересылку сообщений агенту, HTTP-слой и (опционально) консьюмер событий заказов.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	metrics.MustRegister()

	shutdownTrace, otelServiceName := setupTracing(ctx, cfg.Tracing, logg)

	// Общий HTTP-клиент с otelhttp для API заказов и агента.
	httpClient := agentapi.NewHTTPClient()
	transport := agentapi.NewClient(cfg.Agent.OrdersBaseURL,
		agentapi.WithHTTPClient(httpClient),
		agentapi.WithTimeout(cfg.Agent.RequestTimeout),
	)
	forwarder := agentapi.NewForwarder(agentapi.ForwarderConfig{
		AgentURL: cfg.Agent.URL,
		Target:   cfg.Agent.Target,
		Sender:   cfg.Agent.Sender,
		Timeout:  cfg.Agent.RequestTimeout,
	}, httpClient)

	queryCache := cachemem.NewQueryCache(cfg.Cache.Capacity, cfg.Cache.TTL)
	orderValidator := validate.NewOrderValidator()
	mutations := orders.NewOrderMutations(transport, queryCache, orderValidator, logg)
	queries := orders.NewOrderQueries(transport, queryCache, logg)

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	handler := rest.NewHandler(rest.Deps{
		Mutations:      mutations,
		Queries:        queries,
		Forwarder:      forwarder,
		Validator:      orderValidator,
		Log:            logg,
		AgentTarget:    forwarder.Target(),
		DefaultAgentID: cfg.Agent.DefaultAgentID,
		Timeout:        cfg.HTTP.HandlerTimeout,
	})
	router := rest.NewRouter(handler, rest.RouterOptions{ServiceName: otelServiceName})

	app := &App{
		Logger:          logg,
		HTTPServer:      newHTTPServer(cfg.HTTP.Addr, router, cfg.HTTP),
		MetricsServer:   newMetricsServer(cfg.Metrics.Addr),
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// События заказов от бэкенда: тот же кэш, те же правила, что и у мутаций.
	if cfg.Kafka.Enabled {
		kafkaCfg := kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}
		app.KafkaConsumer = kafka.NewConsumer(&kafkaCfg, orders.NewEventApplier(queryCache, logg), logg)
	}

	logg.Infof(ctx, "bff configured orders_api=%s agent=%s target=%s kafka=%t",
		transport.BaseURL(), cfg.Agent.URL, forwarder.Target(), cfg.Kafka.Enabled)

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if app.KafkaConsumer != nil {
			if err := app.KafkaConsumer.Close(); err != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", err)
			}
		}
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-серверы и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 3)

	if a.KafkaConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	for _, srv := range a.servers() {
		go func(srv *http.Server) {
			a.Logger.Infof(ctx, "http server starting (addr=%s)", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}(srv)
	}

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	for _, srv := range a.servers() {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "http server %s shutdown failed: %v", srv.Addr, err)
		} else {
			a.Logger.Infof(ctx, "http server %s stopped gracefully", srv.Addr)
		}
	}

	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}

func (a *App) servers() []*http.Server {
	out := make([]*http.Server, 0, 2)
	if a.HTTPServer != nil {
		out = append(out, a.HTTPServer)
	}
	if a.MetricsServer != nil {
		out = append(out, a.MetricsServer)
	}
	return out
}
