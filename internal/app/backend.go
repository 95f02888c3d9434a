package app

import (
	"context"

	"github.com/Gunvolt24/agent_orders/config"
	"github.com/Gunvolt24/agent_orders/internal/kafka"
	"github.com/Gunvolt24/agent_orders/internal/ports"
	"github.com/Gunvolt24/agent_orders/internal/repo/postgres"
	"github.com/Gunvolt24/agent_orders/internal/transport/http/ordersapi"
	"github.com/Gunvolt24/agent_orders/internal/usecase"
	"github.com/Gunvolt24/agent_orders/migrations"
	"github.com/Gunvolt24/agent_orders/pkg/logger"
	"github.com/Gunvolt24/agent_orders/pkg/metrics"
	"github.com/Gunvolt24/agent_orders/pkg/validate"
)

// BootstrapBackend — собирает бэкенд заказов: Postgres (+миграции), сервис заказов,
// публикацию событий в Kafka (если включена) и HTTP API под cfg.Backend.BasePath.
func BootstrapBackend(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	metrics.MustRegister()

	pool, err := postgres.NewPool(ctx, cfg.Postgres)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	if cfg.Postgres.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool, migrations.FS); err != nil {
			pool.Close()
			if cErr := cleanupLogger(); cErr != nil {
				logg.Warnf(ctx, "cleanup logger: %v", cErr)
			}
			return nil, func() {}, err
		}
		logg.Infof(ctx, "migrations applied")
	}

	tracingCfg := cfg.Tracing
	tracingCfg.ServiceName = cfg.Backend.ServiceName
	shutdownTrace, otelServiceName := setupTracing(ctx, tracingCfg, logg)

	// Без Kafka сервис работает, события просто не публикуются.
	var publisher ports.EventPublisher
	if cfg.Kafka.Enabled {
		publisher = kafka.NewProducer(kafka.ProducerConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			WriteTimeout: cfg.Kafka.WriteTimeout,
		}, logg)
	}

	service := usecase.NewOrderService(
		postgres.NewOrderRepository(pool),
		validate.NewOrderValidator(),
		publisher,
		logg,
	)

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	handler := ordersapi.NewHandler(service, logg, cfg.HTTP.HandlerTimeout)
	router := ordersapi.NewRouter(handler, ordersapi.RouterOptions{
		BasePath:    cfg.Backend.BasePath,
		ServiceName: otelServiceName,
	})

	app := &App{
		Logger:          logg,
		HTTPServer:      newHTTPServer(cfg.Backend.Addr, router, cfg.HTTP),
		MetricsServer:   newMetricsServer(cfg.Metrics.Addr),
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	logg.Infof(ctx, "orders backend configured base_path=%s kafka=%t", cfg.Backend.BasePath, cfg.Kafka.Enabled)

	cleanup := func() {
		if publisher != nil {
			if err := publisher.Close(); err != nil {
				logg.Warnf(ctx, "kafka producer close error: %v", err)
			}
		}
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}
