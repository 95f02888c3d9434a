// Package telemetry — настройка OpenTelemetry для BFF и бэкенда заказов.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/Gunvolt24/agent_orders/config"
)

const defaultEndpoint = "localhost:4318"

// ShutdownFunc — остановка провайдера с досылкой накопленных спанов.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Setup настраивает OTLP/HTTP экспорт, семплинг и глобальные пропагаторы.
// При выключенном трейсинге ставит только пропагаторы (X-Request-ID и traceparent
// продолжают ходить между сервисами) и возвращает пустой shutdown.
func Setup(ctx context.Context, cfg config.Tracing) (ShutdownFunc, error) {
	setPropagators()
	if !cfg.Enabled {
		return noopShutdown, nil
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(clampRatio(cfg.SampleRatio)))),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			attribute.String("telemetry.sdk", "opentelemetry"),
		)),
	)
	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}

func setPropagators() {
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{}, propagation.Baggage{},
		),
	)
}

// clampRatio — доля семплинга в границах [0..1].
func clampRatio(r float64) float64 {
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	default:
		return r
	}
}
