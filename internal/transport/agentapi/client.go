// Package agentapi — HTTP-клиент к API заказов агента и пересылка сообщений чата.
package agentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Gunvolt24/agent_orders/internal/ports"
	"github.com/Gunvolt24/agent_orders/pkg/httpx"
	"github.com/Gunvolt24/agent_orders/pkg/metrics"
)

// DefaultBaseURL — адрес API заказов по умолчанию.
const DefaultBaseURL = "http://localhost:8001/agent/api"

// Проверка соответствия порту.
var _ ports.OrderTransport = (*Client)(nil)

// Client — клиент API заказов. Состояния не хранит; одна сетевая попытка на вызов, без ретраев.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
}

// Option — настройка клиента.
type Option func(*Client)

// WithHTTPClient — подменить *http.Client (тесты, общий пул соединений).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout — таймаут на один запрос; 0 — без таймаута.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// NewClient — конструктор. Пустой baseURL заменяется на DefaultBaseURL, завершающий "/" отбрасывается.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: normalizeBaseURL(baseURL, DefaultBaseURL),
		http:    NewHTTPClient(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewHTTPClient — *http.Client с otelhttp-транспортом (исходящие спаны и traceparent).
func NewHTTPClient() *http.Client {
	return &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
}

// BaseURL — нормализованный базовый адрес.
func (c *Client) BaseURL() string { return c.baseURL }

// call — выполнить запрос и декодировать ответ; метрики по op.
func call[T any](ctx context.Context, c *Client, op, method, path string, body any) (T, error) {
	var zero T
	start := time.Now()
	defer func() {
		metrics.AgentRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	parent := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parent, c.timeout)
		defer cancel()
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// отмена вызывающей стороной — не сбой транспорта
		if parentErr := parent.Err(); parentErr != nil {
			metrics.AgentRequests.WithLabelValues(op, "canceled").Inc()
			return zero, fmt.Errorf("%s: %w", op, parentErr)
		}
		metrics.AgentRequests.WithLabelValues(op, "transport_unavailable").Inc()
		return zero, newTransportError(op, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	out, err := decodeResponse[T](resp)
	if err != nil {
		metrics.AgentRequests.WithLabelValues(op, "request_failed").Inc()
		return zero, err
	}
	metrics.AgentRequests.WithLabelValues(op, "ok").Inc()
	return out, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	httpx.PropagateRequestID(req)
	return req, nil
}

func normalizeBaseURL(raw, fallback string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = fallback
	}
	return strings.TrimRight(raw, "/")
}
