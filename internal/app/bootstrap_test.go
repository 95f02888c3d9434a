package app_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/agent_orders/config"
	"github.com/Gunvolt24/agent_orders/internal/app"
	"github.com/Gunvolt24/agent_orders/pkg/logger"
)

// фейковый консьюмер, который ждёт отмены контекста
type fakeConsumer struct {
	runCalls   int32
	closeCalls int32
	runErr     error
}

func (f *fakeConsumer) Run(ctx context.Context) error {
	atomic.AddInt32(&f.runCalls, 1)
	if f.runErr != nil {
		return f.runErr
	}
	<-ctx.Done()
	return ctx.Err()
}

func (f *fakeConsumer) Close() error {
	atomic.AddInt32(&f.closeCalls, 1)
	return nil
}

func TestAppRun_GracefulShutdown(t *testing.T) {
	// HTTP-сервер на случайном свободном порту
	srv := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.NewServeMux(),
	}

	fc := &fakeConsumer{}
	a := &app.App{
		Logger:        logger.Nop(),
		HTTPServer:    srv,
		KafkaConsumer: fc,
	}

	// Запуск и быстрая остановка
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	require.NoError(t, a.Run(ctx))
	require.NotZero(t, atomic.LoadInt32(&fc.runCalls), "consumer.Run should be called")
	require.NotZero(t, atomic.LoadInt32(&fc.closeCalls), "consumer.Close should be called")
}

func TestAppRun_ConsumerFailureStopsApp(t *testing.T) {
	fc := &fakeConsumer{runErr: errors.New("broker gone")}
	a := &app.App{
		Logger:        logger.Nop(),
		HTTPServer:    &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
		KafkaConsumer: fc,
	}

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after consumer failure")
	}
	require.EqualValues(t, 1, atomic.LoadInt32(&fc.closeCalls))
}

func TestAppRun_WithoutConsumer(t *testing.T) {
	a := &app.App{
		Logger:        logger.Nop(),
		HTTPServer:    &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
		MetricsServer: &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	require.NoError(t, a.Run(ctx))
}

func TestBootstrap_BFFServesPing(t *testing.T) {
	cfg, err := config.LoadWithPrefix("ORDERS_APP_TEST")
	require.NoError(t, err)
	cfg.HTTP.Addr = "127.0.0.1:0"
	cfg.HTTP.GinMode = "test"
	cfg.Kafka.Enabled = false

	a, cleanup, err := app.Bootstrap(context.Background(), &cfg)
	require.NoError(t, err)
	defer cleanup()

	require.Nil(t, a.KafkaConsumer)
	require.Nil(t, a.MetricsServer)
	require.Equal(t, cfg.HTTP.ReadHeaderTimeout, a.HTTPServer.ReadHeaderTimeout)

	w := httptest.NewRecorder()
	a.HTTPServer.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "pong", w.Body.String())
}

func TestBootstrap_BFFWithKafkaConsumer(t *testing.T) {
	cfg, err := config.LoadWithPrefix("ORDERS_APP_TEST")
	require.NoError(t, err)
	cfg.HTTP.GinMode = "test"
	cfg.Kafka.Enabled = true
	cfg.Kafka.Brokers = []string{"127.0.0.1:1"}
	cfg.Metrics.Addr = "127.0.0.1:0"

	// reader kafka-go подключается лениво, сборка не ходит в сеть
	a, cleanup, err := app.Bootstrap(context.Background(), &cfg)
	require.NoError(t, err)
	defer cleanup()

	require.NotNil(t, a.KafkaConsumer)
	require.NotNil(t, a.MetricsServer)
}

// Зависший агент: ответ обработчика (303 на /orders/failed) успевает уйти до таймаута записи сервера.
func TestBootstrap_HangingAgentRedirectsToFailedPage(t *testing.T) {
	agent := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// тело дочитано — иначе net/http не замечает разрыв соединения и контекст не отменяется
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer agent.Close()

	cfg, err := config.LoadWithPrefix("ORDERS_APP_TEST")
	require.NoError(t, err)
	cfg.HTTP.Addr = "127.0.0.1:0"
	cfg.HTTP.GinMode = "test"
	cfg.HTTP.HandlerTimeout = 150 * time.Millisecond
	cfg.HTTP.WriteTimeout = 600 * time.Millisecond
	cfg.Agent.OrdersBaseURL = agent.URL + "/agent/api"
	cfg.Kafka.Enabled = false

	a, cleanup, err := app.Bootstrap(context.Background(), &cfg)
	require.NoError(t, err)
	defer cleanup()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = a.HTTPServer.Serve(ln) }()
	defer a.HTTPServer.Close()

	client := &http.Client{
		Timeout: 5 * time.Second,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	form := url.Values{"item": {"Matcha Latte"}}.Encode()
	resp, err := client.Post("http://"+ln.Addr().String()+"/orders/confirm",
		"application/x-www-form-urlencoded", strings.NewReader(form))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	require.Equal(t, "/orders/failed", loc.Path)
}
