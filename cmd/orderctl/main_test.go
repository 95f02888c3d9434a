package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/agent_orders/config"
	"github.com/Gunvolt24/agent_orders/internal/domain"
	"github.com/Gunvolt24/agent_orders/internal/ports/mocks"
	"github.com/Gunvolt24/agent_orders/internal/transport/http/ordersapi"
	"github.com/Gunvolt24/agent_orders/pkg/logger"
)

// backend — настоящий API заказов поверх мока сервиса.
func backend(t *testing.T) (*mocks.MockOrderService, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := mocks.NewMockOrderService(gomock.NewController(t))
	h := ordersapi.NewHandler(svc, logger.Nop(), time.Second)
	srv := httptest.NewServer(ordersapi.NewRouter(h, ordersapi.RouterOptions{BasePath: "/agent/api"}))
	t.Cleanup(srv.Close)

	cfg, err := config.LoadWithPrefix("ORDERCTL_TEST")
	require.NoError(t, err)
	cfg.Agent.OrdersBaseURL = srv.URL + "/agent/api"
	cfg.Agent.DefaultAgentID = "tea-house"
	return svc, &cfg
}

func run(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(cfg)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestOrderCreate_DefaultAgent(t *testing.T) {
	svc, cfg := backend(t)
	svc.EXPECT().Create(gomock.Any(), domain.CreateOrderRequest{AgentID: "tea-house", Item: "Matcha"}).
		Return(&domain.Order{ID: 12, AgentID: "tea-house", Item: "Matcha"}, nil)

	out, err := run(t, cfg, "order", "create", "--item", "Matcha")
	require.NoError(t, err)
	require.Contains(t, out, "Order success")
	require.Contains(t, out, "12")
	require.Contains(t, out, "Matcha")
}

func TestOrderCreate_ValidationNoNetwork(t *testing.T) {
	_, cfg := backend(t) // мок без ожиданий: любой вызов провалит тест

	out, err := run(t, cfg, "order", "create", "--item", "   ")
	require.ErrorIs(t, err, domain.ErrValidationFailed)
	require.Contains(t, out, "Order failed")
	require.Contains(t, out, "item")
}

func TestOrderCreate_TransportUnavailable(t *testing.T) {
	cfg, err := config.LoadWithPrefix("ORDERCTL_TEST")
	require.NoError(t, err)
	cfg.Agent.OrdersBaseURL = "http://127.0.0.1:1/agent/api"

	out, err := run(t, &cfg, "order", "create", "--item", "Latte", "--agent-id", "a1")
	require.ErrorIs(t, err, domain.ErrTransportUnavailable)
	require.Contains(t, out, "Order failed")
}

func TestOrderList(t *testing.T) {
	svc, cfg := backend(t)
	svc.EXPECT().List(gomock.Any()).Return([]domain.Order{
		{ID: 1, AgentID: "a1", Item: "Espresso"},
		{ID: 2, AgentID: "a2", Item: "Cortado"},
	}, nil)
	svc.EXPECT().ListByAgent(gomock.Any(), "a3").Return([]domain.Order{}, nil)

	out, err := run(t, cfg, "order", "list")
	require.NoError(t, err)
	require.Contains(t, out, "Espresso")
	require.Contains(t, out, "Cortado")

	out, err = run(t, cfg, "order", "list", "--agent-id", "a3")
	require.NoError(t, err)
	require.Contains(t, out, "No orders yet")
}

func TestOrderGet_NotFound(t *testing.T) {
	svc, cfg := backend(t)
	svc.EXPECT().Get(gomock.Any(), int64(9)).Return(nil, domain.ErrNotFound)

	out, err := run(t, cfg, "order", "get", "9")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Contains(t, out, "order not found")
}

func TestOrderUpdate_OnlyChangedFields(t *testing.T) {
	svc, cfg := backend(t)
	item := "Flat White"
	svc.EXPECT().Update(gomock.Any(), int64(4), domain.UpdateOrderRequest{Item: &item}).
		Return(&domain.Order{ID: 4, AgentID: "a1", Item: item}, nil)

	out, err := run(t, cfg, "order", "update", "4", "--item", item)
	require.NoError(t, err)
	require.Contains(t, out, "Flat White")
}

func TestOrderDelete(t *testing.T) {
	svc, cfg := backend(t)
	svc.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)

	out, err := run(t, cfg, "order", "delete", "4")
	require.NoError(t, err)
	require.Contains(t, out, "Order 4 deleted")

	_, err = run(t, cfg, "order", "delete", "x")
	require.Error(t, err)
}

func TestOrderImport(t *testing.T) {
	svc, cfg := backend(t)
	svc.EXPECT().Create(gomock.Any(), domain.CreateOrderRequest{AgentID: "a1", Item: "Mocha"}).
		Return(&domain.Order{ID: 1, AgentID: "a1", Item: "Mocha"}, nil)
	svc.EXPECT().Create(gomock.Any(), domain.CreateOrderRequest{AgentID: "tea-house", Item: "Chai"}).
		Return(&domain.Order{ID: 2, AgentID: "tea-house", Item: "Chai"}, nil)

	path := filepath.Join(t.TempDir(), "orders.jsonl")
	content := `{"agent_id":"a1","item":"Mocha"}
{"agent_id":"a1","item":""}

{"item":"Chai"}
not json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, err := run(t, cfg, "order", "import", path)
	require.NoError(t, err)
	require.Contains(t, out, "line 1: order 1 created")
	require.Contains(t, out, "line 4: order 2 created")
	require.Contains(t, out, "line 2:")
	require.Contains(t, out, "line 5:")
	require.Contains(t, out, "Created: 2")
	require.Contains(t, out, "Skipped: 2")
}

func TestAgentSay(t *testing.T) {
	var (
		got  map[string]any
		path string
	)
	agent := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reply":"hi"}`))
	}))
	defer agent.Close()

	cfg, err := config.LoadWithPrefix("ORDERCTL_TEST")
	require.NoError(t, err)
	cfg.Agent.URL = agent.URL
	cfg.Agent.Target = "coffee"

	out, err := run(t, &cfg, "agent", "say", "hello", "there")
	require.NoError(t, err)
	require.Contains(t, out, "Message sent to agent successfully")
	require.Contains(t, out, `"reply": "hi"`)
	require.Equal(t, "/submit", path)
	require.Equal(t, "coffee", got["target"])
}

func TestAgentSay_Rejected(t *testing.T) {
	agent := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "busy", http.StatusServiceUnavailable)
	}))
	defer agent.Close()

	cfg, err := config.LoadWithPrefix("ORDERCTL_TEST")
	require.NoError(t, err)
	cfg.Agent.URL = agent.URL

	out, err := run(t, &cfg, "agent", "say", "hello")
	require.Error(t, err)
	require.Contains(t, out, "status 503")
	require.Contains(t, out, "busy")
}

func TestOrderValidate_NoNetwork(t *testing.T) {
	_, cfg := backend(t)

	path := filepath.Join(t.TempDir(), "orders.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{\"agent_id\":\" a1 \",\"item\":\"Mocha\"}\n{\"item\":\"\"}\n"), 0o600))

	out, err := run(t, cfg, "order", "validate", path)
	require.NoError(t, err)
	require.Contains(t, out, `{"agent_id":"a1","item":"Mocha"}`)
	require.Contains(t, out, "1 valid / 1 invalid")
}
