package agentapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/agent_orders/internal/domain"
)

func newTestForwarder(t *testing.T, h http.HandlerFunc) *Forwarder {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	f := NewForwarder(ForwarderConfig{AgentURL: srv.URL + "/"}, srv.Client())
	f.now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 123e6, time.UTC) }
	ids := []string{"session-1", "msg-1"}
	f.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}
	return f
}

func TestForward_SendsEnvelopeToSubmit(t *testing.T) {
	var (
		gotPath string
		gotEnv  Envelope
	)
	f := newTestForwarder(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotEnv)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"ok":true}`)
	})

	reply, err := f.Forward(context.Background(), "one latte please")
	require.NoError(t, err)
	require.True(t, reply.OK())
	require.JSONEq(t, `{"ok":true}`, string(reply.Body))

	require.Equal(t, "/submit", gotPath)
	require.Equal(t, Envelope{
		Version:      1,
		Sender:       "frontend-user",
		Target:       "california-coffee-shop",
		Session:      "session-1",
		SchemaDigest: "chat_message",
		Payload: ChatPayload{
			Timestamp: "2025-03-01T10:00:00.123Z",
			MsgID:     "msg-1",
			Content:   []ChatContent{{Type: "text", Text: "one latte please"}},
		},
	}, gotEnv)
}

func TestForward_EmptyMessageUsesDefault(t *testing.T) {
	var gotEnv Envelope
	f := newTestForwarder(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotEnv)
		w.WriteHeader(http.StatusAccepted)
	})

	_, err := f.Forward(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, DefaultMessage, gotEnv.Payload.Content[0].Text)
}

func TestForward_NonOKIsNotAnError(t *testing.T) {
	f := newTestForwarder(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream down")
	})

	reply, err := f.Forward(context.Background(), "hi")
	require.NoError(t, err)
	require.False(t, reply.OK())
	require.Equal(t, http.StatusBadGateway, reply.StatusCode)
	require.Equal(t, "upstream down", string(reply.Body))
}

func TestForward_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	f := NewForwarder(ForwarderConfig{AgentURL: srv.URL, Target: "shop-2"}, nil)
	require.Equal(t, "shop-2", f.Target())

	reply, err := f.Forward(context.Background(), "hi")
	require.Nil(t, reply)
	require.ErrorIs(t, err, domain.ErrTransportUnavailable)
}
