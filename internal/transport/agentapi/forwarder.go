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

	"github.com/google/uuid"

	"github.com/Gunvolt24/agent_orders/internal/domain"
	"github.com/Gunvolt24/agent_orders/internal/ports"
	"github.com/Gunvolt24/agent_orders/pkg/httpx"
	"github.com/Gunvolt24/agent_orders/pkg/metrics"
)

const (
	// DefaultAgentURL — адрес агента по умолчанию.
	DefaultAgentURL = "http://localhost:8001"
	// DefaultTarget — адресат конверта по умолчанию.
	DefaultTarget = "california-coffee-shop"
	// DefaultSender — отправитель конверта по умолчанию.
	DefaultSender = "frontend-user"
	// DefaultMessage — текст, если пользователь не передал сообщение.
	DefaultMessage = "Hello from frontend!"

	envelopeVersion = 1
	schemaDigest    = "chat_message"
	opForward       = "agent_submit"
)

// Envelope — конверт сообщения агенту.
type Envelope struct {
	Version      int         `json:"version"`
	Sender       string      `json:"sender"`
	Target       string      `json:"target"`
	Session      string      `json:"session"`
	SchemaDigest string      `json:"schema_digest"`
	Payload      ChatPayload `json:"payload"`
}

// ChatPayload — полезная нагрузка сообщения чата.
type ChatPayload struct {
	Timestamp string        `json:"timestamp"`
	MsgID     string        `json:"msg_id"`
	Content   []ChatContent `json:"content"`
}

// ChatContent — фрагмент содержимого.
type ChatContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Проверка соответствия порту.
var _ ports.AgentForwarder = (*Forwarder)(nil)

// Forwarder — оборачивает текст в конверт и отправляет POST {agentURL}/submit.
// Каждый вызов — новая сессия.
type Forwarder struct {
	agentURL string
	target   string
	sender   string
	timeout  time.Duration
	http     *http.Client
	now      func() time.Time
	newID    func() string
}

// ForwarderConfig — параметры пересылки.
type ForwarderConfig struct {
	AgentURL string
	Target   string
	Sender   string
	Timeout  time.Duration
}

// NewForwarder — конструктор; пустые поля заменяются значениями по умолчанию.
func NewForwarder(cfg ForwarderConfig, hc *http.Client) *Forwarder {
	if hc == nil {
		hc = NewHTTPClient()
	}
	target := strings.TrimSpace(cfg.Target)
	if target == "" {
		target = DefaultTarget
	}
	sender := strings.TrimSpace(cfg.Sender)
	if sender == "" {
		sender = DefaultSender
	}
	return &Forwarder{
		agentURL: normalizeBaseURL(cfg.AgentURL, DefaultAgentURL),
		target:   target,
		sender:   sender,
		timeout:  cfg.Timeout,
		http:     hc,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// Target — адресат, указываемый в конвертах.
func (f *Forwarder) Target() string { return f.target }

// Forward — отправить сообщение; не-2xx ответ агента не считается ошибкой.
func (f *Forwarder) Forward(ctx context.Context, message string) (*domain.AgentReply, error) {
	start := time.Now()
	defer func() {
		metrics.AgentRequestDuration.WithLabelValues(opForward).Observe(time.Since(start).Seconds())
	}()

	parent := ctx
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parent, f.timeout)
		defer cancel()
	}

	raw, err := json.Marshal(f.Envelope(message))
	if err != nil {
		return nil, fmt.Errorf("%s: encode envelope: %w", opForward, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.agentURL+"/submit", bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", opForward, err)
	}
	req.Header.Set("Content-Type", "application/json")
	httpx.PropagateRequestID(req)

	resp, err := f.http.Do(req)
	if err != nil {
		if parentErr := parent.Err(); parentErr != nil {
			metrics.AgentRequests.WithLabelValues(opForward, "canceled").Inc()
			return nil, fmt.Errorf("%s: %w", opForward, parentErr)
		}
		metrics.AgentRequests.WithLabelValues(opForward, "transport_unavailable").Inc()
		return nil, newTransportError(opForward, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		metrics.AgentRequests.WithLabelValues(opForward, "transport_unavailable").Inc()
		return nil, newTransportError(opForward, err)
	}

	reply := &domain.AgentReply{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}
	if reply.OK() {
		metrics.AgentRequests.WithLabelValues(opForward, "ok").Inc()
	} else {
		metrics.AgentRequests.WithLabelValues(opForward, "request_failed").Inc()
	}
	return reply, nil
}

// Envelope — конверт для текста; пустой текст заменяется DefaultMessage.
func (f *Forwarder) Envelope(message string) Envelope {
	if message == "" {
		message = DefaultMessage
	}
	return Envelope{
		Version:      envelopeVersion,
		Sender:       f.sender,
		Target:       f.target,
		Session:      f.newID(),
		SchemaDigest: schemaDigest,
		Payload: ChatPayload{
			Timestamp: f.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
			MsgID:     f.newID(),
			Content:   []ChatContent{{Type: "text", Text: message}},
		},
	}
}
