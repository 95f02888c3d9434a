package ports

import (
	"context"

	"github.com/Gunvolt24/agent_orders/internal/domain"
)

// AgentForwarder — пересылка сообщения чата агенту.
// Ответ агента возвращается как есть, включая не-2xx; ошибка — только при сбое доставки.
type AgentForwarder interface {
	Forward(ctx context.Context, message string) (*domain.AgentReply, error)
}
