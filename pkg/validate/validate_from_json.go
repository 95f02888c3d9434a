package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/agent_orders/internal/domain"
	"github.com/Gunvolt24/agent_orders/internal/ports"
)

// CreateRequestFromJSON — строгий разбор запроса на создание заказа и его проверка.
// Неизвестные поля и данные после объекта — ошибка.
func CreateRequestFromJSON(ctx context.Context, validator ports.OrderValidator, raw []byte) (*domain.CreateOrderRequest, error) {
	var req domain.CreateOrderRequest
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	if err := validator.ValidateCreate(ctx, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
