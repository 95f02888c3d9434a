package validate

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Gunvolt24/agent_orders/internal/domain"
	"github.com/Gunvolt24/agent_orders/internal/ports"
)

// Проверка, что OrderValidator удовлетворяет интерфейсу OrderValidator.
var _ ports.OrderValidator = (*OrderValidator)(nil)

// fieldLabels — человекочитаемые имена полей для сообщений.
var fieldLabels = map[string]string{
	"agent_id": "Agent ID",
	"item":     "Item",
}

// OrderValidator — проверка запросов на создание и обновление заказа (go-playground/validator).
// Строковые поля обрезаются по краям до проверки; запрос меняется на месте.
type OrderValidator struct {
	v *validator.Validate
}

// NewOrderValidator — конструктор OrderValidator.
// Ошибки — *domain.ValidationError (errors.Is(err, domain.ErrValidationFailed)).
func NewOrderValidator() *OrderValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// в ошибках — json-имена полей
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &OrderValidator{v: v}
}

// ValidateCreate — item и agent_id обязательны.
func (ov *OrderValidator) ValidateCreate(_ context.Context, req *domain.CreateOrderRequest) error {
	if req == nil {
		return &domain.ValidationError{Fields: []domain.FieldError{{Field: "item", Message: "Item is required"}}}
	}
	req.AgentID = strings.TrimSpace(req.AgentID)
	req.Item = strings.TrimSpace(req.Item)
	return ov.check(req)
}

// ValidateUpdate — нужно хотя бы одно поле; заданные поля не пустые.
func (ov *OrderValidator) ValidateUpdate(_ context.Context, req *domain.UpdateOrderRequest) error {
	if req == nil || req.Empty() {
		return &domain.ValidationError{Fields: []domain.FieldError{{Field: "body", Message: "At least one field is required"}}}
	}
	if req.AgentID != nil {
		trimmed := strings.TrimSpace(*req.AgentID)
		req.AgentID = &trimmed
	}
	if req.Item != nil {
		trimmed := strings.TrimSpace(*req.Item)
		req.Item = &trimmed
	}
	return ov.check(req)
}

func (ov *OrderValidator) check(s any) error {
	err := ov.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrValidationFailed, err)
	}
	out := &domain.ValidationError{Fields: make([]domain.FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, domain.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		return label + " must not be empty"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, fe.Tag())
	}
}
