package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Базовые ошибки (sentinel errors) для errors.Is.
var (
	// ErrRequestFailed — удалённая сторона ответила не-2xx статусом.
	ErrRequestFailed = errors.New("request failed")
	// ErrTransportUnavailable — ответа не было вовсе (соединение не установлено, сеть и т.д.).
	ErrTransportUnavailable = errors.New("transport unavailable")
	// ErrValidationFailed — клиентская проверка обязательных полей не прошла, в сеть ничего не ушло.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidEvent — событие заказа не разбирается или не имеет смысла; повторная обработка не поможет.
	ErrInvalidEvent = errors.New("invalid order event")

	// Классы статусов внутри ErrRequestFailed.
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
)

// RequestError — не-2xx ответ с сообщением, извлечённым из тела или синтезированным по коду.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string { return e.Message }

// Is — RequestError совпадает с ErrRequestFailed и с классом своего статуса.
func (e *RequestError) Is(target error) bool {
	switch target {
	case ErrRequestFailed:
		return true
	case ErrBadRequest:
		return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrServer:
		return e.StatusCode >= http.StatusInternalServerError
	}
	return false
}

// FieldError — ошибка конкретного поля формы; выводится рядом с полем.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError — набор ошибок полей; совпадает с ErrValidationFailed.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidationFailed.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidationFailed }

// FieldMessages — сообщения по именам полей (для вывода в форме).
func (e *ValidationError) FieldMessages() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		if _, ok := out[f.Field]; !ok {
			out[f.Field] = f.Message
		}
	}
	return out
}
