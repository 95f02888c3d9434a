package agentapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Gunvolt24/agent_orders/internal/domain"
)

// maxBodySize — верхняя граница читаемого тела ответа.
const maxBodySize = 4 << 20

type errorBody struct {
	Message any `json:"message"`
}

// decodeResponse — 2xx: тело как JSON в T без дополнительной проверки (пустое тело — нулевое значение).
// Не-2xx: *domain.RequestError с сообщением из поля message тела или синтезированным по коду.
// Значение и ошибка вместе не возвращаются.
func decodeResponse[T any](resp *http.Response) (T, error) {
	var zero T

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return zero, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, &domain.RequestError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.StatusCode, body),
		}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return zero, nil
	}
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return zero, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	return out, nil
}

// errorMessage — сообщение для не-2xx ответа:
// тело не JSON или пустое → "HTTP error! status: N";
// JSON без непустого строкового message → "Request failed with status N".
func errorMessage(status int, body []byte) string {
	var eb errorBody
	if len(bytes.TrimSpace(body)) == 0 || json.Unmarshal(body, &eb) != nil {
		return fmt.Sprintf("HTTP error! status: %d", status)
	}
	if msg, ok := eb.Message.(string); ok && msg != "" {
		return msg
	}
	return fmt.Sprintf("Request failed with status %d", status)
}
