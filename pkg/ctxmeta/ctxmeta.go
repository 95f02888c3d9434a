// Пакет ctxmeta — нейтральный слой для работы с метаданными запроса,
// которые прокидываются через context.Context (request_id, trace_id и т.д.).
// Идея: HTTP-слой и логгер зависят от небольшого общего пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	// Ключи контекста (неэкспортируемые типы — чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// Fields — request_id, trace_id и span_id из контекста в виде пар ключ/значение для логгера.
func Fields(ctx context.Context) []any {
	out := make([]any, 0, 6)
	if id, ok := RequestIDFromContext(ctx); ok {
		out = append(out, string(KeyRequestID), id)
	}
	if id, ok := TraceIDFromContext(ctx); ok {
		out = append(out, "trace_id", id)
	}
	if id, ok := SpanIDFromContext(ctx); ok {
		out = append(out, "span_id", id)
	}
	return out
}
