package ports

import "context"

// Logger — логгер внешних слоёв. Метаданные запроса (request_id, trace_id)
// реализация берёт из ctx, поэтому ctx передаётся в каждый вызов.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
