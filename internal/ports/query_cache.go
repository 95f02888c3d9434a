package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/agent_orders/internal/querykey"
)

// EntryStatus — итог последней загрузки данных по ключу.
type EntryStatus string

const (
	StatusSuccess EntryStatus = "success"
	StatusError   EntryStatus = "error"
)

// Entry — запись кэша запросов.
// При ошибке Value содержит последнее удачное значение (если было).
type Entry struct {
	Value     any
	Err       error
	Status    EntryStatus
	Stale     bool
	UpdatedAt time.Time
}

// QueryCache — кэш результатов запросов с иерархическими ключами.
// Требования к реализации: потокобезопасность; возврат копий значений.
type QueryCache interface {
	// Get — запись по ключу; Stale=true для инвалидированных и просроченных записей.
	Get(ctx context.Context, key querykey.Key) (Entry, bool)
	// Set — сохранить успешный результат; запись становится свежей.
	Set(ctx context.Context, key querykey.Key, value any)
	// SetSince — сохранить результат загрузки, начатой при поколении gen.
	// Если с тех пор была инвалидация или удаление, запись сохраняется устаревшей;
	// значение более поздней загрузки не перезаписывается. Возвращает true, если записано свежее значение.
	SetSince(ctx context.Context, key querykey.Key, value any, gen uint64) bool
	// Generation — счётчик инвалидаций; растёт при каждом Invalidate, InvalidateExact и Remove.
	Generation(ctx context.Context) uint64
	// SetError — сохранить ошибку загрузки, не теряя последнее значение.
	SetError(ctx context.Context, key querykey.Key, err error)
	// Invalidate — пометить устаревшими все записи с префиксом; возвращает их число.
	Invalidate(ctx context.Context, prefix querykey.Key) int
	// InvalidateExact — пометить устаревшей ровно одну запись.
	InvalidateExact(ctx context.Context, key querykey.Key) bool
	// Remove — удалить запись.
	Remove(ctx context.Context, key querykey.Key) bool
}
