package ports

import "context"

// MessageConsumer — фоновый читатель событий заказов (Kafka в BFF).
// Run блокируется до отмены ctx или фатальной ошибки; Close можно звать повторно.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
