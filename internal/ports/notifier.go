package ports

import "context"

// Notifier — канал уведомлений для UI-слоя. Четыре категории;
// отмена запроса — info, а не error: это разные виды уведомлений.
type Notifier interface {
	Info(ctx context.Context, msg string)
	Warning(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
	Success(ctx context.Context, msg string)
}
