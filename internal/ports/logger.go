package ports

import "context"

// Logger — контракт логгера агента. Реализация сама достаёт из ctx
// request_id, trace_id, surface и mutation_id.
type Logger interface {
	// Infof — штатные события: применение мутаций, гостевой режим, пропуск синхронизации.
	Infof(ctx context.Context, format string, args ...any)
	// Warnf — деградация без потери данных (сбой слота, отброшенное событие).
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
