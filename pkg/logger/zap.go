package logger

import (
	"context"

	"github.com/Yotrages/exquisite-wears/pkg/ctxmeta"
	"go.uber.org/zap"
)

// ZapLogger — реализация ports.Logger поверх zap.SugaredLogger.
// Метаданные (request_id, trace_id, surface, mutation_id) берутся из контекста.
type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

// NewZapLogger — production (JSON) или development конфигурация.
// Возвращает логгер и функцию Sync для очистки.
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if isProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, nil, err
	}

	loggerWrap := &ZapLogger{
		base:   logger,
		sugar:  logger.Sugar(),
		isProd: isProd,
	}

	cleanup := func() error { return loggerWrap.base.Sync() }
	return loggerWrap, cleanup, nil
}

// NewNop — логгер, который ничего не пишет (CLI, тесты).
func NewNop() *ZapLogger {
	l := zap.NewNop()
	return &ZapLogger{base: l, sugar: l.Sugar()}
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Errorf(format, args...)
}

// withMeta — добавляет поля из контекста, если они есть.
func (z *ZapLogger) withMeta(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return z.sugar
	}
	fields := make([]any, 0, 8)
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		fields = append(fields, "request_id", rid)
	}
	if tid, ok := ctxmeta.TraceIDFromContext(ctx); ok {
		fields = append(fields, "trace_id", tid)
	}
	if surface, ok := ctxmeta.SurfaceFromContext(ctx); ok {
		fields = append(fields, "surface", surface)
	}
	if mid, ok := ctxmeta.MutationIDFromContext(ctx); ok {
		fields = append(fields, "mutation_id", mid)
	}
	if len(fields) == 0 {
		return z.sugar
	}
	return z.sugar.With(fields...)
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }
