package logger

import (
	"context"

	"go.uber.org/zap"

	"github.com/Gunvolt24/agent_orders/pkg/ctxmeta"
)

// ZapLogger — реализация ports.Logger поверх zap.
// request_id, trace_id и span_id из контекста добавляются к каждой записи.
type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

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

	loggerWrap := FromZap(logger)
	loggerWrap.isProd = isProd

	cleanup := func() error { return loggerWrap.base.Sync() }
	return loggerWrap, cleanup, nil
}

// FromZap — обёртка над готовым *zap.Logger (тесты, CLI).
func FromZap(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{base: logger, sugar: logger.Sugar()}
}

// Nop — логгер, который ничего не пишет.
func Nop() *ZapLogger { return FromZap(zap.NewNop()) }

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.withContext(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.withContext(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.withContext(ctx).Errorf(format, args...)
}

func (z *ZapLogger) withContext(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return z.sugar
	}
	if fields := ctxmeta.Fields(ctx); len(fields) > 0 {
		return z.sugar.With(fields...)
	}
	return z.sugar
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }
