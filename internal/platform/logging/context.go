package logging

import (
	"context"

	"go.uber.org/zap"
)

type ctxLoggerKey struct{}

// WithLogger returns a copy of ctx carrying logger. Handlers further down the
// chain pick it up through LoggerFromContext and the Log helpers.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// LoggerFromContext returns the request-scoped logger, or the process logger
// outside a request.
func LoggerFromContext(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxLoggerKey{}).(*zap.Logger); ok && l != nil {
			return l
		}
	}
	return Logger()
}

func LogInfo(ctx context.Context, msg string, fields ...zap.Field) {
	LoggerFromContext(ctx).Info(msg, fields...)
}

func LogWarn(ctx context.Context, msg string, fields ...zap.Field) {
	LoggerFromContext(ctx).Warn(msg, fields...)
}

// LogError adds err as the "error" field when it is non-nil.
func LogError(ctx context.Context, msg string, err error, fields ...zap.Field) {
	LoggerFromContext(ctx).Error(msg, withErr(err, fields)...)
}

// LogFatal is for startup failures only; it exits the process.
func LogFatal(ctx context.Context, msg string, err error, fields ...zap.Field) {
	LoggerFromContext(ctx).Fatal(msg, withErr(err, fields)...)
}

func withErr(err error, fields []zap.Field) []zap.Field {
	if err == nil {
		return fields
	}
	return append(fields, zap.Error(err))
}
