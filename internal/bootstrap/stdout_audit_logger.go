package bootstrap

import (
	"context"

	"go-leave/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit entries through the process logger.
// Server lifecycle events are the only audited actions here, so they do
// not warrant a separate audit store.
type StdoutAuditLogger struct {
	logger *zap.Logger
}

func NewStdoutAuditLogger(logger ...*zap.Logger) *StdoutAuditLogger {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &StdoutAuditLogger{logger: l}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := make([]zap.Field, 0, len(entry.Meta)+2)
	fields = append(fields, zap.String("message", entry.Message))
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	for k, v := range entry.Meta {
		fields = append(fields, zap.Any(k, v))
	}

	l.logger.Info(entry.Action, fields...)
}
