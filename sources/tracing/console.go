package tracing

import (
	"context"
	"declension/sources/platform"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	ExecutionTime = "exe_time"
	OutsiderKind  = "outsider_kind"
	InnerError    = "inner_error"
	Number        = "number"
	Forms         = "forms"
	Form          = "form"
	Category      = "category"
	Lemma         = "lemma"
	CreatedAt     = "created_at"
	RequestId     = "request_id"
	RemoteAddr    = "remote_addr"
	HttpStatus    = "http_status"
	ThrottleKey   = "throttle_key"
)

type Logger struct {
	log *slog.Logger
	ctx context.Context
}

func NewConsoleLogger() *Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(platform.Get("LOG_LEVEL", "debug")),
	}))

	ctx := context.Background()
	logger.DebugContext(ctx, "Initializing logger")
	return &Logger{log: logger, ctx: ctx}
}

// NewDiscardLogger drops everything, used by tests and one-shot CLI commands.
func NewDiscardLogger() *Logger {
	return &Logger{log: slog.New(slog.NewJSONHandler(io.Discard, nil)), ctx: context.Background()}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{log: l.log.With(args...), ctx: l.ctx}
}

func (l *Logger) D(msg string, args ...any) {
	l.log.DebugContext(l.ctx, msg, args...)
}

func (l *Logger) I(msg string, args ...any) {
	l.log.InfoContext(l.ctx, msg, args...)
}

func (l *Logger) W(msg string, args ...any) {
	l.log.WarnContext(l.ctx, msg, args...)
}

func (l *Logger) E(msg string, args ...any) {
	l.log.ErrorContext(l.ctx, msg, args...)
}

func (l *Logger) F(msg string, args ...any) {
	l.log.ErrorContext(l.ctx, msg, args...)
	panic(msg)
}
