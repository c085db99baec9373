package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ContextFieldsFunc extracts request scoped zap fields from a request context.
type ContextFieldsFunc func(context.Context) []zap.Field

// NewZapLogFormatter creates a chi middleware.LogFormatter that writes request
// logs to logger. Fields returned by fields are added to each entry.
func NewZapLogFormatter(logger *zap.Logger, fields ContextFieldsFunc) *ZapLogFormatter {
	return &ZapLogFormatter{
		logger: logger,
		fields: fields,
	}
}

type ZapLogFormatter struct {
	logger *zap.Logger
	fields ContextFieldsFunc
}

func (f ZapLogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	logger := f.logger.With(
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	if f.fields != nil {
		logger = logger.With(f.fields(r.Context())...)
	}
	return logEntry{logger: logger}
}

type logEntry struct{ logger *zap.Logger }

func (e logEntry) Write(
	status, bytes int,
	_ http.Header,
	elapsed time.Duration,
	_ interface{},
) {
	var level func(string, ...zap.Field)
	switch {
	case status < http.StatusMultipleChoices:
		level = e.logger.Debug
	case status < http.StatusBadRequest:
		level = e.logger.Info
	case status < http.StatusInternalServerError:
		level = e.logger.Warn
	default:
		level = e.logger.Error
	}

	level(
		"[HTTP Request]",
		zap.Int("status", status),
		zap.Int("bytes", bytes),
		zap.Duration("elapsed", elapsed),
	)
}

func (e logEntry) Panic(v interface{}, stack []byte) {
	e.logger.Error(
		"[HTTP Request] panic",
		zap.Any("panic", v),
		zap.ByteString("stack", stack),
	)
}
