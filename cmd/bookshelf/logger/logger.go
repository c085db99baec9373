package logger

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// New creates the service's zap.Logger. Development loggers are human
// readable; production loggers emit JSON.
func New(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// key is a key used to store and retrieve a logger from the context.
// SA1029: should not use built-in type string as key for value; define your
// own type to avoid collisions.
type key string

var requestIDCtxKey key = "request_id_context_key"

// withRequestID creates a new context with a requestID value.
func withRequestID(ctx context.Context, requestID uuid.UUID) context.Context {
	return context.WithValue(ctx, requestIDCtxKey, requestID)
}

// requestIDFromCtx retrieves the requestID from the context if it exists.
func requestIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	val, ok := ctx.Value(requestIDCtxKey).(uuid.UUID)
	return val, ok
}

// ContextFields checks the context for a set of fields and returns them for
// use in a zap.Logger if they are available.
func ContextFields(ctx context.Context) []zap.Field {
	fields := make([]zap.Field, 0)
	if requestID, ok := requestIDFromCtx(ctx); ok {
		fields = append(fields, zap.String("request_id", requestID.String()))
	}
	return fields
}

// Middleware extends the incoming request's context with request scoped
// information critical to logging.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := withRequestID(r.Context(), uuid.New())
			r = r.WithContext(ctx)
			next.ServeHTTP(w, r)
		})
	}
}
