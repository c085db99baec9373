package logger

import (
	"context"
	"time"

	"github.com/graph-gophers/graphql-go/errors"
	"github.com/graph-gophers/graphql-go/introspection"
	"github.com/graph-gophers/graphql-go/trace/tracer"
	"go.uber.org/zap"
)

var _ tracer.Tracer = (*Tracer)(nil)

func NewTracer(logger *zap.Logger) *Tracer {
	return &Tracer{
		logger: logger,
	}
}

// Tracer logs the completion of every GraphQL operation along with the
// errors it produced. Resolver failures are logged at error level; client
// errors such as invalid queries or arguments are logged at warn level.
type Tracer struct {
	logger *zap.Logger
}

func (t Tracer) TraceQuery(
	ctx context.Context,
	_ string,
	operationName string,
	_ map[string]interface{},
	_ map[string]*introspection.Type,
) (context.Context, tracer.QueryFinishFunc) {
	var (
		start  = time.Now()
		logger = t.logger.With(ContextFields(ctx)...)
	)
	return ctx, func(errs []*errors.QueryError) {
		for _, err := range errs {
			levelOf(logger, err)(
				"operation error",
				zap.String("operation", operationName),
				zap.Error(err),
			)
		}
		logger.Info(
			"operation complete",
			zap.String("operation", operationName),
			zap.Int("errors", len(errs)),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

func (t Tracer) TraceField(
	ctx context.Context,
	_, _, _ string,
	_ bool,
	_ map[string]interface{},
) (context.Context, tracer.FieldFinishFunc) {
	return ctx, func(*errors.QueryError) {}
}

func levelOf(logger *zap.Logger, err *errors.QueryError) func(string, ...zap.Field) {
	if err.ResolverError == nil {
		return logger.Warn
	}
	if _, ok := err.Extensions["code"]; ok {
		return logger.Warn
	}
	return logger.Error
}
