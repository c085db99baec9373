package logger

import (
	"context"
	goerrors "errors"
	"testing"

	gerrors "github.com/tjper/bookshelf/internal/graph/errors"

	"github.com/google/uuid"
	"github.com/graph-gophers/graphql-go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func resolverError(err error) *errors.QueryError {
	qErr := errors.Errorf("%s", err)
	qErr.ResolverError = err
	if ext, ok := err.(interface{ Extensions() map[string]interface{} }); ok {
		qErr.Extensions = ext.Extensions()
	}
	return qErr
}

func TestTraceQuery(t *testing.T) {
	tests := map[string]struct {
		errs  []*errors.QueryError
		level zapcore.Level
	}{
		"resolver failure": {
			errs:  []*errors.QueryError{resolverError(goerrors.New("connection refused"))},
			level: zapcore.ErrorLevel,
		},
		"bad user input": {
			errs: []*errors.QueryError{
				resolverError(gerrors.NewBadUserInput(goerrors.New("input invalid"), nil)),
			},
			level: zapcore.WarnLevel,
		},
		"query error": {
			errs:  []*errors.QueryError{errors.Errorf("unknown field")},
			level: zapcore.WarnLevel,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			tracer := NewTracer(zap.New(core))

			ctx := withRequestID(context.Background(), uuid.New())
			_, finish := tracer.TraceQuery(ctx, "", "books", nil, nil)
			finish(test.errs)

			opErrs := logs.FilterMessage("operation error").All()
			require.Len(t, opErrs, 1)
			assert.Equal(t, test.level, opErrs[0].Level)
			assert.Equal(t, "books", opErrs[0].ContextMap()["operation"])
			assert.NotEmpty(t, opErrs[0].ContextMap()["request_id"])

			require.Equal(t, 1, logs.FilterMessage("operation complete").Len())
		})
	}
}
