// Package integration provides helpers for tests run against a live MongoDB
// deployment.
package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/99designs/gqlgen/client"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultMongoURI = "mongodb://mongo:27017"

// InitSuite connects to MongoDB and creates a database dedicated to the
// calling test. The database is dropped when the test completes.
func InitSuite(
	ctx context.Context,
	t *testing.T,
	options ...Option,
) *Suite {
	t.Helper()

	s := &Suite{mongoURI: defaultMongoURI}
	for _, option := range options {
		option(s)
	}

	s.Mongo = connectMongo(ctx, t, s.mongoURI)
	s.Database = s.Mongo.Database(databaseName())

	t.Cleanup(func() {
		ctx := context.Background()
		_ = s.Database.Drop(ctx)
		_ = s.Mongo.Disconnect(ctx)
	})

	return s
}

// Option configures a Suite. This is typically used with InitSuite.
type Option func(*Suite)

// WithMongoURI configures the MongoDB deployment the Suite connects to.
func WithMongoURI(uri string) Option {
	return func(s *Suite) { s.mongoURI = uri }
}

type Suite struct {
	Mongo    *mongo.Client
	Database *mongo.Database

	mongoURI string
}

// GraphQLResponse is the body of a GraphQL over HTTP response.
type GraphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message    string                 `json:"message"`
		Path       []interface{}          `json:"path"`
		Extensions map[string]interface{} `json:"extensions"`
	} `json:"errors"`
}

// GraphQL posts query and variables to handler and decodes the response.
// GraphQL errors are returned in the response rather than failing t.
func (s Suite) GraphQL(
	ctx context.Context,
	t *testing.T,
	handler http.Handler,
	query string,
	variables map[string]interface{},
) *GraphQLResponse {
	t.Helper()

	opts := []client.Option{withContext(ctx)}
	for name, value := range variables {
		opts = append(opts, client.Var(name, value))
	}

	resp, err := client.New(handler, client.Path("/query")).RawPost(query, opts...)
	require.Nil(t, err)

	data, err := json.Marshal(resp.Data)
	require.Nil(t, err)

	body := &GraphQLResponse{Data: data}
	if len(resp.Errors) > 0 {
		require.Nil(t, json.Unmarshal(resp.Errors, &body.Errors))
	}
	return body
}

func withContext(ctx context.Context) client.Option {
	return func(r *client.Request) {
		r.HTTP = r.HTTP.WithContext(ctx)
	}
}

func connectMongo(ctx context.Context, t *testing.T, uri string) *mongo.Client {
	t.Helper()

	mc, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.Nil(t, err)
	require.Nil(t, mc.Ping(ctx, nil))
	return mc
}

// databaseName derives a unique MongoDB database name. Database names are
// limited to 64 bytes and may not contain "/\. \"$".
func databaseName() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("test_%s", id)
}
