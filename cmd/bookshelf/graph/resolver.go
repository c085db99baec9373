package graph

import (
	"context"
	_ "embed"

	"github.com/tjper/bookshelf/cmd/bookshelf/controller"
	"github.com/tjper/bookshelf/cmd/bookshelf/model"

	"github.com/graph-gophers/graphql-go"
)

// Schema is the GraphQL schema definition served by the bookshelf API.
//
//go:embed schema.graphql
var Schema string

// IController represents the API by which the Resolver interacts with the
// Controller.
type IController interface {
	CreateBook(context.Context, controller.CreateBookInput) (*model.Book, error)
	Books(context.Context) ([]model.Book, error)
	BookByTitle(context.Context, string) (*model.Book, error)
	BooksByAuthor(context.Context, string) ([]model.Book, error)
}

// Resolver resolves graphql queries and mutations.
// Failures are returned to the execution engine unchanged and logged by the
// schema's tracer.
type Resolver struct {
	ctrl IController
}

// NewResolver creates a new Resolver object.
func NewResolver(ctrl IController) *Resolver {
	return &Resolver{ctrl: ctrl}
}

// NewSchema parses Schema and binds resolver to its root operation types.
// NewSchema panics if resolver does not satisfy Schema.
func NewSchema(resolver *Resolver, options ...graphql.SchemaOpt) *graphql.Schema {
	return graphql.MustParseSchema(Schema, resolver, options...)
}
