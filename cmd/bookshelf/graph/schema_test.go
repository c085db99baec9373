package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

func TestSchemaNullability(t *testing.T) {
	schema := gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphql", Input: Schema})

	tests := map[string]struct {
		typ   string
		field string
		exp   string
	}{
		"Book.id":             {typ: "Book", field: "id", exp: "ID!"},
		"Book.title":          {typ: "Book", field: "title", exp: "String!"},
		"Book.author":         {typ: "Book", field: "author", exp: "String!"},
		"Book.description":    {typ: "Book", field: "description", exp: "String"},
		"Query.books":         {typ: "Query", field: "books", exp: "[Book!]!"},
		"Query.bookByTitle":   {typ: "Query", field: "bookByTitle", exp: "Book"},
		"Query.booksByAuthor": {typ: "Query", field: "booksByAuthor", exp: "[Book!]!"},
		"Mutation.addBook":    {typ: "Mutation", field: "addBook", exp: "Book"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			def := schema.Types[test.typ]
			require.NotNil(t, def)

			field := def.Fields.ForName(test.field)
			require.NotNil(t, field)
			assert.Equal(t, test.exp, field.Type.String())
		})
	}
}

func TestSchemaArguments(t *testing.T) {
	schema := gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphql", Input: Schema})

	tests := map[string]struct {
		typ   string
		field string
		args  map[string]string
	}{
		"bookByTitle": {
			typ:   "Query",
			field: "bookByTitle",
			args:  map[string]string{"title": "String!"},
		},
		"booksByAuthor": {
			typ:   "Query",
			field: "booksByAuthor",
			args:  map[string]string{"author": "String!"},
		},
		"addBook": {
			typ:   "Mutation",
			field: "addBook",
			args: map[string]string{
				"title":       "String",
				"author":      "String",
				"description": "String",
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			field := schema.Types[test.typ].Fields.ForName(test.field)
			require.NotNil(t, field)
			require.Len(t, field.Arguments, len(test.args))

			for argName, exp := range test.args {
				arg := field.Arguments.ForName(argName)
				require.NotNil(t, arg, argName)
				assert.Equal(t, exp, arg.Type.String())
			}
		})
	}
}

func TestNewSchema(t *testing.T) {
	assert.NotPanics(t, func() {
		NewSchema(NewResolver(nil))
	})
}
