package graph

import (
	graphmodel "github.com/tjper/bookshelf/cmd/bookshelf/graph/model"
	"github.com/tjper/bookshelf/cmd/bookshelf/model"

	"github.com/graph-gophers/graphql-go"
)

// bookResolver resolves the fields of the Book type from the public Book
// projection.
type bookResolver struct {
	book graphmodel.Book
}

func (r *bookResolver) ID() graphql.ID {
	return graphql.ID(r.book.ID)
}

func (r *bookResolver) Title() string {
	return r.book.Title
}

func (r *bookResolver) Author() string {
	return r.book.Author
}

func (r *bookResolver) Description() *string {
	return r.book.Description
}

// --- helpers ---

func toModelBook(book model.Book) graphmodel.Book {
	return graphmodel.Book{
		ID:          book.ID.Hex(),
		Title:       book.Title,
		Author:      book.Author,
		Description: book.Description,
	}
}

func toBookResolver(book model.Book) *bookResolver {
	return &bookResolver{book: toModelBook(book)}
}

func toBookResolvers(books []model.Book) []*bookResolver {
	resolvers := make([]*bookResolver, 0, len(books))
	for _, book := range books {
		resolvers = append(resolvers, toBookResolver(book))
	}
	return resolvers
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
