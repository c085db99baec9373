package db

import (
	"context"
	"errors"

	"github.com/tjper/bookshelf/cmd/bookshelf/model"
)

var errUnconfigured = errors.New("unconfigured mock call")

// NewStoreMock creates a new StoreMock instance.
func NewStoreMock(options ...StoreMockOption) *StoreMock {
	mock := &StoreMock{}

	for _, option := range options {
		option(mock)
	}

	return mock
}

// StoreMockOption is a function type that may configure a StoreMock instance.
type StoreMockOption func(*StoreMock)

// WithCreateBook configures a StoreMock instance to execute the passed
// function when CreateBook is called.
func WithCreateBook(fn createBookFunc) StoreMockOption {
	return func(mock *StoreMock) { mock.createBook = fn }
}

// WithBooks configures a StoreMock instance to execute the passed function
// when Books is called.
func WithBooks(fn booksFunc) StoreMockOption {
	return func(mock *StoreMock) { mock.books = fn }
}

// WithBookByTitle configures a StoreMock instance to execute the passed
// function when BookByTitle is called.
func WithBookByTitle(fn bookByTitleFunc) StoreMockOption {
	return func(mock *StoreMock) { mock.bookByTitle = fn }
}

// WithBooksByAuthor configures a StoreMock instance to execute the passed
// function when BooksByAuthor is called.
func WithBooksByAuthor(fn booksByAuthorFunc) StoreMockOption {
	return func(mock *StoreMock) { mock.booksByAuthor = fn }
}

type (
	createBookFunc    func(context.Context, *model.Book) error
	booksFunc         func(context.Context) ([]model.Book, error)
	bookByTitleFunc   func(context.Context, string) (*model.Book, error)
	booksByAuthorFunc func(context.Context, string) ([]model.Book, error)
)

// StoreMock is responsible for mocking book store interactions. This type is
// typically used during unit-testing.
type StoreMock struct {
	createBook    createBookFunc
	books         booksFunc
	bookByTitle   bookByTitleFunc
	booksByAuthor booksByAuthorFunc
}

// CreateBook calls the function configured via WithCreateBook.
func (s StoreMock) CreateBook(ctx context.Context, book *model.Book) error {
	if s.createBook == nil {
		return errUnconfigured
	}
	return s.createBook(ctx, book)
}

// Books calls the function configured via WithBooks.
func (s StoreMock) Books(ctx context.Context) ([]model.Book, error) {
	if s.books == nil {
		return nil, errUnconfigured
	}
	return s.books(ctx)
}

// BookByTitle calls the function configured via WithBookByTitle.
func (s StoreMock) BookByTitle(ctx context.Context, title string) (*model.Book, error) {
	if s.bookByTitle == nil {
		return nil, errUnconfigured
	}
	return s.bookByTitle(ctx, title)
}

// BooksByAuthor calls the function configured via WithBooksByAuthor.
func (s StoreMock) BooksByAuthor(ctx context.Context, author string) ([]model.Book, error) {
	if s.booksByAuthor == nil {
		return nil, errUnconfigured
	}
	return s.booksByAuthor(ctx, author)
}
