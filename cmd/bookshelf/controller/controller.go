package controller

import (
	"context"
	"errors"

	bookerrors "github.com/tjper/bookshelf/cmd/bookshelf/errors"
	"github.com/tjper/bookshelf/cmd/bookshelf/model"
	"github.com/tjper/bookshelf/internal/event"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type IStore interface {
	CreateBook(context.Context, *model.Book) error
	Books(context.Context) ([]model.Book, error)
	BookByTitle(context.Context, string) (*model.Book, error)
	BooksByAuthor(context.Context, string) ([]model.Book, error)
}

// IStream is the persistent stream book events are written to.
type IStream interface {
	Write(context.Context, []byte) error
}

func New(
	logger *zap.Logger,
	store IStore,
	valid *validator.Validate,
	options ...Option,
) *Controller {
	ctrl := &Controller{
		logger: logger,
		store:  store,
		valid:  valid,
	}
	for _, option := range options {
		option(ctrl)
	}
	return ctrl
}

// Option is a function that configures a Controller instance. This is
// typically used with New.
type Option func(*Controller)

// WithStream configures the Controller to write book events to stream.
func WithStream(stream IStream) Option {
	return func(ctrl *Controller) { ctrl.stream = stream }
}

// Controller is responsible for interactions with book resources. All
// interactions with the book resources occur through the Controller.
type Controller struct {
	logger *zap.Logger
	store  IStore
	valid  *validator.Validate

	// stream is nil when book events are disabled.
	stream IStream
}

// CreateBookInput is the input for the Controller.CreateBook method.
type CreateBookInput struct {
	Title       string  `json:"title" validate:"required"`
	Author      string  `json:"author" validate:"required"`
	Description *string `json:"description"`
}

// CreateBook validates input and persists it as a new model.Book. If input is
// invalid, a bookerrors.ValidationError is returned and nothing is persisted.
func (ctrl Controller) CreateBook(
	ctx context.Context,
	input CreateBookInput,
) (*model.Book, error) {
	if err := ctrl.validate(input); err != nil {
		return nil, err
	}

	book := &model.Book{
		Title:       input.Title,
		Author:      input.Author,
		Description: input.Description,
	}
	if err := ctrl.store.CreateBook(ctx, book); err != nil {
		return nil, err
	}

	ctrl.logger.Info(
		"book created",
		zap.String("id", book.ID.Hex()),
		zap.String("title", book.Title),
		zap.String("author", book.Author),
	)

	ctrl.notifyCreated(ctx, *book)
	return book, nil
}

// Books retrieves every book.
func (ctrl Controller) Books(ctx context.Context) ([]model.Book, error) {
	return ctrl.store.Books(ctx)
}

// BookByTitle retrieves the book with the specified title. If no book has
// the title, bookerrors.ErrBookDNE is returned.
func (ctrl Controller) BookByTitle(ctx context.Context, title string) (*model.Book, error) {
	return ctrl.store.BookByTitle(ctx, title)
}

// BooksByAuthor retrieves every book written by author.
func (ctrl Controller) BooksByAuthor(ctx context.Context, author string) ([]model.Book, error) {
	return ctrl.store.BooksByAuthor(ctx, author)
}

func (ctrl Controller) validate(input CreateBookInput) error {
	err := ctrl.valid.Struct(input)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}

	fieldErrs := make(bookerrors.ValidationError, 0, len(valErrs))
	for _, valErr := range valErrs {
		fieldErrs = append(fieldErrs, bookerrors.FieldError{
			Field: valErr.Field(),
			Tag:   valErr.Tag(),
		})
	}
	return fieldErrs
}

// notifyCreated writes a BookCreatedEvent to the Controller's stream. The book
// has already been persisted, so failures are logged rather than returned.
func (ctrl Controller) notifyCreated(ctx context.Context, book model.Book) {
	if ctrl.stream == nil {
		return
	}

	b, err := event.Marshal(event.NewBookCreatedEvent(event.Book{
		ID:          book.ID.Hex(),
		Title:       book.Title,
		Author:      book.Author,
		Description: book.Description,
	}))
	if err != nil {
		ctrl.logger.Error("error marshalling book created event", zap.Error(err))
		return
	}

	if err := ctrl.stream.Write(ctx, b); err != nil {
		ctrl.logger.Error(
			"error writing book created event",
			zap.String("id", book.ID.Hex()),
			zap.Error(err),
		)
	}
}
