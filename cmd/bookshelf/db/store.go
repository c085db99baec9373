package db

import (
	"context"
	"errors"
	"fmt"

	bookerrors "github.com/tjper/bookshelf/cmd/bookshelf/errors"
	"github.com/tjper/bookshelf/cmd/bookshelf/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func NewStore(
	logger *zap.Logger,
	db *mongo.Database,
) *Store {
	return &Store{
		logger: logger,
		books:  db.Collection(booksCollection),
	}
}

// Store performs book operations against the books collection. Every method
// issues exactly one call to MongoDB.
type Store struct {
	logger *zap.Logger
	books  *mongo.Collection
}

// CreateBook inserts book and sets book.ID to the identifier generated for
// it.
func (s Store) CreateBook(ctx context.Context, book *model.Book) error {
	res, err := s.books.InsertOne(ctx, book)
	if err != nil {
		return err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted ID; type: %T", res.InsertedID)
	}
	book.ID = id

	s.logger.Debug("inserted book", zap.String("id", id.Hex()))
	return nil
}

// Books retrieves every book in insertion order.
func (s Store) Books(ctx context.Context) ([]model.Book, error) {
	return s.find(ctx, bson.D{})
}

// BookByTitle retrieves the first book with the specified title. If no book
// matches, errors.ErrBookDNE is returned.
func (s Store) BookByTitle(ctx context.Context, title string) (*model.Book, error) {
	book := new(model.Book)
	err := s.books.FindOne(
		ctx,
		bson.D{{Key: "title", Value: title}},
		options.FindOne().SetSort(byInsertion),
	).Decode(book)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, bookerrors.ErrBookDNE
	}
	if err != nil {
		return nil, err
	}
	return book, nil
}

// BooksByAuthor retrieves every book with the specified author in insertion
// order.
func (s Store) BooksByAuthor(ctx context.Context, author string) ([]model.Book, error) {
	return s.find(ctx, bson.D{{Key: "author", Value: author}})
}

// byInsertion orders documents by their ObjectID, and therefore by creation.
var byInsertion = bson.D{{Key: "_id", Value: 1}}

func (s Store) find(ctx context.Context, filter bson.D) ([]model.Book, error) {
	cursor, err := s.books.Find(ctx, filter, options.Find().SetSort(byInsertion))
	if err != nil {
		return nil, err
	}

	books := make([]model.Book, 0)
	if err := cursor.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}
