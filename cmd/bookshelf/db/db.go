package db

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/tjper/bookshelf/internal/migrate"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// booksCollection is the collection holding every model.Book.
const booksCollection = "books"

//go:embed migrations/*.json
var migrations embed.FS

// Open connects to the MongoDB deployment at uri and ensures the primary is
// reachable.
func Open(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

// codeNamespaceExists is the MongoDB error code returned when creating a
// collection that already exists.
const codeNamespaceExists = 48

// Migrate migrates the database as the embedded migrations specify. The books
// collection is created beforehand if absent, so databases already holding
// books are migrated in place.
func Migrate(ctx context.Context, client *mongo.Client, database string) error {
	if err := ensureCollection(ctx, client.Database(database), booksCollection); err != nil {
		return fmt.Errorf("ensure %s collection; error: %w", booksCollection, err)
	}

	return migrate.Migrate(
		client,
		database,
		migrations,
		"migrations",
		migrate.WithMigrationsCollection("bookshelf_migrations"),
	)
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string) error {
	err := db.CreateCollection(ctx, name)
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == codeNamespaceExists {
		return nil
	}
	return err
}

// Ping checks the primary of the MongoDB deployment is reachable. This is
// typically used as a health check.
func Ping(client *mongo.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	}
}
