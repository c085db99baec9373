package migrate

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mongodb"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.mongodb.org/mongo-driver/mongo"
)

// Migrate migrates the MongoDB database with the JSON command migrations
// found at path within migrations.
//
// The migrate.Migrate instance is intentionally not closed; closing the
// mongodb driver disconnects the passed client.
func Migrate(
	client *mongo.Client,
	database string,
	migrations fs.FS,
	path string,
	options ...Option,
) error {
	cfg := &mongodb.Config{
		DatabaseName:         database,
		MigrationsCollection: "migrations",
	}
	for _, option := range options {
		option(cfg)
	}

	driver, err := mongodb.WithInstance(client, cfg)
	if err != nil {
		return fmt.Errorf("migrate driver; error: %w", err)
	}

	source, err := iofs.New(migrations, path)
	if err != nil {
		return fmt.Errorf("migrate source; error: %w", err)
	}

	migration, err := migrate.NewWithInstance("iofs", source, "mongodb", driver)
	if err != nil {
		return fmt.Errorf("migrate instance; error: %w", err)
	}

	if err := migration.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

type Option func(*mongodb.Config)

func WithMigrationsCollection(name string) Option {
	return func(c *mongodb.Config) {
		c.MigrationsCollection = name
	}
}
