package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/tjper/bookshelf/cmd/bookshelf/config"
	"github.com/tjper/bookshelf/cmd/bookshelf/controller"
	"github.com/tjper/bookshelf/cmd/bookshelf/db"
	"github.com/tjper/bookshelf/cmd/bookshelf/graph"
	"github.com/tjper/bookshelf/cmd/bookshelf/logger"
	ictx "github.com/tjper/bookshelf/internal/context"
	"github.com/tjper/bookshelf/internal/healthz"
	ihttp "github.com/tjper/bookshelf/internal/http"
	"github.com/tjper/bookshelf/internal/stream"
	"github.com/tjper/bookshelf/internal/validator"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	redisv8 "github.com/go-redis/redis/v8"
	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

func main() {
	os.Exit(run())
}

const (
	ecExit = iota
	ecServe
	ecDatabaseConnection
	ecMigration
	ecRedisConnection
	ecStreamInit
)

// streamGroup is the consumer group created alongside the book event stream.
const streamGroup = "bookshelf"

func run() int {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[Startup] Failed to load .env file; error: %s", err)
	}

	zlogger, err := logger.New(config.LogProduction())
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlogger.Sync() }()

	zlogger.Info("[Startup] Connecting to DB ...")
	client, err := db.Open(ctx, config.MongoURI())
	if err != nil {
		zlogger.Error(
			"[Startup] Failed to initialize database connection.",
			zap.Error(err),
		)
		return ecDatabaseConnection
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			zlogger.Error("[Shutdown] Failed to disconnect from DB.", zap.Error(err))
		}
	}()
	zlogger.Info("[Startup] Connected to DB.")

	zlogger.Info("[Startup] Migrating DB ...")
	if err := db.Migrate(ctx, client, config.MongoDB()); err != nil {
		zlogger.Error(
			"[Startup] Failed to migrate database.",
			zap.Error(err),
		)
		return ecMigration
	}
	zlogger.Info("[Startup] Migrated DB.")

	var ctrlOptions []controller.Option
	if config.EventsEnabled() {
		zlogger.Info("[Startup] Connecting to Redis ...")
		rdb := redisv8.NewClient(&redisv8.Options{
			Addr:     config.RedisAddr(),
			Password: config.RedisPassword(),
		})
		defer func() { _ = rdb.Close() }()

		if err := rdb.Ping(ctx).Err(); err != nil {
			zlogger.Error(
				"[Startup] Failed to initialize Redis client.",
				zap.Error(err),
			)
			return ecRedisConnection
		}
		zlogger.Info("[Startup] Connected to Redis.")

		zlogger.Info("[Startup] Initializing book event stream ...")
		streamClient, err := stream.Init(ctx, zlogger, rdb, streamGroup)
		if err != nil {
			zlogger.Error(
				"[Startup] Failed to initialize book event stream.",
				zap.Error(err),
			)
			return ecStreamInit
		}
		ctrlOptions = append(ctrlOptions, controller.WithStream(streamClient))
		zlogger.Info("[Startup] Initialized book event stream.")
	}

	zlogger.Info("[Startup] Creating controller ...")
	store := db.NewStore(zlogger, client.Database(config.MongoDB()))
	ctrl := controller.New(zlogger, store, validator.New(), ctrlOptions...)
	zlogger.Info("[Startup] Created controller.")

	zlogger.Info("[Startup] Creating GraphQL API ...")
	schema := graph.NewSchema(
		graph.NewResolver(ctrl),
		graphqlgo.Tracer(logger.NewTracer(zlogger)),
	)
	api := &relay.Handler{Schema: schema}
	zlogger.Info("[Startup] Created GraphQL API.")

	health := healthz.NewHTTP(db.Ping(client))

	router := chi.NewRouter()
	router.Use(
		logger.Middleware(),
		middleware.RequestLogger(ihttp.NewZapLogFormatter(zlogger, logger.ContextFields)),
		middleware.Recoverer,
	)
	router.Get("/healthz", health.ServeHTTP)
	router.Group(func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: config.CorsAllowedOrigins(),
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
		}))
		if config.PlaygroundEnabled() {
			r.Get("/", playground.Handler("bookshelf", "/query"))
		}
		r.Post("/", api.ServeHTTP)
		r.Post("/query", api.ServeHTTP)
	})

	srv := http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", config.Port()),
		ReadTimeout:  config.HttpReadTimeout(),
		WriteTimeout: config.HttpWriteTimeout(),
	}

	// Waitgroup to ensure all supporting goroutines close properly on
	// application close.
	var wg sync.WaitGroup
	defer wg.Wait()

	// Root context is cancelled if SIGTERM or SIGINT is received.
	ctx, cancel := ictx.WithSignal(
		ctx,
		func(sig os.Signal) {
			zlogger.Info("[Shutdown] Received signal.", zap.Stringer("signal", sig))
		},
		unix.SIGTERM,
		unix.SIGINT,
	)
	defer cancel()

	// When the root context closes, report sick and gracefully shutdown the
	// HTTP server.
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		health.Sick()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			zlogger.Error("[Shutdown] Failed to correctly shutdown bookshelf API.", zap.Error(err))
		}
	}()

	health.Healthy()
	zlogger.Sugar().Infof("[Startup] Server ready at http://localhost:%d/", config.Port())
	err = srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return ecExit
	}
	if err != nil {
		zlogger.Error("[Startup] Failed to listen and serve bookshelf API.", zap.Error(err))
		cancel()
		return ecServe
	}
	return ecExit
}
