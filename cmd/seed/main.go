package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookstore/internal/book"
	"bookstore/internal/config"
	"bookstore/internal/logging"
	"bookstore/internal/platform/mongodb"
	"bookstore/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()))
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mcfg := mongodb.Config{
		URI:            cfg.MongoURI,
		Database:       cfg.Database,
		ConnectTimeout: cfg.ConnectTimeout,
		DriverLog:      cfg.DriverLog,
		Logger:         logger,
	}

	books := book.SampleCatalogue()
	logger.Info("seeding books",
		zap.String("collection", cfg.Collection),
		zap.Int("count", len(books)),
		zap.Bool("drop", cfg.SeedDrop),
	)

	err = mongodb.WithClient(ctx, mcfg, 5*time.Second, func(ctx context.Context, client *mongodb.Client) error {
		repo := store.NewBookMongo(client.Collection(cfg.Collection), cfg.QueryTimeout)
		n, err := book.NewService(repo).Seed(ctx, books, cfg.SeedDrop)
		if err != nil {
			return err
		}
		logger.Info("seeded books", zap.Int("inserted", n))
		return nil
	})
	if err != nil {
		logger.Error("seeding failed", zap.Error(err))
		_ = logger.Sync()
		stop()
		os.Exit(1)
	}
}
