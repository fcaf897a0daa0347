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
	"bookstore/internal/report"
	"bookstore/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const closeTimeout = 5 * time.Second

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, logger)
	stop()

	if err != nil {
		logger.Error("error running queries", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	mcfg := mongodb.Config{
		URI:            cfg.MongoURI,
		Database:       cfg.Database,
		ConnectTimeout: cfg.ConnectTimeout,
		DriverLog:      cfg.DriverLog,
		Logger:         logger,
	}

	return mongodb.WithClient(ctx, mcfg, closeTimeout, func(ctx context.Context, client *mongodb.Client) error {
		repo := store.NewBookMongo(client.Collection(cfg.Collection), cfg.QueryTimeout)
		runner := report.NewRunner(book.NewService(repo), os.Stdout, logger, report.DefaultPlan())
		return runner.Run(ctx)
	})
}
