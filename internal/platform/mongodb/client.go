// Package mongodb owns the lifecycle of the MongoDB connection: config
// validation, connect and ping, driver log routing, and disconnect.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-logr/zapr"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const defaultConnectTimeout = 5 * time.Second

var (
	// ErrEmptyURI is returned when the MongoDB URI is empty.
	ErrEmptyURI = errors.New("mongo uri cannot be empty")
	// ErrEmptyDatabase is returned when the database name is empty.
	ErrEmptyDatabase = errors.New("database name cannot be empty")
	// ErrConnect wraps connection establishment failures.
	ErrConnect = errors.New("mongo connect failed")
	// ErrPing wraps connectivity probe failures.
	ErrPing = errors.New("mongo ping failed")
	// ErrDisconnect wraps disconnection failures.
	ErrDisconnect = errors.New("mongo disconnect failed")
)

// Config defines how to reach the database.
type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	// DriverLog routes the driver's command log into Logger.
	DriverLog bool
	Logger    *zap.Logger
}

func (cfg Config) validate() error {
	if strings.TrimSpace(cfg.URI) == "" {
		return ErrEmptyURI
	}
	if strings.TrimSpace(cfg.Database) == "" {
		return ErrEmptyDatabase
	}
	return nil
}

// Option customizes internal client dependencies (primarily for tests).
type Option func(*clientDeps)

type clientDeps struct {
	connect    func(context.Context, *options.ClientOptions) (*mongo.Client, error)
	ping       func(context.Context, *mongo.Client) error
	disconnect func(context.Context, *mongo.Client) error
}

func defaultDeps() clientDeps {
	return clientDeps{
		connect: func(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error) {
			return mongo.Connect(ctx, opts)
		},
		ping: func(ctx context.Context, client *mongo.Client) error {
			return client.Ping(ctx, nil)
		},
		disconnect: func(ctx context.Context, client *mongo.Client) error {
			return client.Disconnect(ctx)
		},
	}
}

// Client is a connected MongoDB client bound to one database.
type Client struct {
	client   *mongo.Client
	database string
	logger   *zap.Logger
	deps     clientDeps
}

// Connect validates cfg, connects, and pings the server. On ping failure the
// half-open client is disconnected before returning.
func Connect(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	deps := defaultDeps()
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := deps.connect(connectCtx, clientOptions(cfg, timeout, logger))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnect, err)
	}

	if err := deps.ping(connectCtx, client); err != nil {
		if derr := deps.disconnect(context.Background(), client); derr != nil {
			logger.Warn("failed to disconnect after ping failure", zap.Error(derr))
		}
		return nil, fmt.Errorf("%w (%s): %w", ErrPing, RedactURI(cfg.URI), err)
	}

	logger.Info("mongodb connection OK",
		zap.String("uri", RedactURI(cfg.URI)),
		zap.String("database", cfg.Database),
	)

	return &Client{client: client, database: cfg.Database, logger: logger, deps: deps}, nil
}

func clientOptions(cfg Config, timeout time.Duration, logger *zap.Logger) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(timeout)

	if cfg.DriverLog {
		sink := zapr.NewLogger(logger.Named("driver")).GetSink()
		opts.SetLoggerOptions(options.Logger().
			SetSink(sink).
			SetMaxDocumentLength(256).
			SetComponentLevel(options.LogComponentCommand, options.LogLevelDebug))
	}

	return opts
}

// WithClient connects, runs fn, and always disconnects, whether fn
// succeeded or not. The disconnect uses its own context bounded by
// closeTimeout so it still runs after ctx was cancelled.
func WithClient(ctx context.Context, cfg Config, closeTimeout time.Duration, fn func(context.Context, *Client) error, opts ...Option) (err error) {
	client, err := Connect(ctx, cfg, opts...)
	if err != nil {
		return err
	}

	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if cerr := client.Close(closeCtx); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	return fn(ctx, client)
}

// Database returns the configured database handle.
func (c *Client) Database() *mongo.Database {
	return c.client.Database(c.database)
}

// Collection returns a collection of the configured database.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.Database().Collection(name)
}

// Close disconnects the client. It is safe to call on a nil or already
// closed client.
func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}

	client := c.client
	c.client = nil

	if err := c.deps.disconnect(ctx, client); err != nil {
		return fmt.Errorf("%w: %w", ErrDisconnect, err)
	}

	c.logger.Info("mongodb connection closed")
	return nil
}

// RedactURI hides the credentials of a connection string.
func RedactURI(uri string) string {
	const marker = "://"
	start := strings.Index(uri, marker)
	if start < 0 {
		return uri
	}
	start += len(marker)
	authority := uri[start:]
	if i := strings.IndexAny(authority, "/?"); i >= 0 {
		authority = authority[:i]
	}
	end := strings.LastIndex(authority, "@")
	if end < 0 {
		return uri
	}
	return uri[:start] + "***" + uri[start+end:]
}
