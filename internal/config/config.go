package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ErrInvalid is returned when a setting is missing or malformed.
var ErrInvalid = errors.New("invalid configuration")

var validate = validator.New()

// Config holds the settings shared by the query runner and the seeder.
type Config struct {
	MongoURI       string        `validate:"required,uri"`
	Database       string        `validate:"required"`
	Collection     string        `validate:"required"`
	ConnectTimeout time.Duration `validate:"gt=0"`
	QueryTimeout   time.Duration `validate:"gte=0"`
	LogLevel       string        `validate:"oneof=debug info warn error"`
	LogFormat      string        `validate:"oneof=console json"`
	DriverLog      bool
	SeedDrop       bool
}

// LoadEnvFiles reads .env then .env.local. Variables already present in the
// process environment win over the files.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load builds a Config from the environment, applying defaults.
func Load() (Config, error) {
	var errs []error

	cfg := Config{
		MongoURI:   getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		Database:   getEnv("MONGODB_DATABASE", "plp_bookstore"),
		Collection: getEnv("MONGODB_COLLECTION", "books"),
		LogLevel:   strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:  strings.ToLower(getEnv("LOG_FORMAT", "console")),
	}

	cfg.ConnectTimeout = getDuration("MONGODB_CONNECT_TIMEOUT", 5*time.Second, &errs)
	cfg.QueryTimeout = getDuration("QUERY_TIMEOUT", 0, &errs)
	cfg.DriverLog = getBool("MONGODB_DRIVER_LOG", false, &errs)
	cfg.SeedDrop = getBool("SEED_DROP", true, &errs)

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalid, describe(err))
	}

	return cfg, nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "uri":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid URI", fe.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		}
	}
	return strings.Join(msgs, "; ")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration, errs *[]error) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}

func getBool(key string, def bool, errs *[]error) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return b
}
