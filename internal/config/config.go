// Package config loads the txexport runtime configuration from the environment.
//
// Variables are read with the TXEXPORT_ prefix (for example TXEXPORT_STORE_KIND).
// A .env file in the working directory is loaded first when present; variables
// already set in the environment take precedence over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/gabapcia/txexport/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix shared by every setting.
const Prefix = "TXEXPORT"

// Store kinds.
const (
	StoreRedis  = "redis"
	StoreMySQL  = "mysql"
	StoreSQLite = "sqlite"
)

// Decoder kinds.
const (
	DecoderREST    = "rest"
	DecoderJSONRPC = "jsonrpc"
)

// Output modes and sinks.
const (
	ModeCombined   = "combined"
	ModePerAddress = "per-address"

	SinkFile  = "file"
	SinkKafka = "kafka"
)

// StoreConfig selects and locates the record source.
type StoreConfig struct {
	Kind     string `split_words:"true" default:"redis" validate:"oneof=redis mysql sqlite"`
	Addr     string `split_words:"true" default:"localhost:6379" validate:"required_if=Kind redis"`
	Username string `split_words:"true"`
	Password string `split_words:"true"`
	DB       int    `split_words:"true" default:"0" validate:"gte=0"`
	DSN      string `split_words:"true" validate:"required_unless=Kind redis"`
}

// DecoderConfig locates the decoding provider.
type DecoderConfig struct {
	Kind           string        `split_words:"true" default:"rest" validate:"oneof=rest jsonrpc"`
	BaseURL        string        `split_words:"true" default:"http://localhost:3000/ronin" validate:"required,url"`
	Namespace      string        `split_words:"true" default:"ronin" validate:"required_if=Kind jsonrpc"`
	Timeout        time.Duration `split_words:"true" default:"10s" validate:"gt=0"`
	RequestTimeout time.Duration `split_words:"true" default:"5s" validate:"gt=0"`
	RetryMax       int           `split_words:"true" default:"2" validate:"gte=0"`
}

// OutputConfig selects where results are persisted.
type OutputConfig struct {
	Mode         string   `split_words:"true" default:"combined" validate:"oneof=combined per-address"`
	Sink         string   `split_words:"true" default:"file" validate:"oneof=file kafka"`
	Path         string   `split_words:"true" default:"output.json" validate:"required_if=Mode combined"`
	Dir          string   `split_words:"true" default:"output" validate:"required_if=Mode per-address"`
	KafkaBrokers []string `split_words:"true" validate:"required_if=Sink kafka"`
	KafkaTopic   string   `split_words:"true" default:"txexport.results" validate:"required_if=Sink kafka"`
}

// PipelineConfig tunes the export driver.
type PipelineConfig struct {
	Limit              int           `split_words:"true" default:"5000" validate:"gt=0"`
	EnrichConcurrency  int           `split_words:"true" default:"8" validate:"gt=0"`
	AddressConcurrency int           `split_words:"true" default:"2" validate:"gt=0"`
	StoreTimeout       time.Duration `split_words:"true" default:"30s" validate:"gt=0"`
	PersistTimeout     time.Duration `split_words:"true" default:"30s" validate:"gt=0"`
	FailurePolicy      string        `split_words:"true" default:"isolate" validate:"oneof=isolate abort-address"`
}

// Config is the complete runtime configuration.
type Config struct {
	LogLevel         string        `split_words:"true" default:"info" validate:"oneof=debug info warn error"`
	TelemetryEnabled bool          `split_words:"true" default:"false"`
	Progress         bool          `split_words:"true" default:"false"`
	RunTimeout       time.Duration `split_words:"true" default:"0s" validate:"gte=0"`
	InputPath        string        `split_words:"true" default:"addresses.txt" validate:"required"`

	Store    StoreConfig
	Decoder  DecoderConfig
	Output   OutputConfig
	Pipeline PipelineConfig
}

// Validate checks the configuration against its validation tags.
func (c Config) Validate() error {
	return validator.Validate(c)
}

// Load reads .env (if any) and the process environment into a Config and
// validates it.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
