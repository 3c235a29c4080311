// Package config loads the nyaya configuration: YAML file, then environment
// overrides, then validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/spektr-org/nyaya/lookup"
)

// Environment variables that override the file.
const (
	EnvAddr     = "NYAYA_ADDR"
	EnvDataDir  = "NYAYA_DATA_DIR"
	EnvLogLevel = "NYAYA_LOG_LEVEL"
	EnvLogJSON  = "NYAYA_LOG_JSON"
	EnvTracing  = "NYAYA_TRACING"
)

// ErrInvalidConfig wraps every load and validation failure.
var ErrInvalidConfig = errors.New("invalid config")

var validate = validator.New()

// Config is the complete service configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Data    DataConfig    `yaml:"data"`
	Logging LoggingConfig `yaml:"logging"`
	Tracing TracingConfig `yaml:"tracing"`
}

// ServerConfig controls the HTTP listener and middleware.
type ServerConfig struct {
	Addr         string          `yaml:"addr" validate:"required,hostname_port"`
	CORSOrigins  []string        `yaml:"cors_origins" validate:"dive,required"`
	RateLimit    RateLimitConfig `yaml:"rate_limit"`
	ReadTimeout  time.Duration   `yaml:"read_timeout" validate:"gte=0"`
	WriteTimeout time.Duration   `yaml:"write_timeout" validate:"gte=0"`
}

// RateLimitConfig is a token bucket shared by all clients. RPS 0 disables it.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps" validate:"gte=0"`
	Burst int     `yaml:"burst" validate:"gte=0"`
}

// DataConfig locates the input files.
type DataConfig struct {
	Dir        string       `yaml:"dir" validate:"required"`
	IPCCrime   string       `yaml:"ipc_crime" validate:"required"`
	WomenCrime string       `yaml:"women_crime" validate:"required"`
	Resources  lookup.Files `yaml:",inline"`
}

// LoggingConfig selects level and format.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `yaml:"json"`
}

// TracingConfig toggles OpenTelemetry tracing.
type TracingConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name" validate:"required_if=Enabled true"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":5000",
			CORSOrigins:  []string{"*"},
			RateLimit:    RateLimitConfig{RPS: 0, Burst: 20},
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Data: DataConfig{
			Dir:        "data",
			IPCCrime:   "ipc_crime.csv",
			WomenCrime: "women_crime.csv",
			Resources:  lookup.DefaultFiles(),
		},
		Logging: LoggingConfig{Level: "info"},
		Tracing: TracingConfig{ServiceName: "nyaya"},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: failed to read the config file: %v", ErrInvalidConfig, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidConfig, path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAddr); ok {
		c.Server.Addr = v
	}
	if v, ok := lookup(EnvDataDir); ok {
		c.Data.Dir = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogJSON); ok {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvLogJSON, err)
		}
		c.Logging.JSON = b
	}
	if v, ok := lookup(EnvTracing); ok {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvTracing, err)
		}
		c.Tracing.Enabled = b
	}
	return nil
}

// Validate checks the struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
