// Package config loads process configuration from the environment.
package config

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/monster-battle/internal/errors"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the server configuration. Every field can be set from the
// environment; cobra flags override it.
type Config struct {
	GRPCAddr string `env:"MONSTER_BATTLE_GRPC_ADDR" envDefault:":50051"`
	HTTPAddr string `env:"MONSTER_BATTLE_HTTP_ADDR" envDefault:":8080"`

	// RedisEndpoint is the save store; empty runs an embedded store that
	// does not outlive the process
	RedisEndpoint string `env:"MONSTER_BATTLE_REDIS_ENDPOINT"`
	RedisTLS      bool   `env:"MONSTER_BATTLE_REDIS_TLS"`

	LogLevel  string `env:"MONSTER_BATTLE_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"MONSTER_BATTLE_LOG_FORMAT" envDefault:"text"`

	// CatalogDir holds species.yaml and moves.yaml; empty uses the built-in catalog
	CatalogDir      string        `env:"MONSTER_BATTLE_CATALOG_DIR"`
	WeatherDuration int           `env:"MONSTER_BATTLE_WEATHER_DURATION" envDefault:"5"`
	ShutdownTimeout time.Duration `env:"MONSTER_BATTLE_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.InvalidArgumentf("parse env: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate ensures the configuration is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("GRPCAddr", c.GRPCAddr, vb)
	errors.ValidateRequired("HTTPAddr", c.HTTPAddr, vb)
	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.Fieldf("LogLevel", "unknown level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		vb.Fieldf("LogFormat", "must be %s or %s", LogFormatText, LogFormatJSON)
	}
	errors.ValidateNonNegative("WeatherDuration", c.WeatherDuration, vb)
	if c.ShutdownTimeout <= 0 {
		vb.InvalidField("ShutdownTimeout", "must be positive")
	}

	return vb.Build()
}

// NewLogger builds the process logger writing to w
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(c.LogLevel)
	opts := &slog.HandlerOptions{Level: level}

	if c.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
