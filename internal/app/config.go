package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by LoadConfig, e.g.
// GRIDNODES_LOG_LEVEL.
const EnvPrefix = "GRIDNODES"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	LogFormat   string `mapstructure:"log_format"`
	LogLevel    string `mapstructure:"log_level"`
	WorkerCount int    `mapstructure:"workers"`
}

// NewConfig validates cfg and returns a normalized copy.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	if cfg.WorkerCount < 1 {
		return nil, errors.New("workers must be at least 1")
	}
	return &cfg, nil
}

// NewViper returns a viper instance with the defaults and environment
// binding every loader uses. Callers may bind flags to it before LoadConfig.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("log_format", "text")
	v.SetDefault("log_level", "info")
	v.SetDefault("workers", 10)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads configuration from, in increasing priority: defaults, the
// config file, GRIDNODES_* environment variables and whatever flags the
// caller bound to v. With an empty path, gridnodes.yaml in the working
// directory is used when present.
func LoadConfig(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("gridnodes")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return NewConfig(cfg)
}
