// Package config loads the application configuration and the offers
// input document.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds all application-level configuration.
type Config struct {
	Backend      BackendConfig `mapstructure:"backend"`
	Logging      LoggingConfig `mapstructure:"logging"`
	Output       OutputConfig  `mapstructure:"output"`
	SettingsPath string        `mapstructure:"settings_path"`
	FallbackCity string        `mapstructure:"fallback_city"`
}

// BackendConfig points at the reference-data / rent-estimate service.
// An empty base URL runs fully offline on built-in defaults.
type BackendConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Timeout returns the request timeout as a duration.
func (b BackendConfig) Timeout() time.Duration {
	if b.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(b.TimeoutSeconds) * time.Second
}

// LoggingConfig holds logging options.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// OutputConfig holds the default output format.
type OutputConfig struct {
	Format string `mapstructure:"format"` // console, json, csv
}

// Load reads the YAML config at the given path. A missing path yields
// pure defaults rather than an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("backend.timeout_seconds", 5)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("output.format", "console")
	v.SetDefault("settings_path", "offercompare_settings.json")

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		v.AutomaticEnv()
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct, %s", err)
	}
	return &cfg, nil
}

// NewLogger builds a zap logger from the logging configuration, with an
// optional CLI level override.
func NewLogger(loggingConfig LoggingConfig, levelOverride string) (*zap.Logger, error) {
	level := loggingConfig.Level
	if levelOverride != "" {
		level = levelOverride
	}

	var zapLevel zapcore.Level
	switch level {
	case "", "info":
		zapLevel = zapcore.InfoLevel
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	var zc zap.Config
	switch loggingConfig.Format {
	case "", "console":
		zc = zap.NewDevelopmentConfig()
	case "json":
		zc = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", loggingConfig.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(zapLevel)

	return zc.Build()
}
