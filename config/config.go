// Package config loads brandpipe configuration from environment
// variables (optionally via a .env file) with sensible defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default configuration values.
const (
	DefaultPageTimeout        = 12 * time.Second
	DefaultStylesheetTimeout  = 5 * time.Second
	DefaultMaxInternalPages   = 4
	DefaultMaxStylesheetsPage = 3
	DefaultUserAgent          = "brandpipe/1.0 (+https://github.com/gaurav-prasanna/brandpipe)"
	DefaultAIBaseURL          = "http://localhost:11434"
	DefaultAIModel            = "llama3.1"
	DefaultAITimeout          = 60 * time.Second
	DefaultLogLevel           = "info"
)

// Config holds all runtime settings. AI model identifiers are resolved
// here once at startup and injected into the enrichment adapter; nothing
// queries model availability at call time.
type Config struct {
	// PageTimeout is the per-page fetch timeout.
	PageTimeout time.Duration `mapstructure:"page_timeout"`
	// StylesheetTimeout is the per-stylesheet fetch timeout.
	StylesheetTimeout time.Duration `mapstructure:"stylesheet_timeout"`
	// MaxInternalPages caps how many internal pages are fetched beyond the seed.
	MaxInternalPages int `mapstructure:"max_internal_pages"`
	// MaxStylesheetsPerPage caps stylesheet fetches per page.
	MaxStylesheetsPerPage int `mapstructure:"max_stylesheets_per_page"`
	// UserAgent is sent on every request.
	UserAgent string `mapstructure:"user_agent"`

	// AIBaseURL is the Ollama-compatible endpoint for enrichment.
	AIBaseURL string `mapstructure:"ai_base_url"`
	// AIModel is the model used for brand synthesis.
	AIModel string `mapstructure:"ai_model"`
	// AITimeout bounds the enrichment call.
	AITimeout time.Duration `mapstructure:"ai_timeout"`
	// AIEnabled disables enrichment entirely when false.
	AIEnabled bool `mapstructure:"ai_enabled"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from the environment. A .env file in the
// working directory is honored when present but never required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("BRANDPIPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("page_timeout", DefaultPageTimeout)
	v.SetDefault("stylesheet_timeout", DefaultStylesheetTimeout)
	v.SetDefault("max_internal_pages", DefaultMaxInternalPages)
	v.SetDefault("max_stylesheets_per_page", DefaultMaxStylesheetsPage)
	v.SetDefault("user_agent", DefaultUserAgent)
	v.SetDefault("ai_base_url", DefaultAIBaseURL)
	v.SetDefault("ai_model", DefaultAIModel)
	v.SetDefault("ai_timeout", DefaultAITimeout)
	v.SetDefault("ai_enabled", true)
	v.SetDefault("log_level", DefaultLogLevel)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.PageTimeout <= 0 {
		return errors.New("page_timeout must be positive")
	}
	if c.StylesheetTimeout <= 0 {
		return errors.New("stylesheet_timeout must be positive")
	}
	if c.MaxInternalPages < 0 {
		return errors.New("max_internal_pages must be non-negative")
	}
	if c.MaxStylesheetsPerPage < 0 {
		return errors.New("max_stylesheets_per_page must be non-negative")
	}
	if c.AIEnabled && c.AIBaseURL == "" {
		return errors.New("ai_base_url is required when AI is enabled")
	}
	if _, ok := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}[c.LogLevel]; !ok {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}
