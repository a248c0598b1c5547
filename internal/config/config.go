// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Defaults applied when the corresponding environment variable is
// unset.
const (
	DefaultHTTPTimeout = 30 * time.Second
	DefaultLogLevel    = "info"
)

// Config holds the runtime configuration. All values come from
// PEXELS_-prefixed environment variables; command line flags may
// override them afterwards.
type Config struct {
	// APIKey is the Pexels API key (PEXELS_API_KEY). It may be empty:
	// the server starts degraded and a key can be supplied later
	// through the set_api_key tool.
	APIKey string

	// HTTPTimeout bounds each upstream request (PEXELS_HTTP_TIMEOUT).
	HTTPTimeout time.Duration

	// LogLevel is the zap level for stderr logging (PEXELS_LOG_LEVEL).
	LogLevel string
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("http_timeout", DefaultHTTPTimeout.String())
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetEnvPrefix("PEXELS")
	v.AutomaticEnv()

	timeout, err := time.ParseDuration(v.GetString("http_timeout"))
	if err != nil {
		return nil, fmt.Errorf("parse PEXELS_HTTP_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("PEXELS_HTTP_TIMEOUT must be positive, got %s", timeout)
	}

	return &Config{
		APIKey:      v.GetString("api_key"),
		HTTPTimeout: timeout,
		LogLevel:    v.GetString("log_level"),
	}, nil
}
