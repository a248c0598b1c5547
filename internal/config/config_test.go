package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PEXELS_API_KEY", "")
	t.Setenv("PEXELS_HTTP_TIMEOUT", "")
	t.Setenv("PEXELS_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Empty(t, cfg.APIKey)
	require.Equal(t, DefaultHTTPTimeout, cfg.HTTPTimeout)
	require.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PEXELS_API_KEY", "env-key")
	t.Setenv("PEXELS_HTTP_TIMEOUT", "90s")
	t.Setenv("PEXELS_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "env-key", cfg.APIKey)
	require.Equal(t, 90*time.Second, cfg.HTTPTimeout)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("PEXELS_HTTP_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "PEXELS_HTTP_TIMEOUT")
}

func TestLoad_NegativeTimeout(t *testing.T) {
	t.Setenv("PEXELS_HTTP_TIMEOUT", "-5s")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be positive")
}
