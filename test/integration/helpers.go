//go:build integration
// +build integration

package integration

import (
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/pexelstools/go-pexels-mcp/pexels"
)

// skipIfNotIntegration skips the test if INTEGRATION_TESTS is not set
// to "true". These tests call the live Pexels API and consume real
// request quota.
func skipIfNotIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv("INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test. Set INTEGRATION_TESTS=true to run.")
	}
	if os.Getenv("PEXELS_API_KEY") == "" {
		t.Skip("Skipping integration test. Set PEXELS_API_KEY to run.")
	}
}

// setupClient creates a client against the live API using the
// PEXELS_API_KEY environment variable.
func setupClient(t *testing.T) *pexels.Client {
	t.Helper()
	httpClient := &http.Client{Timeout: 30 * time.Second}
	return pexels.NewClient(httpClient, "", nil)
}
