package app_test

import (
	"testing"

	"github.com/fittrackhq/fittrack/pkg/fitsdk"
	"github.com/stretchr/testify/require"
)

// TestLivezEndpoint verifies the liveness check endpoint works on a fresh instance.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupAppContainer(t)
	defer cleanup()

	client := fitsdk.NewClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)

	require.NotEmpty(t, health.Version)
	t.Logf("Livez endpoint is healthy (version %s)", health.Version)
}

// TestReadyzEndpoint verifies the readiness check endpoint reports its dependency checks.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupAppContainer(t)
	defer cleanup()

	client := fitsdk.NewClient(baseURL)

	health, err := client.GetReadiness(t.Context())
	assertHealthy(t, health, err)

	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)

	t.Logf("Readyz endpoint is healthy")
}
