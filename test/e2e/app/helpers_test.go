package app_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fittrackhq/fittrack/pkg/fitsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for end-to-end tests.
 * This includes container setup, account helpers, and assertions.
 */

const (
	testImageName = "fittrack-test:latest"

	testPassword = "Passw0rd!"
)

var userCounter atomic.Int64

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building FitTrack Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up FitTrack Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/fittrack/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupAppContainer starts the service in a container and returns the base URL.
// Rate limits are relaxed so tests can make many rapid requests.
func setupAppContainer(t *testing.T) (string, func()) {
	t.Helper()

	return startContainer(t, map[string]string{
		"FITTRACK_DATABASE_FILE":  "/home/fittrack/fittrack.db",
		"FITTRACK_PEPPER_FILE":    "/home/fittrack/pepper",
		"FITTRACK_SECURE_COOKIES": "false",
		"ENV":                     "test",
		"LOG_LEVEL":               "info",
		"LOG_FORMAT":              "json",
		// Relaxed limits so tests don't trip the production defaults
		"RATELIMIT_STRICT_REQUESTS":   "1000",
		"RATELIMIT_STRICT_WINDOW_SEC": "60",
		"RATELIMIT_STRICT_BURST":      "1000",
		"RATELIMIT_MODERATE_REQUESTS": "1000",
		"RATELIMIT_MODERATE_BURST":    "1000",
	})
}

// setupAppContainerWithDefaultRateLimits starts the service with DEFAULT rate
// limits. This is specifically for testing that rate limiting actually works.
// Most tests should use setupAppContainer() which has relaxed limits.
func setupAppContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()

	return startContainer(t, map[string]string{
		"FITTRACK_DATABASE_FILE":  "/home/fittrack/fittrack.db",
		"FITTRACK_PEPPER_FILE":    "/home/fittrack/pepper",
		"FITTRACK_SECURE_COOKIES": "false",
		"ENV":                     "test",
		"LOG_LEVEL":               "info",
		"LOG_FORMAT":              "json",
	})
}

func startContainer(t *testing.T, env map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// daysAgo formats a date n days in the past as YYYY-MM-DD.
func daysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format("2006-01-02")
}

// daysAhead formats a date n days in the future as YYYY-MM-DD.
func daysAhead(n int) string {
	return time.Now().AddDate(0, 0, n).Format("2006-01-02")
}

// uniqueUsername returns a username that is unique within the test run.
func uniqueUsername(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, userCounter.Add(1))
}

// registerUser registers a fresh account and returns a client holding its
// session cookie. Each client has its own cookie jar, so use one per user.
func registerUser(t *testing.T, baseURL, prefix string) (*fitsdk.Client, *fitsdk.AuthResponse) {
	t.Helper()

	client := fitsdk.NewClient(baseURL)
	username := uniqueUsername(prefix)

	auth, err := client.Register(t.Context(), fitsdk.RegisterRequest{
		Username:        username,
		Email:           username + "@example.com",
		Password:        testPassword,
		ConfirmPassword: testPassword,
		FirstName:       "Test",
		LastName:        "User",
	})
	require.NoError(t, err, "Registration should succeed")
	require.Equal(t, username, auth.Username)
	require.NotEmpty(t, auth.UserID)

	return client, auth
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *fitsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// assertNotFound checks that an error is an API 404.
func assertNotFound(t *testing.T, err error, context string) {
	t.Helper()
	require.Error(t, err, context)
	var apiErr *fitsdk.APIError
	require.ErrorAs(t, err, &apiErr, context)
	require.Equal(t, 404, apiErr.StatusCode, context)
}

// assertUnauthorized checks that an error is an API 401.
func assertUnauthorized(t *testing.T, err error, context string) {
	t.Helper()
	require.Error(t, err, context)
	var apiErr *fitsdk.APIError
	require.ErrorAs(t, err, &apiErr, context)
	require.Equal(t, 401, apiErr.StatusCode, context)
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
