package app_test

import (
	"testing"

	"github.com/fittrackhq/fittrack/pkg/fitsdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitLoginEndpoint verifies that the login endpoint is rate limited.
// This endpoint has strict limits (5 req/min) to prevent brute force attacks.
func TestRateLimitLoginEndpoint(t *testing.T) {
	baseURL, cleanup := setupAppContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := fitsdk.NewClient(baseURL)
	ctx := t.Context()

	// Make requests until we hit the rate limit. We make 6 rapid requests
	// and expect the 6th to be rejected with a 429.
	var lastErr error
	for i := range 6 {
		_, err := client.Login(ctx, "wronguser", "WrongPass1!")
		require.Error(t, err)

		var apiErr *fitsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		if i < 5 {
			require.Equal(t, 401, apiErr.StatusCode, "Should not be rate limited yet (request %d)", i+1)
		} else {
			lastErr = err
		}
	}

	var apiErr *fitsdk.APIError
	require.ErrorAs(t, lastErr, &apiErr)
	require.Equal(t, 429, apiErr.StatusCode, "Should be rate limited after 5 requests")

	// The bucket is keyed by IP + username, so a different username from the
	// same address still gets through.
	_, err := client.Login(ctx, "someoneelse", "WrongPass1!")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 401, apiErr.StatusCode, "A different username should have its own budget")

	t.Logf("Successfully rate limited after 5 requests to the login endpoint")
}

// TestRateLimitRegisterEndpoint verifies that registration shares the strict profile.
func TestRateLimitRegisterEndpoint(t *testing.T) {
	baseURL, cleanup := setupAppContainerWithDefaultRateLimits(t)
	defer cleanup()

	ctx := t.Context()

	// Invalid submissions still consume rate limit budget
	var lastErr error
	for range 6 {
		client := fitsdk.NewClient(baseURL)
		_, lastErr = client.Register(ctx, fitsdk.RegisterRequest{
			Username: "ab",
			Email:    "bad",
			Password: "short",
		})
		require.Error(t, lastErr)
	}

	var apiErr *fitsdk.APIError
	require.ErrorAs(t, lastErr, &apiErr)
	require.Equal(t, 429, apiErr.StatusCode, "Should be rate limited after 5 requests")
}

// TestRateLimitPublicLibraryIsLenient verifies the public library profile
// tolerates bursts that would trip the strict profile.
func TestRateLimitPublicLibraryIsLenient(t *testing.T) {
	baseURL, cleanup := setupAppContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := fitsdk.NewClient(baseURL)
	ctx := t.Context()

	for range 20 {
		_, err := client.ListCategories(ctx)
		require.NoError(t, err, "Public library reads should not be rate limited at this volume")
	}
}
