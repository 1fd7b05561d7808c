package app_test

import (
	"testing"

	"github.com/fittrackhq/fittrack/pkg/fitsdk"
	"github.com/stretchr/testify/require"
)

// TestRegisterLoginLogout walks a fresh account through the full session lifecycle.
func TestRegisterLoginLogout(t *testing.T) {
	baseURL, cleanup := setupAppContainer(t)
	defer cleanup()

	client, auth := registerUser(t, baseURL, "lifecycle")
	ctx := t.Context()

	// Registration sets a session cookie, so the profile is reachable immediately
	profile, err := client.GetProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, "Test", profile.FirstName)

	require.NoError(t, client.Logout(ctx))

	_, err = client.GetProfile(ctx)
	assertUnauthorized(t, err, "Profile should require a session after logout")

	// Log back in with the same credentials
	relogin, err := client.Login(ctx, auth.Username, testPassword)
	require.NoError(t, err)
	require.Equal(t, auth.UserID, relogin.UserID)

	profile, err = client.GetProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, "Test", profile.FirstName)
}

// TestRegisterValidation verifies a weak registration reports every failed rule at once.
func TestRegisterValidation(t *testing.T) {
	baseURL, cleanup := setupAppContainer(t)
	defer cleanup()

	client := fitsdk.NewClient(baseURL)

	_, err := client.Register(t.Context(), fitsdk.RegisterRequest{
		Username:        "ab",
		Email:           "not-an-email",
		Password:        "short",
		ConfirmPassword: "different",
	})
	require.Error(t, err)

	var apiErr *fitsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.StatusCode)
	require.Contains(t, apiErr.Messages, "Username must be at least 3 characters")
	require.Contains(t, apiErr.Messages, "Please enter a valid email address")
	require.Contains(t, apiErr.Messages, "Password must be at least 8 characters long")
	require.Contains(t, apiErr.Messages, "Passwords do not match")

	// The submitted values come back so the form can be refilled, minus
	// anything password-shaped.
	require.Equal(t, "ab", apiErr.Form["username"])
	require.Equal(t, "not-an-email", apiErr.Form["email"])
	require.NotContains(t, apiErr.Form, "password")
	require.NotContains(t, apiErr.Form, "confirm_password")
}

// TestRegisterDuplicateUsername verifies username uniqueness is enforced.
func TestRegisterDuplicateUsername(t *testing.T) {
	baseURL, cleanup := setupAppContainer(t)
	defer cleanup()

	_, auth := registerUser(t, baseURL, "dup")

	client := fitsdk.NewClient(baseURL)
	_, err := client.Register(t.Context(), fitsdk.RegisterRequest{
		Username:        auth.Username,
		Email:           "other-" + auth.Email,
		Password:        testPassword,
		ConfirmPassword: testPassword,
	})
	require.Error(t, err)

	var apiErr *fitsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 409, apiErr.StatusCode)
	require.Equal(t, "Username already taken", apiErr.Message)
	require.Equal(t, auth.Username, apiErr.Form["username"])
}

// TestLoginInvalidCredentials verifies a wrong password and an unknown user
// produce the same response.
func TestLoginInvalidCredentials(t *testing.T) {
	baseURL, cleanup := setupAppContainer(t)
	defer cleanup()

	_, auth := registerUser(t, baseURL, "badlogin")

	client := fitsdk.NewClient(baseURL)
	ctx := t.Context()

	_, wrongPass := client.Login(ctx, auth.Username, "WrongPass1!")
	_, unknownUser := client.Login(ctx, "nosuchuser", "WrongPass1!")

	for _, err := range []error{wrongPass, unknownUser} {
		var apiErr *fitsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 401, apiErr.StatusCode)
		require.Equal(t, "Invalid username or password", apiErr.Message)
	}
}

// TestProfileUpdate verifies profile fields round-trip through the update endpoint.
func TestProfileUpdate(t *testing.T) {
	baseURL, cleanup := setupAppContainer(t)
	defer cleanup()

	client, _ := registerUser(t, baseURL, "profile")
	ctx := t.Context()

	updated, err := client.UpdateProfile(ctx, fitsdk.Profile{
		FirstName:     "Alice",
		LastName:      "Runner",
		Gender:        "female",
		HeightCm:      floatPtr(172),
		WeightKg:      floatPtr(63.5),
		ActivityLevel: "active",
	})
	require.NoError(t, err)
	require.Equal(t, "Alice", updated.FirstName)
	require.Equal(t, "active", updated.ActivityLevel)
	require.NotNil(t, updated.HeightCm)
	require.InDelta(t, 172, *updated.HeightCm, 0.01)

	fetched, err := client.GetProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, "Runner", fetched.LastName)
	require.NotNil(t, fetched.WeightKg)
	require.InDelta(t, 63.5, *fetched.WeightKg, 0.01)
}
