package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fittrackhq/fittrack/internal/domain"
	"github.com/fittrackhq/fittrack/internal/session"
	"github.com/fittrackhq/fittrack/internal/store"
	"github.com/fittrackhq/fittrack/internal/store/drivers/sqlite"
	"github.com/fittrackhq/fittrack/pkg/cryptox"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "fittrack-service-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newAuthService(t *testing.T) (*AuthService, store.Store) {
	t.Helper()

	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	return &AuthService{
		Store:    s,
		Sessions: session.NewMemoryStore(),
	}, s
}

func validRegistration() RegisterInput {
	return RegisterInput{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "Passw0rd!",
		ConfirmPassword: "Passw0rd!",
		FirstName:       "Alice",
		LastName:        "Smith",
	}
}

func TestRegisterCreatesUserProfileAndSession(t *testing.T) {
	svc, st := newAuthService(t)
	ctx := context.Background()

	sess, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	require.Equal(t, "alice", sess.Identity.Username)
	require.Equal(t, "Alice", sess.Identity.FirstName)

	// The session resolves immediately (auto-login).
	resolved, ok := svc.Sessions.Resolve(ctx, sess.Token)
	require.True(t, ok)
	require.Equal(t, sess.Identity.UserID, resolved.Identity.UserID)

	// The profile row exists with the registration names.
	profile, err := st.Profiles().GetProfile(ctx, sess.Identity.UserID)
	require.NoError(t, err)
	require.Equal(t, "Alice", profile.FirstName)
	require.Equal(t, domain.DefaultActivityLevel, profile.ActivityLevel)

	// Stored hash is argon2, never the plaintext.
	user, err := st.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotContains(t, user.PasswordHash, "Passw0rd!")
	require.Contains(t, user.PasswordHash, "$argon2id$")
}

func TestRegisterCollectsAllValidationErrors(t *testing.T) {
	svc, _ := newAuthService(t)

	in := RegisterInput{
		Username:        "ab",
		Email:           "not-an-email",
		Password:        "weak",
		ConfirmPassword: "different",
	}
	_, err := svc.Register(context.Background(), in)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Messages, "Username must be at least 3 characters")
	require.Contains(t, verr.Messages, "Please enter a valid email address")
	require.Contains(t, verr.Messages, "Passwords do not match")
	require.Contains(t, verr.Messages, "Password must contain at least one uppercase letter")
}

func TestRegisterConflicts(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	dup := validRegistration()
	dup.Email = "other@example.com"
	_, err = svc.Register(ctx, dup)
	require.ErrorIs(t, err, ErrUsernameTaken)

	dup = validRegistration()
	dup.Username = "bob"
	_, err = svc.Register(ctx, dup)
	require.ErrorIs(t, err, ErrEmailRegistered)
}

func TestLoginFlow(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	sess, err := svc.Login(ctx, "alice", "Passw0rd!")
	require.NoError(t, err)
	require.Equal(t, "alice", sess.Identity.Username)
	require.Equal(t, "Alice", sess.Identity.FirstName)

	// Wrong password and unknown user are indistinguishable.
	_, err = svc.Login(ctx, "alice", "WrongPass1!")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody", "Passw0rd!")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	sess, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sess.Token))

	_, ok := svc.Sessions.Resolve(ctx, sess.Token)
	require.False(t, ok)

	// Destroying again, or destroying garbage, still succeeds.
	require.NoError(t, svc.Logout(ctx, sess.Token))
	require.NoError(t, svc.Logout(ctx, "never-issued"))
}

func TestProfileUpsert(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	sess, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	userID := sess.Identity.UserID

	height := 180.0
	err = svc.UpdateProfile(ctx, domain.Profile{
		UserID:        userID,
		FirstName:     "Alice",
		LastName:      "Jones",
		Gender:        "female",
		HeightCm:      &height,
		ActivityLevel: "high",
	})
	require.NoError(t, err)

	p, err := svc.Profile(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "Jones", p.LastName)
	require.Equal(t, "high", p.ActivityLevel)
	require.NotNil(t, p.HeightCm)
	require.Equal(t, 180.0, *p.HeightCm)
}
