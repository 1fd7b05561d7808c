package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/fittrackhq/fittrack/internal/domain"
	"github.com/fittrackhq/fittrack/internal/session"
	"github.com/fittrackhq/fittrack/internal/store"
	"github.com/fittrackhq/fittrack/pkg/cryptox"
	"github.com/fittrackhq/fittrack/pkg/idx"
	"github.com/fittrackhq/fittrack/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUsernameTaken      = errors.New("username_taken")
	ErrEmailRegistered    = errors.New("email_registered")
)

// ValidationError carries every form-level problem found during
// registration, so the client can show them all at once.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// RegisterInput is the raw registration form.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
}

// AuthService owns registration, login, logout and profile management.
// Sessions are opaque server-side tokens; see the session package.
type AuthService struct {
	Store    store.Store
	Sessions session.Store
}

// Register validates the input, creates the user with its (possibly empty)
// profile, and signs the new user in by minting a session.
//
// All validation failures are collected into one *ValidationError rather than
// stopping at the first. Uniqueness conflicts return ErrUsernameTaken or
// ErrEmailRegistered.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (session.Session, error) {
	l := slogx.FromContext(ctx)

	var messages []string

	if len(in.Username) < 3 {
		messages = append(messages, "Username must be at least 3 characters")
	}
	if !strings.Contains(in.Email, "@") {
		messages = append(messages, "Please enter a valid email address")
	}
	for _, v := range ValidatePassword(in.Password) {
		messages = append(messages, v.Message)
	}
	if in.Password != in.ConfirmPassword {
		messages = append(messages, "Passwords do not match")
	}
	if len(messages) > 0 {
		return session.Session{}, &ValidationError{Messages: messages}
	}

	// Pre-check both uniques so the conflict message can name the right
	// field. The insert still races behind a unique constraint; a
	// concurrent duplicate surfaces as ErrAlreadyExists below.
	if _, err := s.Store.Users().GetUserByUsername(ctx, in.Username); err == nil {
		return session.Session{}, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return session.Session{}, err
	}
	if _, err := s.Store.Users().GetUserByEmail(ctx, in.Email); err == nil {
		return session.Session{}, ErrEmailRegistered
	} else if !errors.Is(err, store.ErrNotFound) {
		return session.Session{}, err
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return session.Session{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}
		return tx.Profiles().CreateProfile(ctx, domain.Profile{
			UserID:        user.ID,
			FirstName:     in.FirstName,
			LastName:      in.LastName,
			ActivityLevel: domain.DefaultActivityLevel,
		})
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost the race; re-resolve which field collided.
			if _, uerr := s.Store.Users().GetUserByUsername(ctx, in.Username); uerr == nil {
				return session.Session{}, ErrUsernameTaken
			}
			return session.Session{}, ErrEmailRegistered
		}
		return session.Session{}, err
	}

	l.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username))

	return s.Sessions.Create(ctx, session.Identity{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	})
}

// Login authenticates a username/password pair and mints a session.
//
// Unknown usernames and wrong passwords both return ErrInvalidCredentials;
// callers must not be able to probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (session.Session, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return session.Session{}, ErrInvalidCredentials
		}
		return session.Session{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login failed", slog.String("username", username))
		return session.Session{}, ErrInvalidCredentials
	}

	id := session.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
	if profile, err := s.Store.Profiles().GetProfile(ctx, user.ID); err == nil {
		id.FirstName = profile.FirstName
		id.LastName = profile.LastName
	}

	l.Info("login succeeded", slog.String("user_id", user.ID))
	return s.Sessions.Create(ctx, id)
}

// Logout destroys the session. Destroying an unknown or already destroyed
// token is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.Sessions.Destroy(ctx, token)
}

// Profile returns the user's profile, synthesizing an empty one when the row
// is missing.
func (s *AuthService) Profile(ctx context.Context, userID string) (domain.Profile, error) {
	p, err := s.Store.Profiles().GetProfile(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Profile{
			UserID:        userID,
			ActivityLevel: domain.DefaultActivityLevel,
		}, nil
	}
	return p, err
}

// UpdateProfile upserts the user's profile row.
func (s *AuthService) UpdateProfile(ctx context.Context, p domain.Profile) error {
	err := s.Store.Profiles().UpdateProfile(ctx, p)
	if errors.Is(err, store.ErrNotFound) {
		return s.Store.Profiles().CreateProfile(ctx, p)
	}
	return err
}
