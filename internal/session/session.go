// Package session implements the server-side session layer: opaque tokens
// bound to an authenticated identity, with a fixed maximum lifetime. Storage
// is injected through the Store interface so a single-instance deployment can
// use the in-memory implementation while clustered deployments plug in an
// external store.
package session

import (
	"context"
	"time"
)

// TTL is the fixed maximum session lifetime. After this the token no longer
// resolves, whether or not the client kept the cookie.
const TTL = 24 * time.Hour

// Identity is the minimal authenticated-user projection a session carries.
// It never includes password material.
type Identity struct {
	UserID    string
	Username  string
	Email     string
	FirstName string
	LastName  string
}

// Session binds an opaque token to an identity.
type Session struct {
	Token     string
	Identity  Identity
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its lifetime at time now.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Store is the session lifecycle contract. Implementations must be safe for
// concurrent use from multiple request goroutines.
//
// A user may hold multiple concurrent sessions (multi-device); nothing here
// enforces a single-session invariant.
type Store interface {
	// Create mints a new unguessable token bound to the identity.
	Create(ctx context.Context, id Identity) (Session, error)

	// Resolve returns the live session for token. Unknown, destroyed and
	// expired tokens all report ok=false; callers cannot tell them apart.
	Resolve(ctx context.Context, token string) (Session, bool)

	// Destroy removes the session. Destroying an absent token is not an
	// error; logout is idempotent.
	Destroy(ctx context.Context, token string) error

	// PurgeExpired drops entries past their lifetime and returns how many
	// were removed. Housekeeping only; Resolve already hides expired
	// sessions.
	PurgeExpired(ctx context.Context) int
}
