package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCreateAndResolve(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := NewMemoryStore()
	s, err := store.Create(ctx, Identity{
		UserID:   "01J0USER00000000000000001",
		Username: "alice",
		Email:    "alice@x.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, s.Token)
	require.Equal(t, TTL, s.ExpiresAt.Sub(s.CreatedAt))

	got, ok := store.Resolve(ctx, s.Token)
	require.True(t, ok)
	require.Equal(t, "alice", got.Identity.Username)
	require.Equal(t, s.Identity.UserID, got.Identity.UserID)
}

func TestResolveUnknownToken(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	_, ok := store.Resolve(context.Background(), "no-such-token")
	require.False(t, ok)
}

func TestTokensAreUnique(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := NewMemoryStore()
	seen := make(map[string]struct{})
	for range 100 {
		s, err := store.Create(ctx, Identity{UserID: "u"})
		require.NoError(t, err)
		_, dup := seen[s.Token]
		require.False(t, dup)
		seen[s.Token] = struct{}{}
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := NewMemoryStore()
	s, err := store.Create(ctx, Identity{UserID: "u", Username: "alice"})
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, s.Token))
	_, ok := store.Resolve(ctx, s.Token)
	require.False(t, ok)

	// Destroying an already-absent session is not an error.
	require.NoError(t, store.Destroy(ctx, s.Token))
}

func TestResolveAfterExpiry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	current := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return current }

	s, err := store.Create(ctx, Identity{UserID: "u", Username: "alice"})
	require.NoError(t, err)

	// One minute before the deadline the session still resolves.
	current = current.Add(TTL - time.Minute)
	_, ok := store.Resolve(ctx, s.Token)
	require.True(t, ok)

	// Past the deadline it is gone, even though nothing destroyed it.
	current = current.Add(2 * time.Minute)
	_, ok = store.Resolve(ctx, s.Token)
	require.False(t, ok)
	require.Equal(t, 0, store.Len())
}

func TestPurgeExpired(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	current := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return current }

	_, err := store.Create(ctx, Identity{UserID: "a"})
	require.NoError(t, err)

	current = current.Add(TTL + time.Hour)
	fresh, err := store.Create(ctx, Identity{UserID: "b"})
	require.NoError(t, err)

	require.Equal(t, 1, store.PurgeExpired(ctx))
	require.Equal(t, 1, store.Len())

	_, ok := store.Resolve(ctx, fresh.Token)
	require.True(t, ok)
}

func TestConcurrentAccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := NewMemoryStore()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := store.Create(ctx, Identity{UserID: "u", Username: "alice"})
			require.NoError(t, err)

			_, ok := store.Resolve(ctx, s.Token)
			require.True(t, ok)

			require.NoError(t, store.Destroy(ctx, s.Token))
		}()
	}
	wg.Wait()

	require.Equal(t, 0, store.Len())
}
