package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fittrackhq/fittrack/internal/domain"
	"github.com/fittrackhq/fittrack/internal/store"
	"github.com/fittrackhq/fittrack/pkg/idx"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func createTestUser(t *testing.T, s *Store, username, email string) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func TestUsersUniqueConstraints(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTestUser(t, s, "alice", "alice@example.com")

	dup := domain.User{
		ID:           idx.New().String(),
		Username:     "alice",
		Email:        "other@example.com",
		PasswordHash: "x",
	}
	err := s.Users().CreateUser(ctx, dup)
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	dup.Username = "bob"
	dup.Email = "alice@example.com"
	err = s.Users().CreateUser(ctx, dup)
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	_, err = s.Users().GetUserByUsername(ctx, "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWorkoutOwnershipScoping(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice", "alice@example.com")
	bob := createTestUser(t, s, "bob", "bob@example.com")

	w := domain.Workout{
		ID:          idx.New().String(),
		UserID:      alice.ID,
		Name:        "Morning run",
		WorkoutDate: "2026-08-01",
	}
	require.NoError(t, s.Workouts().Create(ctx, w))

	// Owner sees it.
	got, err := s.Workouts().GetByID(ctx, w.ID, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "Morning run", got.Name)

	// Anyone else gets the same error as a missing row.
	_, err = s.Workouts().GetByID(ctx, w.ID, bob.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Workouts().GetByID(ctx, idx.New().String(), alice.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	// Update and delete follow the same rule.
	w.Name = "Evening run"
	w.UserID = bob.ID
	require.ErrorIs(t, s.Workouts().Update(ctx, w), store.ErrNotFound)

	require.ErrorIs(t, s.Workouts().Delete(ctx, w.ID, bob.ID), store.ErrNotFound)
	require.NoError(t, s.Workouts().Delete(ctx, w.ID, alice.ID))
}

func TestWorkoutEntriesCascadeAndJoin(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice", "alice@example.com")
	bob := createTestUser(t, s, "bob", "bob@example.com")

	exercises, err := s.Exercises().List(ctx, "", "", "", 50)
	require.NoError(t, err)
	require.NotEmpty(t, exercises, "seed migration should provide a library")

	w := domain.Workout{
		ID:          idx.New().String(),
		UserID:      alice.ID,
		Name:        "Leg day",
		WorkoutDate: "2026-08-02",
	}
	require.NoError(t, s.Workouts().Create(ctx, w))

	sets := 3
	entry := domain.WorkoutEntry{
		ID:         idx.New().String(),
		WorkoutID:  w.ID,
		ExerciseID: exercises[0].ID,
		Sets:       &sets,
	}
	require.NoError(t, s.WorkoutEntries().Create(ctx, entry))

	details, err := s.WorkoutEntries().ListByWorkout(ctx, w.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.Equal(t, exercises[0].Name, details[0].ExerciseName)
	require.NotNil(t, details[0].Sets)
	require.Equal(t, 3, *details[0].Sets)

	// Entry lookup is owner-scoped through the workout.
	_, err = s.WorkoutEntries().GetByIDForUser(ctx, entry.ID, bob.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	// Deleting the workout cascades to its entries.
	require.NoError(t, s.Workouts().Delete(ctx, w.ID, alice.ID))
	details, err = s.WorkoutEntries().ListByWorkout(ctx, w.ID)
	require.NoError(t, err)
	require.Empty(t, details)
}

func TestGoalsListOrderingAndProgress(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice", "alice@example.com")

	target := 100.0
	mk := func(title, status, targetDate string, current float64) {
		g := domain.Goal{
			ID:           idx.New().String(),
			UserID:       alice.ID,
			Title:        title,
			TargetValue:  &target,
			CurrentValue: current,
			TargetDate:   targetDate,
			Status:       status,
		}
		require.NoError(t, s.Goals().Create(ctx, g))
	}

	mk("done", domain.GoalStatusCompleted, "2026-01-01", 100)
	mk("later", domain.GoalStatusActive, "2026-12-01", 10)
	mk("soon", domain.GoalStatusActive, "2026-09-01", 80)

	goals, err := s.Goals().ListByUser(ctx, alice.ID, "")
	require.NoError(t, err)
	require.Len(t, goals, 3)
	require.Equal(t, "soon", goals[0].Title)
	require.Equal(t, "later", goals[1].Title)
	require.Equal(t, "done", goals[2].Title)

	active, err := s.Goals().ListByUser(ctx, alice.ID, domain.GoalStatusActive)
	require.NoError(t, err)
	require.Len(t, active, 2)

	top, err := s.Goals().TopActive(ctx, alice.ID, 5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	require.Equal(t, "soon", top[0].Title)
}

func TestStatsAggregation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice", "alice@example.com")

	mins1, cals1 := 30, 300
	mins2, cals2 := 45, 450
	for i, w := range []domain.Workout{
		{UserID: alice.ID, Name: "a", WorkoutDate: "2026-08-01", DurationMinutes: &mins1, TotalCalories: &cals1},
		{UserID: alice.ID, Name: "b", WorkoutDate: "2026-08-01", DurationMinutes: &mins2, TotalCalories: &cals2},
		{UserID: alice.ID, Name: "c", WorkoutDate: "2026-08-05"},
	} {
		w.ID = idx.New().String()
		require.NoError(t, s.Workouts().Create(ctx, w), "workout %d", i)
	}

	totals, err := s.Stats().Totals(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, 3, totals.TotalWorkouts)
	require.Equal(t, 75, totals.TotalMinutes)
	require.Equal(t, 750, totals.TotalCalories)

	daily, err := s.Stats().DailyActivity(ctx, alice.ID, "2026-08-01")
	require.NoError(t, err)
	require.Len(t, daily, 2)
	require.Equal(t, "2026-08-01", daily[0].Date)
	require.Equal(t, 75, daily[0].Minutes)
	require.Equal(t, "2026-08-05", daily[1].Date)
	require.Equal(t, 0, daily[1].Minutes)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice", "alice@example.com")

	err := s.WithTx(ctx, func(tx store.Tx) error {
		w := domain.Workout{
			ID:          idx.New().String(),
			UserID:      alice.ID,
			Name:        "doomed",
			WorkoutDate: "2026-08-01",
		}
		if err := tx.Workouts().Create(ctx, w); err != nil {
			return err
		}
		return context.Canceled
	})
	require.ErrorIs(t, err, context.Canceled)

	count, err := s.Workouts().CountByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Zero(t, count)
}
