package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fittrackhq/fittrack/internal/store"
)

func TestWorkoutCreateWithEntries(t *testing.T) {
	st := newTestStore(t)
	svc := &WorkoutService{Store: st}
	ctx := context.Background()

	userID := seedUser(t, st, "alice")

	library, err := st.Exercises().List(ctx, "", "", "", 50)
	require.NoError(t, err)
	require.NotEmpty(t, library)

	sets, reps := 3, 10
	w, err := svc.Create(ctx, userID, WorkoutInput{
		Name:        "Push day",
		WorkoutDate: "2026-08-10",
	}, []EntryInput{
		{ExerciseID: library[0].ID, Sets: &sets, Reps: &reps},
		{ExerciseID: ""}, // blank rows from the form are skipped
	})
	require.NoError(t, err)

	got, entries, err := svc.Get(ctx, w.ID, userID)
	require.NoError(t, err)
	require.Equal(t, "Push day", got.Name)
	require.Len(t, entries, 1)
	require.Equal(t, library[0].Name, entries[0].ExerciseName)
}

func TestWorkoutValidation(t *testing.T) {
	st := newTestStore(t)
	svc := &WorkoutService{Store: st}
	ctx := context.Background()

	userID := seedUser(t, st, "alice")

	_, err := svc.Create(ctx, userID, WorkoutInput{}, nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Messages, "Workout name is required")
	require.Contains(t, verr.Messages, "Workout date is required")

	// A present but unparseable date is reported distinctly from a missing one.
	_, err = svc.Create(ctx, userID, WorkoutInput{
		Name:        "x",
		WorkoutDate: "10/08/2026",
	}, nil)
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Messages, "Invalid workout date")
	require.NotContains(t, verr.Messages, "Workout date is required")

	bad := 9
	_, err = svc.Create(ctx, userID, WorkoutInput{
		Name:        "x",
		WorkoutDate: "2026-08-10",
		Rating:      &bad,
	}, nil)
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Messages, "Rating must be between 1 and 5")
}

func TestWorkoutEntryOwnership(t *testing.T) {
	st := newTestStore(t)
	svc := &WorkoutService{Store: st}
	ctx := context.Background()

	alice := seedUser(t, st, "alice")
	bob := seedUser(t, st, "bob")

	library, err := st.Exercises().List(ctx, "", "", "", 1)
	require.NoError(t, err)

	w, err := svc.Create(ctx, alice, WorkoutInput{Name: "Legs", WorkoutDate: "2026-08-11"}, nil)
	require.NoError(t, err)

	// Bob cannot attach entries to Alice's workout.
	_, err = svc.AddEntry(ctx, w.ID, bob, EntryInput{ExerciseID: library[0].ID})
	require.ErrorIs(t, err, store.ErrNotFound)

	entry, err := svc.AddEntry(ctx, w.ID, alice, EntryInput{ExerciseID: library[0].ID})
	require.NoError(t, err)

	// Nor remove Alice's entries.
	require.ErrorIs(t, svc.RemoveEntry(ctx, entry.ID, bob), store.ErrNotFound)
	require.NoError(t, svc.RemoveEntry(ctx, entry.ID, alice))
}

func TestWorkoutListPagination(t *testing.T) {
	st := newTestStore(t)
	svc := &WorkoutService{Store: st}
	ctx := context.Background()

	userID := seedUser(t, st, "alice")

	for i := 0; i < 13; i++ {
		date := "2026-08-01"
		if i >= 10 {
			date = "2026-07-01"
		}
		_, err := svc.Create(ctx, userID, WorkoutInput{Name: "w", WorkoutDate: date}, nil)
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, userID, 1)
	require.NoError(t, err)
	require.Len(t, page.Workouts, WorkoutPageSize)
	require.Equal(t, 13, page.TotalCount)
	require.Equal(t, 2, page.TotalPages)

	page, err = svc.List(ctx, userID, 2)
	require.NoError(t, err)
	require.Len(t, page.Workouts, 3)
}
