package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fittrackhq/fittrack/internal/store"
)

func TestExerciseLibraryFilters(t *testing.T) {
	st := newTestStore(t)
	svc := &ExerciseService{Store: st}
	ctx := context.Background()

	all, err := svc.List(ctx, "", "", "")
	require.NoError(t, err)
	require.NotEmpty(t, all)

	cardio, err := svc.List(ctx, "Cardio", "", "")
	require.NoError(t, err)
	require.NotEmpty(t, cardio)
	require.Less(t, len(cardio), len(all))
	for _, e := range cardio {
		require.Equal(t, "Cardio", e.CategoryName)
	}

	legs, err := svc.List(ctx, "", "", "Legs")
	require.NoError(t, err)
	for _, e := range legs {
		require.Equal(t, "Legs", e.MuscleGroup)
	}

	cats, err := svc.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 4)
	// Ordered by name.
	require.Equal(t, "Cardio", cats[0].Name)
}

func TestExerciseGet(t *testing.T) {
	st := newTestStore(t)
	svc := &ExerciseService{Store: st}
	ctx := context.Background()

	running, err := svc.List(ctx, "", "", "Running")
	require.NoError(t, err)
	require.Len(t, running, 1)

	got, err := svc.Get(ctx, running[0].ID)
	require.NoError(t, err)
	require.Equal(t, "Running", got.Name)

	_, err = svc.Get(ctx, "01J00000000000000000000000")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestEstimateCalories(t *testing.T) {
	st := newTestStore(t)
	svc := &ExerciseService{Store: st}
	ctx := context.Background()

	running, err := svc.List(ctx, "", "", "Running")
	require.NoError(t, err)
	require.Len(t, running, 1)
	require.NotNil(t, running[0].CaloriesPerMinute)

	got, err := svc.EstimateCalories(ctx, running[0].ID, 30)
	require.NoError(t, err)
	require.Equal(t, 345, got) // 11.5 cal/min * 30 min

	_, err = svc.EstimateCalories(ctx, "01J00000000000000000000000", 30)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSearchBlankQuery(t *testing.T) {
	st := newTestStore(t)
	svc := &ExerciseService{Store: st}

	results, err := svc.Search(context.Background(), "   ")
	require.NoError(t, err)
	require.Empty(t, results)
}
