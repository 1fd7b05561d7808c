package service

import (
	"context"
	"math"
	"strings"

	"github.com/fittrackhq/fittrack/internal/domain"
	"github.com/fittrackhq/fittrack/internal/store"
)

// ExerciseService serves the public exercise library. It carries no
// per-user state.
type ExerciseService struct {
	Store store.Store
}

// List returns library exercises matching the optional filters, capped at 50
// rows.
func (s *ExerciseService) List(ctx context.Context, category, difficulty, search string) ([]domain.Exercise, error) {
	return s.Store.Exercises().List(ctx, category, difficulty, search, 50)
}

// Get returns one library exercise by id.
func (s *ExerciseService) Get(ctx context.Context, id string) (domain.Exercise, error) {
	return s.Store.Exercises().GetByID(ctx, id)
}

// Categories returns all exercise categories ordered by name.
func (s *ExerciseService) Categories(ctx context.Context) ([]domain.ExerciseCategory, error) {
	return s.Store.Exercises().Categories(ctx)
}

// EstimateCalories returns the estimated burn for performing an exercise for
// the given number of minutes. Exercises without a recorded rate use the
// library default.
func (s *ExerciseService) EstimateCalories(ctx context.Context, exerciseID string, minutes int) (int, error) {
	ex, err := s.Store.Exercises().GetByID(ctx, exerciseID)
	if err != nil {
		return 0, err
	}

	rate := domain.DefaultCaloriesPerMinute
	if ex.CaloriesPerMinute != nil {
		rate = *ex.CaloriesPerMinute
	}
	return int(math.Round(rate * float64(minutes))), nil
}

// Search returns up to 10 exercises whose name or muscle group matches the
// query. A blank query matches nothing.
func (s *ExerciseService) Search(ctx context.Context, query string) ([]domain.Exercise, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	return s.Store.Exercises().List(ctx, "", "", query, 10)
}
