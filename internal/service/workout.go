package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/fittrackhq/fittrack/internal/domain"
	"github.com/fittrackhq/fittrack/internal/store"
	"github.com/fittrackhq/fittrack/pkg/idx"
	"github.com/fittrackhq/fittrack/pkg/slogx"
)

// WorkoutPageSize is the fixed page size for workout listings.
const WorkoutPageSize = 10

// WorkoutInput is the mutable part of a workout, as submitted by the client.
type WorkoutInput struct {
	Name            string
	WorkoutDate     string // YYYY-MM-DD
	DurationMinutes *int
	TotalCalories   *int
	Notes           string
	Rating          *int
}

// EntryInput is one exercise performed within a workout.
type EntryInput struct {
	ExerciseID      string
	Sets            *int
	Reps            *int
	WeightKg        *float64
	DurationMinutes *int
	CaloriesBurned  *int
	Notes           string
}

// WorkoutPage is one page of a user's workout history.
type WorkoutPage struct {
	Workouts   []domain.WorkoutSummary
	Page       int
	TotalPages int
	TotalCount int
}

// WorkoutService owns the workout log. Every operation is scoped to the
// acting user; resources owned by others behave exactly like missing ones.
type WorkoutService struct {
	Store store.Store
}

func (s *WorkoutService) validate(in WorkoutInput) error {
	var messages []string
	if strings.TrimSpace(in.Name) == "" {
		messages = append(messages, "Workout name is required")
	}
	if in.WorkoutDate == "" {
		messages = append(messages, "Workout date is required")
	} else if _, err := time.Parse("2006-01-02", in.WorkoutDate); err != nil {
		messages = append(messages, "Invalid workout date")
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		messages = append(messages, "Rating must be between 1 and 5")
	}
	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}
	return nil
}

// List returns one page of the user's workouts, newest first.
func (s *WorkoutService) List(ctx context.Context, userID string, page int) (WorkoutPage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * WorkoutPageSize

	workouts, err := s.Store.Workouts().ListByUser(ctx, userID, WorkoutPageSize, offset)
	if err != nil {
		return WorkoutPage{}, err
	}
	total, err := s.Store.Workouts().CountByUser(ctx, userID)
	if err != nil {
		return WorkoutPage{}, err
	}

	totalPages := (total + WorkoutPageSize - 1) / WorkoutPageSize
	if totalPages < 1 {
		totalPages = 1
	}
	return WorkoutPage{
		Workouts:   workouts,
		Page:       page,
		TotalPages: totalPages,
		TotalCount: total,
	}, nil
}

// Create logs a new workout, optionally with its initial exercise entries,
// in one transaction. Entries with an empty exercise id are skipped.
func (s *WorkoutService) Create(ctx context.Context, userID string, in WorkoutInput, entries []EntryInput) (domain.Workout, error) {
	if err := s.validate(in); err != nil {
		return domain.Workout{}, err
	}

	w := domain.Workout{
		ID:              idx.New().String(),
		UserID:          userID,
		Name:            in.Name,
		WorkoutDate:     in.WorkoutDate,
		DurationMinutes: in.DurationMinutes,
		TotalCalories:   in.TotalCalories,
		Notes:           in.Notes,
		Rating:          in.Rating,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Workouts().Create(ctx, w); err != nil {
			return err
		}
		for _, e := range entries {
			if e.ExerciseID == "" {
				continue
			}
			entry := domain.WorkoutEntry{
				ID:              idx.New().String(),
				WorkoutID:       w.ID,
				ExerciseID:      e.ExerciseID,
				Sets:            e.Sets,
				Reps:            e.Reps,
				WeightKg:        e.WeightKg,
				DurationMinutes: e.DurationMinutes,
				CaloriesBurned:  e.CaloriesBurned,
				Notes:           e.Notes,
			}
			if err := tx.WorkoutEntries().Create(ctx, entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.Workout{}, err
	}

	slogx.FromContext(ctx).Info("workout created",
		slog.String("workout_id", w.ID),
		slog.String("user_id", userID))
	return w, nil
}

// Get returns one workout with its exercise entries. store.ErrNotFound for
// both missing and foreign-owned workouts.
func (s *WorkoutService) Get(ctx context.Context, id, userID string) (domain.Workout, []domain.WorkoutEntryDetail, error) {
	w, err := s.Store.Workouts().GetByID(ctx, id, userID)
	if err != nil {
		return domain.Workout{}, nil, err
	}
	entries, err := s.Store.WorkoutEntries().ListByWorkout(ctx, w.ID)
	if err != nil {
		return domain.Workout{}, nil, err
	}
	return w, entries, nil
}

// Update rewrites a workout's mutable fields.
func (s *WorkoutService) Update(ctx context.Context, id, userID string, in WorkoutInput) (domain.Workout, error) {
	if err := s.validate(in); err != nil {
		return domain.Workout{}, err
	}

	w := domain.Workout{
		ID:              id,
		UserID:          userID,
		Name:            in.Name,
		WorkoutDate:     in.WorkoutDate,
		DurationMinutes: in.DurationMinutes,
		TotalCalories:   in.TotalCalories,
		Notes:           in.Notes,
		Rating:          in.Rating,
	}
	if err := s.Store.Workouts().Update(ctx, w); err != nil {
		return domain.Workout{}, err
	}
	return s.Store.Workouts().GetByID(ctx, id, userID)
}

// Delete removes a workout and, via the schema's cascade, its entries.
func (s *WorkoutService) Delete(ctx context.Context, id, userID string) error {
	return s.Store.Workouts().Delete(ctx, id, userID)
}

// AddEntry attaches an exercise entry to a workout the user owns.
func (s *WorkoutService) AddEntry(ctx context.Context, workoutID, userID string, in EntryInput) (domain.WorkoutEntry, error) {
	if in.ExerciseID == "" {
		return domain.WorkoutEntry{}, &ValidationError{Messages: []string{"Exercise is required"}}
	}

	// Ownership gate before touching the entries table.
	if _, err := s.Store.Workouts().GetByID(ctx, workoutID, userID); err != nil {
		return domain.WorkoutEntry{}, err
	}
	if _, err := s.Store.Exercises().GetByID(ctx, in.ExerciseID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.WorkoutEntry{}, &ValidationError{Messages: []string{"Exercise not found"}}
		}
		return domain.WorkoutEntry{}, err
	}

	entry := domain.WorkoutEntry{
		ID:              idx.New().String(),
		WorkoutID:       workoutID,
		ExerciseID:      in.ExerciseID,
		Sets:            in.Sets,
		Reps:            in.Reps,
		WeightKg:        in.WeightKg,
		DurationMinutes: in.DurationMinutes,
		CaloriesBurned:  in.CaloriesBurned,
		Notes:           in.Notes,
	}
	if err := s.Store.WorkoutEntries().Create(ctx, entry); err != nil {
		return domain.WorkoutEntry{}, err
	}
	return entry, nil
}

// RemoveEntry deletes an exercise entry, resolving ownership through the
// entry's workout.
func (s *WorkoutService) RemoveEntry(ctx context.Context, entryID, userID string) error {
	entry, err := s.Store.WorkoutEntries().GetByIDForUser(ctx, entryID, userID)
	if err != nil {
		return err
	}
	return s.Store.WorkoutEntries().Delete(ctx, entry.ID)
}

// Recent returns the user's most recent workouts for the dashboard.
func (s *WorkoutService) Recent(ctx context.Context, userID string, limit int) ([]domain.WorkoutSummary, error) {
	if limit < 1 || limit > 50 {
		limit = 5
	}
	return s.Store.Workouts().Recent(ctx, userID, limit)
}
