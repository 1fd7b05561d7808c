package http

import (
	"time"

	"github.com/fittrackhq/fittrack/internal/domain"
	"github.com/fittrackhq/fittrack/pkg/fitsdk"
)

func toWorkout(w domain.Workout, entryCount int) fitsdk.Workout {
	return fitsdk.Workout{
		ID:              w.ID,
		Name:            w.Name,
		WorkoutDate:     w.WorkoutDate,
		DurationMinutes: w.DurationMinutes,
		TotalCalories:   w.TotalCalories,
		Notes:           w.Notes,
		Rating:          w.Rating,
		ExerciseCount:   entryCount,
	}
}

func toWorkoutDetail(w domain.Workout, entries []domain.WorkoutEntryDetail) fitsdk.WorkoutDetail {
	out := fitsdk.WorkoutDetail{
		Workout:   toWorkout(w, len(entries)),
		Exercises: make([]fitsdk.Entry, 0, len(entries)),
	}
	for _, e := range entries {
		out.Exercises = append(out.Exercises, fitsdk.Entry{
			ID:              e.ID,
			ExerciseID:      e.ExerciseID,
			ExerciseName:    e.ExerciseName,
			MuscleGroup:     e.MuscleGroup,
			CategoryName:    e.CategoryName,
			Sets:            e.Sets,
			Reps:            e.Reps,
			WeightKg:        e.WeightKg,
			DurationMinutes: e.DurationMinutes,
			CaloriesBurned:  e.CaloriesBurned,
			Notes:           e.Notes,
		})
	}
	return out
}

func toGoal(g domain.Goal, now time.Time) fitsdk.Goal {
	out := fitsdk.Goal{
		ID:           g.ID,
		Title:        g.Title,
		Description:  g.Description,
		GoalType:     g.GoalType,
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Unit:         g.Unit,
		StartDate:    g.StartDate,
		TargetDate:   g.TargetDate,
		Status:       g.Status,
		Progress:     g.Progress(),
	}
	if days, ok := g.DaysRemaining(now); ok {
		out.DaysRemaining = &days
	}
	return out
}

func toGoals(goals []domain.Goal, now time.Time) []fitsdk.Goal {
	out := make([]fitsdk.Goal, 0, len(goals))
	for _, g := range goals {
		out = append(out, toGoal(g, now))
	}
	return out
}

func toExercise(e domain.Exercise) fitsdk.Exercise {
	return fitsdk.Exercise{
		ID:                e.ID,
		Name:              e.Name,
		CategoryName:      e.CategoryName,
		MuscleGroup:       e.MuscleGroup,
		Difficulty:        e.Difficulty,
		CaloriesPerMinute: e.CaloriesPerMinute,
	}
}

func toExercises(exercises []domain.Exercise) []fitsdk.Exercise {
	out := make([]fitsdk.Exercise, 0, len(exercises))
	for _, e := range exercises {
		out = append(out, toExercise(e))
	}
	return out
}

func toProfile(p domain.Profile) fitsdk.Profile {
	return fitsdk.Profile{
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		DateOfBirth:   p.DateOfBirth,
		Gender:        p.Gender,
		HeightCm:      p.HeightCm,
		WeightKg:      p.WeightKg,
		ActivityLevel: p.ActivityLevel,
	}
}
