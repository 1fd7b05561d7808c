package domain

import "time"

// Workout is an owned resource: every store access is scoped by UserID.
type Workout struct {
	ID              string
	UserID          string
	Name            string
	WorkoutDate     string // YYYY-MM-DD
	DurationMinutes *int
	TotalCalories   *int
	Notes           string
	Rating          *int // 1..5
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// WorkoutSummary is a workout row joined with its exercise entry count, as
// shown in lists and dashboards.
type WorkoutSummary struct {
	Workout
	ExerciseCount int
}

// WorkoutEntry is one exercise performed within a workout. Ownership is
// transitive through the workout row.
type WorkoutEntry struct {
	ID              string
	WorkoutID       string
	ExerciseID      string
	Sets            *int
	Reps            *int
	WeightKg        *float64
	DurationMinutes *int
	CaloriesBurned  *int
	Notes           string
}

// WorkoutEntryDetail joins an entry with its exercise metadata for display.
type WorkoutEntryDetail struct {
	WorkoutEntry
	ExerciseName string
	MuscleGroup  string
	CategoryName string
}
