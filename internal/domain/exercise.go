package domain

// ExerciseCategory groups exercises in the public library.
type ExerciseCategory struct {
	ID          string
	Name        string
	Description string
}

// Exercise is a public library entry; it carries no owner.
type Exercise struct {
	ID                string
	CategoryID        string
	CategoryName      string
	Name              string
	Description       string
	MuscleGroup       string
	Difficulty        string
	CaloriesPerMinute *float64
}

// DefaultCaloriesPerMinute is used for calorie estimates when an exercise has
// no recorded burn rate.
const DefaultCaloriesPerMinute = 5.0
