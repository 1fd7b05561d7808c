package fitsdk

// RegisterRequest is the registration form.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
}

// LoginRequest is the login form.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login. The session token itself
// travels in the Set-Cookie header, not the body.
type AuthResponse struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	ExpiresAt string `json:"expires_at"`
}

// Profile is a user's personal details.
type Profile struct {
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	DateOfBirth   string   `json:"date_of_birth,omitempty"`
	Gender        string   `json:"gender,omitempty"`
	HeightCm      *float64 `json:"height_cm,omitempty"`
	WeightKg      *float64 `json:"weight_kg,omitempty"`
	ActivityLevel string   `json:"activity_level"`
}

// WorkoutRequest creates or updates a workout. Exercises is honored on
// create only.
type WorkoutRequest struct {
	Name            string         `json:"name"`
	WorkoutDate     string         `json:"workout_date"`
	DurationMinutes *int           `json:"duration_minutes,omitempty"`
	TotalCalories   *int           `json:"total_calories,omitempty"`
	Notes           string         `json:"notes,omitempty"`
	Rating          *int           `json:"rating,omitempty"`
	Exercises       []EntryRequest `json:"exercises,omitempty"`
}

// EntryRequest attaches one exercise to a workout.
type EntryRequest struct {
	ExerciseID      string   `json:"exercise_id"`
	Sets            *int     `json:"sets,omitempty"`
	Reps            *int     `json:"reps,omitempty"`
	WeightKg        *float64 `json:"weight_kg,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
	CaloriesBurned  *int     `json:"calories_burned,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}

// Workout is one logged workout.
type Workout struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	WorkoutDate     string `json:"workout_date"`
	DurationMinutes *int   `json:"duration_minutes,omitempty"`
	TotalCalories   *int   `json:"total_calories,omitempty"`
	Notes           string `json:"notes,omitempty"`
	Rating          *int   `json:"rating,omitempty"`
	ExerciseCount   int    `json:"exercise_count"`
}

// WorkoutDetail is a workout with its exercise entries.
type WorkoutDetail struct {
	Workout
	Exercises []Entry `json:"exercises"`
}

// Entry is one exercise performed within a workout.
type Entry struct {
	ID              string   `json:"id"`
	ExerciseID      string   `json:"exercise_id"`
	ExerciseName    string   `json:"exercise_name"`
	MuscleGroup     string   `json:"muscle_group,omitempty"`
	CategoryName    string   `json:"category_name,omitempty"`
	Sets            *int     `json:"sets,omitempty"`
	Reps            *int     `json:"reps,omitempty"`
	WeightKg        *float64 `json:"weight_kg,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
	CaloriesBurned  *int     `json:"calories_burned,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}

// WorkoutList is one page of workouts.
type WorkoutList struct {
	Workouts   []Workout `json:"workouts"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
	Total      int       `json:"total"`
}

// GoalRequest creates or updates a goal.
type GoalRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	GoalType     string   `json:"goal_type,omitempty"`
	TargetValue  *float64 `json:"target_value,omitempty"`
	CurrentValue float64  `json:"current_value,omitempty"`
	Unit         string   `json:"unit,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	TargetDate   string   `json:"target_date,omitempty"`
	Status       string   `json:"status,omitempty"`
}

// ProgressRequest updates a goal's current value.
type ProgressRequest struct {
	CurrentValue float64 `json:"current_value"`
}

// Goal is one tracked goal. Progress is the completion percentage capped at
// 100; DaysRemaining is nil for open-ended goals.
type Goal struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	GoalType      string   `json:"goal_type,omitempty"`
	TargetValue   *float64 `json:"target_value,omitempty"`
	CurrentValue  float64  `json:"current_value"`
	Unit          string   `json:"unit,omitempty"`
	StartDate     string   `json:"start_date,omitempty"`
	TargetDate    string   `json:"target_date,omitempty"`
	Status        string   `json:"status"`
	Progress      int      `json:"progress"`
	DaysRemaining *int     `json:"days_remaining,omitempty"`
}

// ProgressResponse reports a progress update, including whether this update
// completed the goal.
type ProgressResponse struct {
	Goal      Goal `json:"goal"`
	Completed bool `json:"completed"`
}

// Exercise is one library exercise.
type Exercise struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	CategoryName      string   `json:"category_name,omitempty"`
	MuscleGroup       string   `json:"muscle_group,omitempty"`
	Difficulty        string   `json:"difficulty,omitempty"`
	CaloriesPerMinute *float64 `json:"calories_per_minute,omitempty"`
}

// Category is one exercise category.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CaloriesResponse is a calorie estimate for an exercise and duration.
type CaloriesResponse struct {
	Calories int `json:"calories"`
}

// StatsResponse bundles the dashboard aggregates.
type StatsResponse struct {
	Stats       Totals          `json:"stats"`
	WorkoutData []DailyActivity `json:"workout_data"`
	Goals       []Goal          `json:"goals"`
}

// Totals is a user's lifetime workout aggregates.
type Totals struct {
	TotalWorkouts int `json:"total_workouts"`
	TotalMinutes  int `json:"total_minutes"`
	TotalCalories int `json:"total_calories"`
}

// DailyActivity is one day's aggregated workout activity.
type DailyActivity struct {
	Date     string `json:"date"`
	Minutes  int    `json:"minutes"`
	Calories int    `json:"calories"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Sessions string `json:"sessions"`
}

// ErrorResponse is the JSON error envelope as documented in the API. Form
// echoes the submitted non-password registration values on validation and
// conflict failures so a client can redisplay the form.
type ErrorResponse struct {
	Error  string            `json:"error,omitempty"`
	Errors []string          `json:"errors,omitempty"`
	Form   map[string]string `json:"form,omitempty"`
}
