package domain

// UserTotals aggregates a user's workout history for the dashboard.
type UserTotals struct {
	TotalWorkouts int
	TotalMinutes  int
	TotalCalories int
}

// DailyActivity is one point of the last-30-days activity series.
type DailyActivity struct {
	Date     string // YYYY-MM-DD
	Minutes  int
	Calories int
}
