package domain

import (
	"math"
	"time"
)

// Goal statuses.
const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusAbandoned = "abandoned"
)

// Goal is an owned resource tracking progress toward a target value.
type Goal struct {
	ID           string
	UserID       string
	Title        string
	Description  string
	GoalType     string
	TargetValue  *float64
	CurrentValue float64
	Unit         string
	StartDate    string // YYYY-MM-DD
	TargetDate   string // YYYY-MM-DD, empty when open-ended
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Progress returns the completion percentage, capped at 100. Goals without a
// positive target report zero.
func (g Goal) Progress() int {
	if g.TargetValue == nil || *g.TargetValue <= 0 {
		return 0
	}
	pct := int(math.Round(g.CurrentValue / *g.TargetValue * 100))
	return min(pct, 100)
}

// DaysRemaining returns the number of days until the target date, rounding
// partial days up. Negative for overdue goals. The second return is false
// when the goal has no target date.
func (g Goal) DaysRemaining(now time.Time) (int, bool) {
	if g.TargetDate == "" {
		return 0, false
	}
	target, err := time.Parse("2006-01-02", g.TargetDate)
	if err != nil {
		return 0, false
	}
	days := int(math.Ceil(target.Sub(now).Hours() / 24))
	return days, true
}

// ValidGoalStatus reports whether s is one of the known statuses.
func ValidGoalStatus(s string) bool {
	switch s {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusAbandoned:
		return true
	}
	return false
}
