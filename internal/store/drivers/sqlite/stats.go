package sqlite

import (
	"context"

	"github.com/fittrackhq/fittrack/internal/domain"
)

type statsRepo struct {
	db dbtx
}

func (r *statsRepo) Totals(ctx context.Context, userID string) (domain.UserTotals, error) {
	var t domain.UserTotals
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(duration_minutes), 0),
		       COALESCE(SUM(total_calories), 0)
		FROM workouts WHERE user_id = ?`, userID).
		Scan(&t.TotalWorkouts, &t.TotalMinutes, &t.TotalCalories)
	return t, err
}

func (r *statsRepo) DailyActivity(ctx context.Context, userID, since string) ([]domain.DailyActivity, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT workout_date,
		       COALESCE(SUM(duration_minutes), 0),
		       COALESCE(SUM(total_calories), 0)
		FROM workouts
		WHERE user_id = ? AND workout_date >= ?
		GROUP BY workout_date
		ORDER BY workout_date`, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DailyActivity
	for rows.Next() {
		var d domain.DailyActivity
		if err := rows.Scan(&d.Date, &d.Minutes, &d.Calories); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
