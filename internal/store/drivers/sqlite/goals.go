package sqlite

import (
	"context"
	"database/sql"

	"github.com/fittrackhq/fittrack/internal/domain"
)

type goalsRepo struct {
	db dbtx
}

const goalColumns = `id, user_id, title, description, goal_type, target_value,
	current_value, unit, start_date, target_date, status, created_at, updated_at`

func (r *goalsRepo) ListByUser(ctx context.Context, userID, status string) ([]domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = ?`
	args := []any{userID}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, status)
	}
	// Active goals first, then by soonest target date. NULL target dates sort
	// last within each status group.
	query += `
		ORDER BY CASE status
			WHEN 'active' THEN 0
			WHEN 'completed' THEN 1
			ELSE 2
		END, target_date IS NULL, target_date ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGoals(rows)
}

func (r *goalsRepo) GetByID(ctx context.Context, id, userID string) (domain.Goal, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE id = ? AND user_id = ?`, id, userID)
	return scanGoal(row)
}

func (r *goalsRepo) Create(ctx context.Context, g domain.Goal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO goals (id, user_id, title, description, goal_type, target_value,
		                   current_value, unit, start_date, target_date, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.UserID, g.Title, g.Description, g.GoalType,
		mapOptionalFloat(g.TargetValue), g.CurrentValue, g.Unit,
		mapStringNull(g.StartDate), mapStringNull(g.TargetDate), g.Status)
	return err
}

func (r *goalsRepo) Update(ctx context.Context, g domain.Goal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE goals
		SET title = ?, description = ?, goal_type = ?, target_value = ?,
		    current_value = ?, unit = ?, start_date = ?, target_date = ?,
		    status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND user_id = ?`,
		g.Title, g.Description, g.GoalType,
		mapOptionalFloat(g.TargetValue), g.CurrentValue, g.Unit,
		mapStringNull(g.StartDate), mapStringNull(g.TargetDate), g.Status,
		g.ID, g.UserID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *goalsRepo) UpdateProgress(ctx context.Context, id, userID string, currentValue float64, status string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE goals
		SET current_value = ?, status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND user_id = ?`,
		currentValue, status, id, userID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *goalsRepo) Delete(ctx context.Context, id, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM goals WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *goalsRepo) TopActive(ctx context.Context, userID string, limit int) ([]domain.Goal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+goalColumns+`
		FROM goals
		WHERE user_id = ? AND status = 'active' AND target_value > 0
		ORDER BY current_value / target_value DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGoals(rows)
}

func scanGoal(row *sql.Row) (domain.Goal, error) {
	var g domain.Goal
	var target sql.NullFloat64
	var start, targetDate sql.NullString
	err := row.Scan(&g.ID, &g.UserID, &g.Title, &g.Description, &g.GoalType,
		&target, &g.CurrentValue, &g.Unit, &start, &targetDate, &g.Status,
		&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return domain.Goal{}, mapNotFound(err)
	}
	g.TargetValue = mapNullFloatPtr(target)
	g.StartDate = mapNullString(start)
	g.TargetDate = mapNullString(targetDate)
	return g, nil
}

func scanGoals(rows *sql.Rows) ([]domain.Goal, error) {
	var out []domain.Goal
	for rows.Next() {
		var g domain.Goal
		var target sql.NullFloat64
		var start, targetDate sql.NullString
		err := rows.Scan(&g.ID, &g.UserID, &g.Title, &g.Description, &g.GoalType,
			&target, &g.CurrentValue, &g.Unit, &start, &targetDate, &g.Status,
			&g.CreatedAt, &g.UpdatedAt)
		if err != nil {
			return nil, err
		}
		g.TargetValue = mapNullFloatPtr(target)
		g.StartDate = mapNullString(start)
		g.TargetDate = mapNullString(targetDate)
		out = append(out, g)
	}
	return out, rows.Err()
}
