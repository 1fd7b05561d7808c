package sqlite

import (
	"context"
	"database/sql"

	"github.com/fittrackhq/fittrack/internal/domain"
)

type workoutsRepo struct {
	db dbtx
}

const workoutSummarySelect = `
	SELECT w.id, w.user_id, w.name, w.workout_date, w.duration_minutes,
	       w.total_calories, w.notes, w.rating, w.created_at, w.updated_at,
	       COUNT(we.id) AS exercise_count
	FROM workouts w
	LEFT JOIN workout_exercises we ON w.id = we.workout_id`

func (r *workoutsRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.WorkoutSummary, error) {
	rows, err := r.db.QueryContext(ctx, workoutSummarySelect+`
		WHERE w.user_id = ?
		GROUP BY w.id
		ORDER BY w.workout_date DESC
		LIMIT ? OFFSET ?`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWorkoutSummaries(rows)
}

func (r *workoutsRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM workouts WHERE user_id = ?`, userID).Scan(&count)
	return count, err
}

func (r *workoutsRepo) GetByID(ctx context.Context, id, userID string) (domain.Workout, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, workout_date, duration_minutes,
		       total_calories, notes, rating, created_at, updated_at
		FROM workouts WHERE id = ? AND user_id = ?`, id, userID)
	return scanWorkout(row)
}

func (r *workoutsRepo) Create(ctx context.Context, w domain.Workout) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO workouts (id, user_id, name, workout_date, duration_minutes,
		                      total_calories, notes, rating)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID, w.UserID, w.Name, w.WorkoutDate,
		mapOptionalInt(w.DurationMinutes), mapOptionalInt(w.TotalCalories),
		w.Notes, mapOptionalInt(w.Rating))
	return err
}

func (r *workoutsRepo) Update(ctx context.Context, w domain.Workout) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE workouts
		SET name = ?, workout_date = ?, duration_minutes = ?, total_calories = ?,
		    notes = ?, rating = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND user_id = ?`,
		w.Name, w.WorkoutDate,
		mapOptionalInt(w.DurationMinutes), mapOptionalInt(w.TotalCalories),
		w.Notes, mapOptionalInt(w.Rating),
		w.ID, w.UserID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *workoutsRepo) Delete(ctx context.Context, id, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM workouts WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *workoutsRepo) Recent(ctx context.Context, userID string, limit int) ([]domain.WorkoutSummary, error) {
	rows, err := r.db.QueryContext(ctx, workoutSummarySelect+`
		WHERE w.user_id = ?
		GROUP BY w.id
		ORDER BY w.workout_date DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWorkoutSummaries(rows)
}

func scanWorkout(row *sql.Row) (domain.Workout, error) {
	var w domain.Workout
	var duration, calories, rating sql.NullInt64
	err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.WorkoutDate,
		&duration, &calories, &w.Notes, &rating, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return domain.Workout{}, mapNotFound(err)
	}
	w.DurationMinutes = mapNullIntPtr(duration)
	w.TotalCalories = mapNullIntPtr(calories)
	w.Rating = mapNullIntPtr(rating)
	return w, nil
}

func scanWorkoutSummaries(rows *sql.Rows) ([]domain.WorkoutSummary, error) {
	var out []domain.WorkoutSummary
	for rows.Next() {
		var s domain.WorkoutSummary
		var duration, calories, rating sql.NullInt64
		err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.WorkoutDate,
			&duration, &calories, &s.Notes, &rating,
			&s.CreatedAt, &s.UpdatedAt, &s.ExerciseCount)
		if err != nil {
			return nil, err
		}
		s.DurationMinutes = mapNullIntPtr(duration)
		s.TotalCalories = mapNullIntPtr(calories)
		s.Rating = mapNullIntPtr(rating)
		out = append(out, s)
	}
	return out, rows.Err()
}
