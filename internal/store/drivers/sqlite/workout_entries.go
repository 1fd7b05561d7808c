package sqlite

import (
	"context"
	"database/sql"

	"github.com/fittrackhq/fittrack/internal/domain"
)

type workoutEntriesRepo struct {
	db dbtx
}

func (r *workoutEntriesRepo) ListByWorkout(ctx context.Context, workoutID string) ([]domain.WorkoutEntryDetail, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT we.id, we.workout_id, we.exercise_id, we.sets, we.reps,
		       we.weight_kg, we.duration_minutes, we.calories_burned, we.notes,
		       e.name, e.muscle_group, COALESCE(c.name, '')
		FROM workout_exercises we
		JOIN exercises e ON we.exercise_id = e.id
		LEFT JOIN exercise_categories c ON e.category_id = c.id
		WHERE we.workout_id = ?
		ORDER BY we.id`, workoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.WorkoutEntryDetail
	for rows.Next() {
		var d domain.WorkoutEntryDetail
		var sets, reps, duration, calories sql.NullInt64
		var weight sql.NullFloat64
		err := rows.Scan(&d.ID, &d.WorkoutID, &d.ExerciseID, &sets, &reps,
			&weight, &duration, &calories, &d.Notes,
			&d.ExerciseName, &d.MuscleGroup, &d.CategoryName)
		if err != nil {
			return nil, err
		}
		d.Sets = mapNullIntPtr(sets)
		d.Reps = mapNullIntPtr(reps)
		d.WeightKg = mapNullFloatPtr(weight)
		d.DurationMinutes = mapNullIntPtr(duration)
		d.CaloriesBurned = mapNullIntPtr(calories)
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *workoutEntriesRepo) Create(ctx context.Context, e domain.WorkoutEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO workout_exercises (id, workout_id, exercise_id, sets, reps,
		                               weight_kg, duration_minutes, calories_burned, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.WorkoutID, e.ExerciseID,
		mapOptionalInt(e.Sets), mapOptionalInt(e.Reps),
		mapOptionalFloat(e.WeightKg), mapOptionalInt(e.DurationMinutes),
		mapOptionalInt(e.CaloriesBurned), e.Notes)
	return err
}

func (r *workoutEntriesRepo) GetByIDForUser(ctx context.Context, id, userID string) (domain.WorkoutEntry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT we.id, we.workout_id, we.exercise_id, we.sets, we.reps,
		       we.weight_kg, we.duration_minutes, we.calories_burned, we.notes
		FROM workout_exercises we
		JOIN workouts w ON we.workout_id = w.id
		WHERE we.id = ? AND w.user_id = ?`, id, userID)

	var e domain.WorkoutEntry
	var sets, reps, duration, calories sql.NullInt64
	var weight sql.NullFloat64
	err := row.Scan(&e.ID, &e.WorkoutID, &e.ExerciseID, &sets, &reps,
		&weight, &duration, &calories, &e.Notes)
	if err != nil {
		return domain.WorkoutEntry{}, mapNotFound(err)
	}
	e.Sets = mapNullIntPtr(sets)
	e.Reps = mapNullIntPtr(reps)
	e.WeightKg = mapNullFloatPtr(weight)
	e.DurationMinutes = mapNullIntPtr(duration)
	e.CaloriesBurned = mapNullIntPtr(calories)
	return e, nil
}

func (r *workoutEntriesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM workout_exercises WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
