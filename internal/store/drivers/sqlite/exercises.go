package sqlite

import (
	"context"
	"database/sql"

	"github.com/fittrackhq/fittrack/internal/domain"
)

type exercisesRepo struct {
	db dbtx
}

const exerciseSelect = `
	SELECT e.id, COALESCE(e.category_id, ''), COALESCE(c.name, ''), e.name,
	       e.description, e.muscle_group, e.difficulty, e.calories_per_minute
	FROM exercises e
	LEFT JOIN exercise_categories c ON e.category_id = c.id`

func (r *exercisesRepo) List(ctx context.Context, category, difficulty, search string, limit int) ([]domain.Exercise, error) {
	query := exerciseSelect + ` WHERE 1=1`
	var args []any

	if category != "" {
		query += ` AND c.name = ?`
		args = append(args, category)
	}
	if difficulty != "" {
		query += ` AND e.difficulty = ?`
		args = append(args, difficulty)
	}
	if search != "" {
		query += ` AND (e.name LIKE ? OR e.muscle_group LIKE ?)`
		term := "%" + search + "%"
		args = append(args, term, term)
	}
	query += ` ORDER BY e.name LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Exercise
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *exercisesRepo) GetByID(ctx context.Context, id string) (domain.Exercise, error) {
	row := r.db.QueryRowContext(ctx, exerciseSelect+` WHERE e.id = ?`, id)

	var e domain.Exercise
	var cpm sql.NullFloat64
	err := row.Scan(&e.ID, &e.CategoryID, &e.CategoryName, &e.Name,
		&e.Description, &e.MuscleGroup, &e.Difficulty, &cpm)
	if err != nil {
		return domain.Exercise{}, mapNotFound(err)
	}
	e.CaloriesPerMinute = mapNullFloatPtr(cpm)
	return e, nil
}

func (r *exercisesRepo) Categories(ctx context.Context) ([]domain.ExerciseCategory, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description FROM exercise_categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ExerciseCategory
	for rows.Next() {
		var c domain.ExerciseCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanExercise(rows *sql.Rows) (domain.Exercise, error) {
	var e domain.Exercise
	var cpm sql.NullFloat64
	err := rows.Scan(&e.ID, &e.CategoryID, &e.CategoryName, &e.Name,
		&e.Description, &e.MuscleGroup, &e.Difficulty, &cpm)
	if err != nil {
		return domain.Exercise{}, err
	}
	e.CaloriesPerMinute = mapNullFloatPtr(cpm)
	return e, nil
}
