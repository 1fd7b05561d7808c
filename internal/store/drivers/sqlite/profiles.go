package sqlite

import (
	"context"
	"database/sql"

	"github.com/fittrackhq/fittrack/internal/domain"
)

type profilesRepo struct {
	db dbtx
}

func (r *profilesRepo) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT user_id, first_name, last_name, date_of_birth, gender,
		       height_cm, weight_kg, activity_level
		FROM user_profiles WHERE user_id = ?`, userID)

	var p domain.Profile
	var dob, gender sql.NullString
	var height, weight sql.NullFloat64
	err := row.Scan(&p.UserID, &p.FirstName, &p.LastName, &dob, &gender,
		&height, &weight, &p.ActivityLevel)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	p.DateOfBirth = mapNullString(dob)
	p.Gender = mapNullString(gender)
	p.HeightCm = mapNullFloatPtr(height)
	p.WeightKg = mapNullFloatPtr(weight)
	return p, nil
}

func (r *profilesRepo) CreateProfile(ctx context.Context, p domain.Profile) error {
	activity := p.ActivityLevel
	if activity == "" {
		activity = domain.DefaultActivityLevel
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_profiles (user_id, first_name, last_name, date_of_birth, gender,
		                           height_cm, weight_kg, activity_level)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.UserID, p.FirstName, p.LastName,
		mapStringNull(p.DateOfBirth), mapStringNull(p.Gender),
		mapOptionalFloat(p.HeightCm), mapOptionalFloat(p.WeightKg), activity)
	return mapConstraint(err)
}

func (r *profilesRepo) UpdateProfile(ctx context.Context, p domain.Profile) error {
	activity := p.ActivityLevel
	if activity == "" {
		activity = domain.DefaultActivityLevel
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE user_profiles
		SET first_name = ?, last_name = ?, date_of_birth = ?, gender = ?,
		    height_cm = ?, weight_kg = ?, activity_level = ?
		WHERE user_id = ?`,
		p.FirstName, p.LastName,
		mapStringNull(p.DateOfBirth), mapStringNull(p.Gender),
		mapOptionalFloat(p.HeightCm), mapOptionalFloat(p.WeightKg), activity,
		p.UserID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// requireAffected turns a zero-row UPDATE/DELETE into ErrNotFound so callers
// can distinguish a missing (or foreign-owned) row from success.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}
