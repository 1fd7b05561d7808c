package store

import (
	"context"
	"errors"

	"github.com/fittrackhq/fittrack/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
//
// Ownership contract: every repository method taking a userID alongside a
// resource id filters by both, and reports ErrNotFound when the row exists
// but belongs to someone else. Handlers therefore cannot leak whether a
// foreign resource exists.
type Store interface {
	Users() Users
	Profiles() Profiles
	Workouts() Workouts
	WorkoutEntries() WorkoutEntries
	Goals() Goals
	Exercises() Exercises
	Stats() Stats

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, rolling back if fn returns
	// an error and committing otherwise. Preferred over Tx for most uses.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// GetUserByEmail is used for the registration uniqueness check.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the username or email unique
	// constraint trips.
	CreateUser(ctx context.Context, u domain.User) error

	// CountUsers returns the total number of registered users.
	CountUsers(ctx context.Context) (int, error)
}

type Profiles interface {
	// GetProfile returns the profile row for a user, ErrNotFound if absent.
	GetProfile(ctx context.Context, userID string) (domain.Profile, error)

	// CreateProfile inserts the profile row for a user.
	CreateProfile(ctx context.Context, p domain.Profile) error

	// UpdateProfile replaces all mutable profile fields.
	UpdateProfile(ctx context.Context, p domain.Profile) error
}

type Workouts interface {
	// ListByUser returns a page of the user's workouts, newest first, each
	// with its exercise entry count.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.WorkoutSummary, error)

	// CountByUser returns the user's total workout count for pagination.
	CountByUser(ctx context.Context, userID string) (int, error)

	// GetByID returns a workout only if it belongs to userID.
	GetByID(ctx context.Context, id, userID string) (domain.Workout, error)

	// Create inserts a new workout row.
	Create(ctx context.Context, w domain.Workout) error

	// Update rewrites mutable fields; ErrNotFound if the row is absent or
	// owned by someone else.
	Update(ctx context.Context, w domain.Workout) error

	// Delete removes the workout; entries cascade. ErrNotFound on owner
	// mismatch.
	Delete(ctx context.Context, id, userID string) error

	// Recent returns the user's most recent workouts with entry counts.
	Recent(ctx context.Context, userID string, limit int) ([]domain.WorkoutSummary, error)
}

type WorkoutEntries interface {
	// ListByWorkout returns the entries of one workout with exercise
	// metadata joined in.
	ListByWorkout(ctx context.Context, workoutID string) ([]domain.WorkoutEntryDetail, error)

	// Create inserts an entry. The caller must have checked workout
	// ownership first.
	Create(ctx context.Context, e domain.WorkoutEntry) error

	// GetByIDForUser resolves an entry through its workout's owner;
	// ErrNotFound unless the workout belongs to userID.
	GetByIDForUser(ctx context.Context, id, userID string) (domain.WorkoutEntry, error)

	// Delete removes an entry by id.
	Delete(ctx context.Context, id string) error
}

type Goals interface {
	// ListByUser returns the user's goals, active first then by target
	// date. status filters to a single status when non-empty.
	ListByUser(ctx context.Context, userID, status string) ([]domain.Goal, error)

	// GetByID returns a goal only if it belongs to userID.
	GetByID(ctx context.Context, id, userID string) (domain.Goal, error)

	// Create inserts a new goal row.
	Create(ctx context.Context, g domain.Goal) error

	// Update rewrites mutable fields; ErrNotFound on owner mismatch.
	Update(ctx context.Context, g domain.Goal) error

	// UpdateProgress sets current_value and status; ErrNotFound on owner
	// mismatch.
	UpdateProgress(ctx context.Context, id, userID string, currentValue float64, status string) error

	// Delete removes the goal; ErrNotFound on owner mismatch.
	Delete(ctx context.Context, id, userID string) error

	// TopActive returns up to limit active goals with a positive target,
	// ordered by completion percentage descending.
	TopActive(ctx context.Context, userID string, limit int) ([]domain.Goal, error)
}

type Exercises interface {
	// List returns library exercises filtered by optional category name,
	// difficulty and case-insensitive name/muscle-group search.
	List(ctx context.Context, category, difficulty, search string, limit int) ([]domain.Exercise, error)

	// GetByID returns one library exercise.
	GetByID(ctx context.Context, id string) (domain.Exercise, error)

	// Categories returns all categories ordered by name.
	Categories(ctx context.Context) ([]domain.ExerciseCategory, error)
}

type Stats interface {
	// Totals aggregates the user's whole workout history.
	Totals(ctx context.Context, userID string) (domain.UserTotals, error)

	// DailyActivity returns per-day minutes/calories for workouts dated on
	// or after since (YYYY-MM-DD), oldest first.
	DailyActivity(ctx context.Context, userID, since string) ([]domain.DailyActivity, error)
}
