package fitsdk

import (
	"context"
	"net/http"
	"strconv"
)

// ListWorkouts returns one page of the user's workouts, newest first.
func (c *Client) ListWorkouts(ctx context.Context, page int) (*WorkoutList, error) {
	path := query("/v1/workouts", map[string]string{
		"page": strconv.Itoa(page),
	})
	var out WorkoutList
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateWorkout logs a new workout, optionally with initial exercises.
func (c *Client) CreateWorkout(ctx context.Context, req WorkoutRequest) (*WorkoutDetail, error) {
	var out WorkoutDetail
	if err := c.doJSON(ctx, http.MethodPost, "/v1/workouts", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetWorkout fetches one workout with its exercise entries.
func (c *Client) GetWorkout(ctx context.Context, id string) (*WorkoutDetail, error) {
	var out WorkoutDetail
	if err := c.doJSON(ctx, http.MethodGet, "/v1/workouts/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateWorkout rewrites a workout's fields.
func (c *Client) UpdateWorkout(ctx context.Context, id string, req WorkoutRequest) (*WorkoutDetail, error) {
	var out WorkoutDetail
	if err := c.doJSON(ctx, http.MethodPut, "/v1/workouts/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteWorkout removes a workout and its entries.
func (c *Client) DeleteWorkout(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/workouts/"+id, nil, nil)
}

// AddWorkoutExercise attaches an exercise entry to a workout.
func (c *Client) AddWorkoutExercise(ctx context.Context, workoutID string, req EntryRequest) (*Entry, error) {
	var out Entry
	if err := c.doJSON(ctx, http.MethodPost, "/v1/workouts/"+workoutID+"/exercises", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveWorkoutExercise deletes one exercise entry from a workout.
func (c *Client) RemoveWorkoutExercise(ctx context.Context, workoutID, entryID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/workouts/"+workoutID+"/exercises/"+entryID, nil, nil)
}

// RecentWorkouts returns the user's most recent workouts.
func (c *Client) RecentWorkouts(ctx context.Context, limit int) ([]Workout, error) {
	path := query("/v1/workouts/recent", map[string]string{
		"limit": strconv.Itoa(limit),
	})
	var out []Workout
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
