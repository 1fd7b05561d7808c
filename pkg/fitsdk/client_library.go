package fitsdk

import (
	"context"
	"net/http"
	"strconv"
)

// ListExercises returns library exercises matching the optional filters.
func (c *Client) ListExercises(ctx context.Context, category, difficulty, search string) ([]Exercise, error) {
	path := query("/v1/exercises", map[string]string{
		"category":   category,
		"difficulty": difficulty,
		"search":     search,
	})
	var out []Exercise
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetExercise fetches one library exercise.
func (c *Client) GetExercise(ctx context.Context, id string) (*Exercise, error) {
	var out Exercise
	if err := c.doJSON(ctx, http.MethodGet, "/v1/exercises/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCategories returns all exercise categories.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := c.doJSON(ctx, http.MethodGet, "/v1/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EstimateCalories asks for the calorie estimate of performing an exercise
// for the given number of minutes.
func (c *Client) EstimateCalories(ctx context.Context, exerciseID string, minutes int) (int, error) {
	path := query("/v1/exercises/"+exerciseID+"/calories", map[string]string{
		"duration": strconv.Itoa(minutes),
	})
	var out CaloriesResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return 0, err
	}
	return out.Calories, nil
}

// Search finds exercises by name or muscle group.
func (c *Client) Search(ctx context.Context, q string) ([]Exercise, error) {
	path := query("/v1/search", map[string]string{"q": q})
	var out []Exercise
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetStats returns the signed-in user's dashboard aggregates.
func (c *Client) GetStats(ctx context.Context) (*StatsResponse, error) {
	var out StatsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
