package fitsdk

import (
	"context"
	"net/http"
)

// ListGoals returns the user's goals, optionally filtered to one status.
func (c *Client) ListGoals(ctx context.Context, status string) ([]Goal, error) {
	path := query("/v1/goals", map[string]string{"status": status})
	var out []Goal
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateGoal records a new goal.
func (c *Client) CreateGoal(ctx context.Context, req GoalRequest) (*Goal, error) {
	var out Goal
	if err := c.doJSON(ctx, http.MethodPost, "/v1/goals", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetGoal fetches one goal.
func (c *Client) GetGoal(ctx context.Context, id string) (*Goal, error) {
	var out Goal
	if err := c.doJSON(ctx, http.MethodGet, "/v1/goals/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateGoal rewrites a goal's fields.
func (c *Client) UpdateGoal(ctx context.Context, id string, req GoalRequest) (*Goal, error) {
	var out Goal
	if err := c.doJSON(ctx, http.MethodPut, "/v1/goals/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateGoalProgress sets a goal's current value; the response reports
// whether this update completed the goal.
func (c *Client) UpdateGoalProgress(ctx context.Context, id string, currentValue float64) (*ProgressResponse, error) {
	var out ProgressResponse
	req := ProgressRequest{CurrentValue: currentValue}
	if err := c.doJSON(ctx, http.MethodPost, "/v1/goals/"+id+"/progress", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteGoal removes a goal.
func (c *Client) DeleteGoal(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/goals/"+id, nil, nil)
}
