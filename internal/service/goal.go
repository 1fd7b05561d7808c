package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fittrackhq/fittrack/internal/domain"
	"github.com/fittrackhq/fittrack/internal/store"
	"github.com/fittrackhq/fittrack/pkg/idx"
	"github.com/fittrackhq/fittrack/pkg/slogx"
)

// GoalInput is the mutable part of a goal, as submitted by the client.
type GoalInput struct {
	Title        string
	Description  string
	GoalType     string
	TargetValue  *float64
	CurrentValue float64
	Unit         string
	StartDate    string // YYYY-MM-DD
	TargetDate   string // YYYY-MM-DD
	Status       string
}

// GoalService owns goal tracking. Every operation is scoped to the acting
// user.
type GoalService struct {
	Store store.Store
}

func (s *GoalService) validate(in GoalInput) error {
	var messages []string
	if strings.TrimSpace(in.Title) == "" {
		messages = append(messages, "Goal title is required")
	}
	if in.Status != "" && !domain.ValidGoalStatus(in.Status) {
		messages = append(messages, "Invalid goal status")
	}
	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}
	return nil
}

// List returns the user's goals, active first then by soonest target date.
// status narrows to a single status when non-empty.
func (s *GoalService) List(ctx context.Context, userID, status string) ([]domain.Goal, error) {
	if status != "" && !domain.ValidGoalStatus(status) {
		return nil, &ValidationError{Messages: []string{"Invalid goal status"}}
	}
	return s.Store.Goals().ListByUser(ctx, userID, status)
}

// Get returns one goal. store.ErrNotFound for both missing and foreign-owned
// goals.
func (s *GoalService) Get(ctx context.Context, id, userID string) (domain.Goal, error) {
	return s.Store.Goals().GetByID(ctx, id, userID)
}

// Create records a new goal, defaulting status to active.
func (s *GoalService) Create(ctx context.Context, userID string, in GoalInput) (domain.Goal, error) {
	if err := s.validate(in); err != nil {
		return domain.Goal{}, err
	}

	status := in.Status
	if status == "" {
		status = domain.GoalStatusActive
	}
	g := domain.Goal{
		ID:           idx.New().String(),
		UserID:       userID,
		Title:        in.Title,
		Description:  in.Description,
		GoalType:     in.GoalType,
		TargetValue:  in.TargetValue,
		CurrentValue: in.CurrentValue,
		Unit:         in.Unit,
		StartDate:    in.StartDate,
		TargetDate:   in.TargetDate,
		Status:       status,
	}
	if err := s.Store.Goals().Create(ctx, g); err != nil {
		return domain.Goal{}, err
	}

	slogx.FromContext(ctx).Info("goal created",
		slog.String("goal_id", g.ID),
		slog.String("user_id", userID))
	return g, nil
}

// Update rewrites a goal's mutable fields.
func (s *GoalService) Update(ctx context.Context, id, userID string, in GoalInput) (domain.Goal, error) {
	if err := s.validate(in); err != nil {
		return domain.Goal{}, err
	}

	// An omitted status keeps the stored one; a completed goal does not
	// silently reactivate on an unrelated edit.
	status := in.Status
	if status == "" {
		existing, err := s.Store.Goals().GetByID(ctx, id, userID)
		if err != nil {
			return domain.Goal{}, err
		}
		status = existing.Status
	}
	g := domain.Goal{
		ID:           id,
		UserID:       userID,
		Title:        in.Title,
		Description:  in.Description,
		GoalType:     in.GoalType,
		TargetValue:  in.TargetValue,
		CurrentValue: in.CurrentValue,
		Unit:         in.Unit,
		StartDate:    in.StartDate,
		TargetDate:   in.TargetDate,
		Status:       status,
	}
	if err := s.Store.Goals().Update(ctx, g); err != nil {
		return domain.Goal{}, err
	}
	return s.Store.Goals().GetByID(ctx, id, userID)
}

// UpdateProgress sets the goal's current value. A goal that reaches its
// target flips to completed automatically; the returned bool reports whether
// that happened on this call.
func (s *GoalService) UpdateProgress(ctx context.Context, id, userID string, currentValue float64) (domain.Goal, bool, error) {
	g, err := s.Store.Goals().GetByID(ctx, id, userID)
	if err != nil {
		return domain.Goal{}, false, err
	}

	status := g.Status
	completed := false
	if g.Status == domain.GoalStatusActive && g.TargetValue != nil && currentValue >= *g.TargetValue {
		status = domain.GoalStatusCompleted
		completed = true
	}

	if err := s.Store.Goals().UpdateProgress(ctx, id, userID, currentValue, status); err != nil {
		return domain.Goal{}, false, err
	}
	if completed {
		slogx.FromContext(ctx).Info("goal completed",
			slog.String("goal_id", id),
			slog.String("user_id", userID))
	}

	g.CurrentValue = currentValue
	g.Status = status
	return g, completed, nil
}

// Delete removes the goal.
func (s *GoalService) Delete(ctx context.Context, id, userID string) error {
	return s.Store.Goals().Delete(ctx, id, userID)
}

// TopActive returns the user's best-progressing active goals for the
// dashboard.
func (s *GoalService) TopActive(ctx context.Context, userID string, limit int) ([]domain.Goal, error) {
	if limit < 1 || limit > 20 {
		limit = 5
	}
	return s.Store.Goals().TopActive(ctx, userID, limit)
}
