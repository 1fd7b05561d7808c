package service

import (
	"context"
	"time"

	"github.com/fittrackhq/fittrack/internal/domain"
	"github.com/fittrackhq/fittrack/internal/store"
)

// DashboardStats bundles everything the dashboard renders in one call.
type DashboardStats struct {
	Totals   domain.UserTotals
	Activity []domain.DailyActivity
	Goals    []domain.Goal
}

// StatsService aggregates a user's history for the dashboard.
type StatsService struct {
	Store store.Store

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *StatsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Dashboard returns lifetime totals, the last 30 days of activity, and the
// user's top active goals.
func (s *StatsService) Dashboard(ctx context.Context, userID string) (DashboardStats, error) {
	totals, err := s.Store.Stats().Totals(ctx, userID)
	if err != nil {
		return DashboardStats{}, err
	}

	since := s.now().AddDate(0, 0, -30).Format("2006-01-02")
	activity, err := s.Store.Stats().DailyActivity(ctx, userID, since)
	if err != nil {
		return DashboardStats{}, err
	}

	goals, err := s.Store.Goals().TopActive(ctx, userID, 5)
	if err != nil {
		return DashboardStats{}, err
	}

	return DashboardStats{
		Totals:   totals,
		Activity: activity,
		Goals:    goals,
	}, nil
}
