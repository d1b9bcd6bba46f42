// Package dashboard aggregates the numbers shown on the home screen.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/artem13815/career/pkg/jobs"
	"github.com/artem13815/career/pkg/skills"
)

// Referrals, learning streak and weekly hours are not tracked yet and are reported as fixed values.
const (
	placeholderReferrals      = 8
	placeholderLearningStreak = 7
	placeholderWeeklyHours    = 12
)

type Stats struct {
	Applications   int `json:"applications"`
	Interviews     int `json:"interviews"`
	Referrals      int `json:"referrals"`
	Badges         int `json:"badges"`
	LearningStreak int `json:"learningStreak"`
	WeeklyHours    int `json:"weeklyHours"`
}

type ApplicationLister interface {
	ListApplications(ctx context.Context, userID uuid.UUID) ([]jobs.ApplicationWithJob, error)
}

type BadgeLister interface {
	ListBadges(ctx context.Context, userID uuid.UUID) ([]skills.Badge, error)
}

type Service struct {
	apps   ApplicationLister
	badges BadgeLister
}

func NewService(apps ApplicationLister, badges BadgeLister) *Service {
	return &Service{apps: apps, badges: badges}
}

func (s *Service) Stats(ctx context.Context, userID uuid.UUID) (Stats, error) {
	apps, err := s.apps.ListApplications(ctx, userID)
	if err != nil {
		return Stats{}, fmt.Errorf("applications: %w", err)
	}
	badges, err := s.badges.ListBadges(ctx, userID)
	if err != nil {
		return Stats{}, fmt.Errorf("badges: %w", err)
	}
	st := Stats{
		Applications:   len(apps),
		Badges:         len(badges),
		Referrals:      placeholderReferrals,
		LearningStreak: placeholderLearningStreak,
		WeeklyHours:    placeholderWeeklyHours,
	}
	for _, a := range apps {
		if a.Status == jobs.StatusInterview {
			st.Interviews++
		}
	}
	return st, nil
}
