package jobs

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/artem13815/career/pkg/ai"
	"github.com/artem13815/career/pkg/apperr"
	"github.com/artem13815/career/pkg/events"
)

// Matcher scores a candidate against a job.
type Matcher interface {
	AnalyzeJobMatch(ctx context.Context, req ai.MatchRequest) (ai.MatchAnalysis, error)
}

// SkillSource lists the names of the skills a user holds.
type SkillSource interface {
	UserSkillNames(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type UseCase interface {
	ListCompanies(ctx context.Context) ([]Company, error)
	ListJobs(ctx context.Context) ([]JobWithCompany, error)
	GetJob(ctx context.Context, id uuid.UUID) (JobWithCompany, error)
	Analyze(ctx context.Context, userID, jobID uuid.UUID) (ai.MatchAnalysis, error)
	ListApplications(ctx context.Context, userID uuid.UUID) ([]ApplicationWithJob, error)
	Apply(ctx context.Context, userID, jobID uuid.UUID, status, notes string) (Application, error)
	UpdateApplication(ctx context.Context, userID, id uuid.UUID, status, notes *string) (Application, error)
}

type service struct {
	repo    Repository
	skills  SkillSource
	matcher Matcher
	events  events.Publisher
}

func NewService(repo Repository, skills SkillSource, matcher Matcher, pub events.Publisher) UseCase {
	if pub == nil {
		pub = events.Nop{}
	}
	return &service{repo: repo, skills: skills, matcher: matcher, events: pub}
}

func (s *service) ListCompanies(ctx context.Context) ([]Company, error) {
	return s.repo.ListCompanies(ctx)
}

func (s *service) ListJobs(ctx context.Context) ([]JobWithCompany, error) {
	return s.repo.ListJobs(ctx)
}

func (s *service) GetJob(ctx context.Context, id uuid.UUID) (JobWithCompany, error) {
	return s.repo.GetJob(ctx, id)
}

func (s *service) Analyze(ctx context.Context, userID, jobID uuid.UUID) (ai.MatchAnalysis, error) {
	job, err := s.repo.GetJob(ctx, jobID)
	if err != nil {
		return ai.MatchAnalysis{}, err
	}
	names, err := s.skills.UserSkillNames(ctx, userID)
	if err != nil {
		return ai.MatchAnalysis{}, fmt.Errorf("user skills: %w", err)
	}
	return s.matcher.AnalyzeJobMatch(ctx, ai.MatchRequest{
		UserSkills:   names,
		JobSkills:    job.Skills,
		Requirements: job.Requirements,
		Description:  job.Description,
	})
}

func (s *service) ListApplications(ctx context.Context, userID uuid.UUID) ([]ApplicationWithJob, error) {
	return s.repo.ListApplications(ctx, userID)
}

func (s *service) Apply(ctx context.Context, userID, jobID uuid.UUID, status, notes string) (Application, error) {
	st, err := ParseStatus(status)
	if err != nil {
		return Application{}, err
	}
	if _, err := s.repo.GetJob(ctx, jobID); err != nil {
		return Application{}, err
	}
	a, err := s.repo.CreateApplication(ctx, Application{
		UserID: userID,
		JobID:  jobID,
		Status: st,
		Notes:  strings.TrimSpace(notes),
	})
	if err != nil {
		return Application{}, err
	}
	events.Emit(ctx, s.events, events.ApplicationCreated, map[string]string{
		"applicationId": a.ID.String(),
		"jobId":         jobID.String(),
		"userId":        userID.String(),
		"status":        string(a.Status),
	})
	return a, nil
}

func (s *service) UpdateApplication(ctx context.Context, userID, id uuid.UUID, status, notes *string) (Application, error) {
	var p ApplicationPatch
	if status != nil {
		if *status == "" {
			return Application{}, apperr.Validation("status", "must not be empty")
		}
		st, err := ParseStatus(*status)
		if err != nil {
			return Application{}, err
		}
		p.Status = &st
	}
	if notes != nil {
		n := strings.TrimSpace(*notes)
		p.Notes = &n
	}
	if p.Status == nil && p.Notes == nil {
		return Application{}, apperr.Validation("", "status or notes is required")
	}
	a, err := s.repo.UpdateApplication(ctx, userID, id, p)
	if err != nil {
		return Application{}, err
	}
	events.Emit(ctx, s.events, events.ApplicationUpdated, map[string]string{
		"applicationId": a.ID.String(),
		"userId":        userID.String(),
		"status":        string(a.Status),
	})
	return a, nil
}
