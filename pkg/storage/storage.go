// Package storage defines the single persistence contract used by the services.
package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/artem13815/career/pkg/auth"
	"github.com/artem13815/career/pkg/chat"
	"github.com/artem13815/career/pkg/jobs"
	"github.com/artem13815/career/pkg/linkedin"
	"github.com/artem13815/career/pkg/resume"
	"github.com/artem13815/career/pkg/seed"
	"github.com/artem13815/career/pkg/skills"
)

// Storage is implemented by postgres.Store.
type Storage interface {
	auth.UserRepository
	resume.Repository
	jobs.Repository
	skills.Repository
	linkedin.PostRepository
	chat.Repository

	// Seed loads d in one transaction; it is a no-op when reference data exists.
	Seed(ctx context.Context, d seed.Dataset) error
	Ping(ctx context.Context) error
}

// Degrade wraps s for minimal mode: catalog and per-user list reads come back
// empty while users, resumes, chat and all writes still reach s.
func Degrade(s Storage) Storage {
	return minimal{s}
}

type minimal struct {
	Storage
}

func (minimal) ListJobs(context.Context) ([]jobs.JobWithCompany, error) {
	return []jobs.JobWithCompany{}, nil
}

func (minimal) ListApplications(context.Context, uuid.UUID) ([]jobs.ApplicationWithJob, error) {
	return []jobs.ApplicationWithJob{}, nil
}

func (minimal) ListSkills(context.Context) ([]skills.Skill, error) {
	return []skills.Skill{}, nil
}

func (minimal) ListUserSkills(context.Context, uuid.UUID) ([]skills.UserSkill, error) {
	return []skills.UserSkill{}, nil
}

func (minimal) ListLearningPaths(context.Context, uuid.UUID) ([]skills.LearningPath, error) {
	return []skills.LearningPath{}, nil
}

func (minimal) ListBadges(context.Context, uuid.UUID) ([]skills.Badge, error) {
	return []skills.Badge{}, nil
}

func (minimal) ListPosts(context.Context, uuid.UUID) ([]linkedin.Post, error) {
	return []linkedin.Post{}, nil
}
