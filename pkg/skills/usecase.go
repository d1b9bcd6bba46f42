package skills

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/artem13815/career/pkg/apperr"
)

type UseCase interface {
	Catalog(ctx context.Context) ([]Skill, error)
	UserSkills(ctx context.Context, userID uuid.UUID) ([]UserSkill, error)
	UserSkillNames(ctx context.Context, userID uuid.UUID) ([]string, error)
	AddUserSkill(ctx context.Context, userID, skillID uuid.UUID, level string) (UserSkill, error)
	LearningPaths(ctx context.Context, userID uuid.UUID) ([]LearningPath, error)
	StartLearningPath(ctx context.Context, userID uuid.UUID, p LearningPath) (LearningPath, error)
	RecordProgress(ctx context.Context, userID, pathID uuid.UUID, completed int) (LearningPath, error)
	Badges(ctx context.Context, userID uuid.UUID) ([]Badge, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Catalog(ctx context.Context) ([]Skill, error) { return s.repo.ListSkills(ctx) }

func (s *service) UserSkills(ctx context.Context, userID uuid.UUID) ([]UserSkill, error) {
	return s.repo.ListUserSkills(ctx, userID)
}

func (s *service) UserSkillNames(ctx context.Context, userID uuid.UUID) ([]string, error) {
	list, err := s.repo.ListUserSkills(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(list))
	for _, us := range list {
		if us.Skill != nil && us.Skill.Name != "" {
			names = append(names, us.Skill.Name)
		}
	}
	return names, nil
}

func (s *service) AddUserSkill(ctx context.Context, userID, skillID uuid.UUID, level string) (UserSkill, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return UserSkill{}, err
	}
	sk, err := s.repo.GetSkill(ctx, skillID)
	if err != nil {
		return UserSkill{}, err
	}
	us, err := s.repo.AddUserSkill(ctx, UserSkill{UserID: userID, SkillID: skillID, Level: lvl})
	if err != nil {
		return UserSkill{}, err
	}
	us.Skill = &sk
	return us, nil
}

func (s *service) LearningPaths(ctx context.Context, userID uuid.UUID) ([]LearningPath, error) {
	return s.repo.ListLearningPaths(ctx, userID)
}

func (s *service) StartLearningPath(ctx context.Context, userID uuid.UUID, p LearningPath) (LearningPath, error) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return LearningPath{}, apperr.Validation("title", "is required")
	}
	if p.TotalModules <= 0 {
		return LearningPath{}, apperr.Validation("totalModules", "must be positive")
	}
	if p.EstimatedHours < 0 {
		return LearningPath{}, apperr.Validation("estimatedHours", "must not be negative")
	}
	p.UserID = userID
	p.IsActive = true
	p.clamp()
	return s.repo.CreateLearningPath(ctx, p)
}

func (s *service) RecordProgress(ctx context.Context, userID, pathID uuid.UUID, completed int) (LearningPath, error) {
	p, err := s.repo.GetLearningPath(ctx, pathID)
	if err != nil {
		return LearningPath{}, err
	}
	if p.UserID != userID {
		return LearningPath{}, apperr.ErrNotFound
	}
	p.CompletedModules = completed
	p.clamp()
	return s.repo.UpdateLearningPathProgress(ctx, pathID, p.CompletedModules)
}

func (s *service) Badges(ctx context.Context, userID uuid.UUID) ([]Badge, error) {
	return s.repo.ListBadges(ctx, userID)
}
