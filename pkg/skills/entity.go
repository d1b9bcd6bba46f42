// Package skills covers the skill catalog, user skills, learning paths and badges.
package skills

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/career/pkg/apperr"
)

type Skill struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
}

type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
	Expert       Level = "expert"
)

// ParseLevel validates a level; empty means beginner.
func ParseLevel(s string) (Level, error) {
	switch l := Level(s); l {
	case "":
		return Beginner, nil
	case Beginner, Intermediate, Advanced, Expert:
		return l, nil
	}
	return "", apperr.Validation("level", "must be one of beginner, intermediate, advanced, expert")
}

type UserSkill struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	SkillID   uuid.UUID `json:"skillId"`
	Level     Level     `json:"level"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
	Skill     *Skill    `json:"skill,omitempty"`
}

// LearningPath stores module counts only; progress is derived.
type LearningPath struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"userId"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Category         string    `json:"category"`
	TotalModules     int       `json:"totalModules"`
	CompletedModules int       `json:"completedModules"`
	EstimatedHours   int       `json:"estimatedHours"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Progress is the completed share in percent, 0 for a path without modules.
func (p LearningPath) Progress() int {
	if p.TotalModules <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(p.CompletedModules) / float64(p.TotalModules)))
}

func (p LearningPath) MarshalJSON() ([]byte, error) {
	type plain LearningPath
	return json.Marshal(struct {
		plain
		Progress int `json:"progress"`
	}{plain(p), p.Progress()})
}

// clamp keeps CompletedModules inside [0, TotalModules].
func (p *LearningPath) clamp() {
	if p.CompletedModules < 0 {
		p.CompletedModules = 0
	}
	if p.CompletedModules > p.TotalModules {
		p.CompletedModules = p.TotalModules
	}
}

type Badge struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Category    string    `json:"category"`
	EarnedAt    time.Time `json:"earnedAt"`
}

type Repository interface {
	// ListSkills orders the catalog by name.
	ListSkills(ctx context.Context) ([]Skill, error)
	GetSkill(ctx context.Context, id uuid.UUID) (Skill, error)
	// ListUserSkills returns the user's skills joined with the catalog, by skill name.
	ListUserSkills(ctx context.Context, userID uuid.UUID) ([]UserSkill, error)
	// AddUserSkill fails with apperr.ErrConstraintViolation if the user already holds the skill.
	AddUserSkill(ctx context.Context, us UserSkill) (UserSkill, error)
	// ListLearningPaths returns active paths, most recently updated first.
	ListLearningPaths(ctx context.Context, userID uuid.UUID) ([]LearningPath, error)
	CreateLearningPath(ctx context.Context, p LearningPath) (LearningPath, error)
	GetLearningPath(ctx context.Context, id uuid.UUID) (LearningPath, error)
	UpdateLearningPathProgress(ctx context.Context, id uuid.UUID, completed int) (LearningPath, error)
	// ListBadges returns badges, most recently earned first.
	ListBadges(ctx context.Context, userID uuid.UUID) ([]Badge, error)
}
