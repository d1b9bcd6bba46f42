package skills

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/career/pkg/apperr"
)

type memRepo struct {
	skills map[uuid.UUID]Skill
	held   []UserSkill
	paths  map[uuid.UUID]LearningPath
}

func newMemRepo(catalog ...Skill) *memRepo {
	m := &memRepo{skills: map[uuid.UUID]Skill{}, paths: map[uuid.UUID]LearningPath{}}
	for _, s := range catalog {
		m.skills[s.ID] = s
	}
	return m
}

func (m *memRepo) ListSkills(context.Context) ([]Skill, error) { return []Skill{}, nil }

func (m *memRepo) GetSkill(_ context.Context, id uuid.UUID) (Skill, error) {
	s, ok := m.skills[id]
	if !ok {
		return Skill{}, apperr.ErrNotFound
	}
	return s, nil
}

func (m *memRepo) ListUserSkills(_ context.Context, userID uuid.UUID) ([]UserSkill, error) {
	out := []UserSkill{}
	for _, us := range m.held {
		if us.UserID == userID {
			sk := m.skills[us.SkillID]
			us.Skill = &sk
			out = append(out, us)
		}
	}
	return out, nil
}

func (m *memRepo) AddUserSkill(_ context.Context, us UserSkill) (UserSkill, error) {
	for _, h := range m.held {
		if h.UserID == us.UserID && h.SkillID == us.SkillID {
			return UserSkill{}, apperr.ErrConstraintViolation
		}
	}
	us.ID = uuid.New()
	m.held = append(m.held, us)
	return us, nil
}

func (m *memRepo) ListLearningPaths(context.Context, uuid.UUID) ([]LearningPath, error) {
	return []LearningPath{}, nil
}

func (m *memRepo) CreateLearningPath(_ context.Context, p LearningPath) (LearningPath, error) {
	p.ID = uuid.New()
	m.paths[p.ID] = p
	return p, nil
}

func (m *memRepo) GetLearningPath(_ context.Context, id uuid.UUID) (LearningPath, error) {
	p, ok := m.paths[id]
	if !ok {
		return LearningPath{}, apperr.ErrNotFound
	}
	return p, nil
}

func (m *memRepo) UpdateLearningPathProgress(_ context.Context, id uuid.UUID, completed int) (LearningPath, error) {
	p := m.paths[id]
	p.CompletedModules = completed
	m.paths[id] = p
	return p, nil
}

func (m *memRepo) ListBadges(context.Context, uuid.UUID) ([]Badge, error) { return []Badge{}, nil }

func TestProgressIsDerived(t *testing.T) {
	tests := []struct {
		total, done, want int
	}{
		{total: 0, done: 0, want: 0},
		{total: 3, done: 1, want: 33},
		{total: 3, done: 2, want: 67},
		{total: 8, done: 8, want: 100},
	}
	for _, tt := range tests {
		p := LearningPath{TotalModules: tt.total, CompletedModules: tt.done}
		assert.Equal(t, tt.want, p.Progress())
	}

	data, err := json.Marshal(LearningPath{Title: "Go", TotalModules: 4, CompletedModules: 1})
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.EqualValues(t, 25, out["progress"])
	assert.Equal(t, "Go", out["title"])
}

func TestRecordProgressClampsAndChecksOwner(t *testing.T) {
	svc := NewService(newMemRepo())
	user := uuid.New()

	p, err := svc.StartLearningPath(context.Background(), user, LearningPath{Title: " Kubernetes ", TotalModules: 10, CompletedModules: 12})
	require.NoError(t, err)
	assert.Equal(t, "Kubernetes", p.Title)
	assert.Equal(t, 10, p.CompletedModules)
	assert.True(t, p.IsActive)

	p, err = svc.RecordProgress(context.Background(), user, p.ID, -3)
	require.NoError(t, err)
	assert.Equal(t, 0, p.CompletedModules)

	p, err = svc.RecordProgress(context.Background(), user, p.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 40, p.Progress())

	_, err = svc.RecordProgress(context.Background(), uuid.New(), p.ID, 5)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.StartLearningPath(context.Background(), user, LearningPath{Title: "x"})
	assert.True(t, apperr.IsValidation(err))
}

func TestAddUserSkill(t *testing.T) {
	goSkill := Skill{ID: uuid.New(), Name: "Go"}
	svc := NewService(newMemRepo(goSkill))
	user := uuid.New()

	us, err := svc.AddUserSkill(context.Background(), user, goSkill.ID, "")
	require.NoError(t, err)
	assert.Equal(t, Beginner, us.Level)
	require.NotNil(t, us.Skill)
	assert.Equal(t, "Go", us.Skill.Name)

	_, err = svc.AddUserSkill(context.Background(), user, goSkill.ID, "expert")
	assert.ErrorIs(t, err, apperr.ErrConstraintViolation)

	_, err = svc.AddUserSkill(context.Background(), user, goSkill.ID, "guru")
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.AddUserSkill(context.Background(), user, uuid.New(), "expert")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	names, err := svc.UserSkillNames(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, names)
}
