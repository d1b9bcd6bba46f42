package handlers

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/career/pkg/apperr"
	"github.com/artem13815/career/pkg/auth"
	"github.com/artem13815/career/pkg/chat"
	"github.com/artem13815/career/pkg/jobs"
	"github.com/artem13815/career/pkg/linkedin"
	"github.com/artem13815/career/pkg/resume"
	"github.com/artem13815/career/pkg/skills"
)

// memStore is an in-memory stand-in for the Postgres store.
type memStore struct {
	mu         sync.Mutex
	users      map[uuid.UUID]auth.User
	resumes    map[uuid.UUID]resume.Resume
	uploads    []resume.Upload
	companies  []jobs.Company
	jobs       []jobs.Job
	apps       []jobs.Application
	catalog    []skills.Skill
	userSkills []skills.UserSkill
	paths      map[uuid.UUID]skills.LearningPath
	badges     []skills.Badge
	posts      []linkedin.Post
	chats      []chat.Message
}

func newMemStore() *memStore {
	return &memStore{
		users:   map[uuid.UUID]auth.User{},
		resumes: map[uuid.UUID]resume.Resume{},
		paths:   map[uuid.UUID]skills.LearningPath{},
	}
}

func (m *memStore) CreateUser(_ context.Context, u auth.User) (auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if u.Email != "" && existing.Email == u.Email {
			return auth.User{}, apperr.ErrConstraintViolation
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt, u.UpdatedAt = time.Now(), time.Now()
	m.users[u.ID] = u
	return u, nil
}

func (m *memStore) GetUser(_ context.Context, id uuid.UUID) (auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return auth.User{}, apperr.ErrNotFound
	}
	return u, nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return auth.User{}, apperr.ErrNotFound
}

func (m *memStore) CreateResume(_ context.Context, r resume.Resume) (resume.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r.CreatedAt, r.UpdatedAt = time.Now(), time.Now()
	m.resumes[r.ID] = r
	return r, nil
}

func (m *memStore) UpdateResume(_ context.Context, id uuid.UUID, p resume.Patch) (resume.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.resumes[id]
	if !ok {
		return resume.Resume{}, apperr.ErrNotFound
	}
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Content != nil {
		r.Content = p.Content
	}
	if p.Format != nil {
		r.Format = *p.Format
	}
	r.UpdatedAt = time.Now()
	m.resumes[id] = r
	return r, nil
}

func (m *memStore) GetResume(_ context.Context, id uuid.UUID) (resume.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.resumes[id]
	if !ok {
		return resume.Resume{}, apperr.ErrNotFound
	}
	return r, nil
}

func (m *memStore) ListResumes(_ context.Context, userID uuid.UUID) ([]resume.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []resume.Resume{}
	for _, r := range m.resumes {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (m *memStore) SaveUpload(_ context.Context, u resume.Upload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploads = append(m.uploads, u)
	return nil
}

func (m *memStore) company(id uuid.UUID) jobs.Company {
	for _, c := range m.companies {
		if c.ID == id {
			return c
		}
	}
	return jobs.Company{}
}

func (m *memStore) ListCompanies(context.Context) ([]jobs.Company, error) {
	return append([]jobs.Company{}, m.companies...), nil
}

func (m *memStore) ListJobs(context.Context) ([]jobs.JobWithCompany, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []jobs.JobWithCompany{}
	for _, j := range m.jobs {
		if j.IsActive {
			out = append(out, jobs.JobWithCompany{Job: j, Company: m.company(j.CompanyID)})
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].CreatedAt.After(out[k].CreatedAt) })
	return out, nil
}

func (m *memStore) GetJob(_ context.Context, id uuid.UUID) (jobs.JobWithCompany, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, j := range m.jobs {
		if j.ID == id {
			return jobs.JobWithCompany{Job: j, Company: m.company(j.CompanyID)}, nil
		}
	}
	return jobs.JobWithCompany{}, apperr.ErrNotFound
}

func (m *memStore) ListApplications(_ context.Context, userID uuid.UUID) ([]jobs.ApplicationWithJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []jobs.ApplicationWithJob{}
	for _, a := range m.apps {
		if a.UserID == userID {
			out = append(out, jobs.ApplicationWithJob{Application: a})
		}
	}
	return out, nil
}

func (m *memStore) CreateApplication(_ context.Context, a jobs.Application) (jobs.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = uuid.New()
	a.AppliedAt, a.UpdatedAt = time.Now(), time.Now()
	m.apps = append(m.apps, a)
	return a, nil
}

func (m *memStore) UpdateApplication(_ context.Context, userID, id uuid.UUID, p jobs.ApplicationPatch) (jobs.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.apps {
		if a.ID != id || a.UserID != userID {
			continue
		}
		if p.Status != nil {
			a.Status = *p.Status
		}
		if p.Notes != nil {
			a.Notes = *p.Notes
		}
		m.apps[i] = a
		return a, nil
	}
	return jobs.Application{}, apperr.ErrNotFound
}

func (m *memStore) ListSkills(context.Context) ([]skills.Skill, error) {
	return append([]skills.Skill{}, m.catalog...), nil
}

func (m *memStore) GetSkill(_ context.Context, id uuid.UUID) (skills.Skill, error) {
	for _, s := range m.catalog {
		if s.ID == id {
			return s, nil
		}
	}
	return skills.Skill{}, apperr.ErrNotFound
}

func (m *memStore) ListUserSkills(_ context.Context, userID uuid.UUID) ([]skills.UserSkill, error) {
	out := []skills.UserSkill{}
	for _, us := range m.userSkills {
		if us.UserID == userID {
			out = append(out, us)
		}
	}
	return out, nil
}

func (m *memStore) AddUserSkill(_ context.Context, us skills.UserSkill) (skills.UserSkill, error) {
	for _, existing := range m.userSkills {
		if existing.UserID == us.UserID && existing.SkillID == us.SkillID {
			return skills.UserSkill{}, apperr.ErrConstraintViolation
		}
	}
	us.ID = uuid.New()
	m.userSkills = append(m.userSkills, us)
	return us, nil
}

func (m *memStore) ListLearningPaths(_ context.Context, userID uuid.UUID) ([]skills.LearningPath, error) {
	out := []skills.LearningPath{}
	for _, p := range m.paths {
		if p.UserID == userID && p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) CreateLearningPath(_ context.Context, p skills.LearningPath) (skills.LearningPath, error) {
	p.ID = uuid.New()
	m.paths[p.ID] = p
	return p, nil
}

func (m *memStore) GetLearningPath(_ context.Context, id uuid.UUID) (skills.LearningPath, error) {
	p, ok := m.paths[id]
	if !ok {
		return skills.LearningPath{}, apperr.ErrNotFound
	}
	return p, nil
}

func (m *memStore) UpdateLearningPathProgress(_ context.Context, id uuid.UUID, completed int) (skills.LearningPath, error) {
	p, ok := m.paths[id]
	if !ok {
		return skills.LearningPath{}, apperr.ErrNotFound
	}
	p.CompletedModules = completed
	m.paths[id] = p
	return p, nil
}

func (m *memStore) ListBadges(_ context.Context, userID uuid.UUID) ([]skills.Badge, error) {
	out := []skills.Badge{}
	for _, b := range m.badges {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStore) CreatePost(_ context.Context, p linkedin.Post) (linkedin.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	m.posts = append(m.posts, p)
	return p, nil
}

func (m *memStore) ListPosts(_ context.Context, userID uuid.UUID) ([]linkedin.Post, error) {
	out := []linkedin.Post{}
	for _, p := range m.posts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) UpdatePost(_ context.Context, userID, id uuid.UUID, patch linkedin.PostPatch) (linkedin.Post, error) {
	for i, p := range m.posts {
		if p.ID != id || p.UserID != userID {
			continue
		}
		if patch.Content != nil {
			p.Content = *patch.Content
		}
		if patch.Status != nil {
			p.Status = *patch.Status
			if p.Status == linkedin.PostPublished && p.PublishedAt == nil {
				now := time.Now()
				p.PublishedAt = &now
			}
		}
		m.posts[i] = p
		return p, nil
	}
	return linkedin.Post{}, apperr.ErrNotFound
}

func (m *memStore) CreateChatMessage(_ context.Context, msg chat.Message) (chat.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg.ID = uuid.New()
	msg.CreatedAt = time.Now()
	m.chats = append(m.chats, msg)
	return msg, nil
}

func (m *memStore) ListChatMessages(_ context.Context, userID uuid.UUID) ([]chat.Message, error) {
	out := []chat.Message{}
	for _, msg := range m.chats {
		if msg.UserID == userID {
			out = append(out, msg)
		}
	}
	return out, nil
}
