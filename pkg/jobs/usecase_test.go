package jobs

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/career/pkg/ai"
	"github.com/artem13815/career/pkg/apperr"
)

type memRepo struct {
	jobs map[uuid.UUID]JobWithCompany
	apps map[uuid.UUID]Application
}

func newMemRepo(jobs ...JobWithCompany) *memRepo {
	m := &memRepo{jobs: map[uuid.UUID]JobWithCompany{}, apps: map[uuid.UUID]Application{}}
	for _, j := range jobs {
		m.jobs[j.ID] = j
	}
	return m
}

func (m *memRepo) ListCompanies(context.Context) ([]Company, error) { return []Company{}, nil }

func (m *memRepo) ListJobs(context.Context) ([]JobWithCompany, error) {
	out := []JobWithCompany{}
	for _, j := range m.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (m *memRepo) GetJob(_ context.Context, id uuid.UUID) (JobWithCompany, error) {
	j, ok := m.jobs[id]
	if !ok {
		return JobWithCompany{}, apperr.ErrNotFound
	}
	return j, nil
}

func (m *memRepo) ListApplications(_ context.Context, userID uuid.UUID) ([]ApplicationWithJob, error) {
	out := []ApplicationWithJob{}
	for _, a := range m.apps {
		if a.UserID == userID {
			out = append(out, ApplicationWithJob{Application: a, Job: m.jobs[a.JobID]})
		}
	}
	return out, nil
}

func (m *memRepo) CreateApplication(_ context.Context, a Application) (Application, error) {
	a.ID = uuid.New()
	a.AppliedAt = time.Now().UTC()
	a.UpdatedAt = a.AppliedAt
	m.apps[a.ID] = a
	return a, nil
}

func (m *memRepo) UpdateApplication(_ context.Context, userID, id uuid.UUID, p ApplicationPatch) (Application, error) {
	a, ok := m.apps[id]
	if !ok || a.UserID != userID {
		return Application{}, apperr.ErrNotFound
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	m.apps[id] = a
	return a, nil
}

type staticSkills []string

func (s staticSkills) UserSkillNames(context.Context, uuid.UUID) ([]string, error) { return s, nil }

type recorder struct {
	mu     sync.Mutex
	topics []string
}

func (r *recorder) Publish(_ context.Context, topic string, _ any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.topics = append(r.topics, topic)
	return nil
}

func sampleJob() JobWithCompany {
	return JobWithCompany{
		Job: Job{
			ID:           uuid.New(),
			Title:        "Backend Engineer",
			Requirements: "3+ years building services",
			Skills:       []string{"Go", "PostgreSQL", "Kubernetes"},
			IsActive:     true,
		},
		Company: Company{Name: "Acme"},
	}
}

func TestParseEnums(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{in: "", want: StatusApplied},
		{in: "applied", want: StatusApplied},
		{in: "in_review", want: StatusInReview},
		{in: "interview", want: StatusInterview},
		{in: "offer", want: StatusOffer},
		{in: "rejected", want: StatusRejected},
		{in: "hired", wantErr: true},
		{in: "Applied", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				assert.True(t, apperr.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	jt, err := ParseJobType("")
	require.NoError(t, err)
	assert.Equal(t, FullTime, jt)
	_, err = ParseJobType("internship")
	assert.Error(t, err)

	wm, err := ParseWorkMode("")
	require.NoError(t, err)
	assert.Equal(t, Hybrid, wm)
	_, err = ParseWorkMode("office")
	assert.Error(t, err)
}

func TestAnalyzeUsesUserSkillsAgainstJob(t *testing.T) {
	job := sampleJob()
	svc := NewService(newMemRepo(job), staticSkills{"golang", "PostgreSQL"}, ai.New(nil, nil), nil)

	m, err := svc.Analyze(context.Background(), uuid.New(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, 66, m.MatchScore)
	assert.Equal(t, []string{"Kubernetes"}, m.Gaps)
	assert.Equal(t, ai.SourceFallback, m.Source)

	_, err = svc.Analyze(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestApplyAndUpdate(t *testing.T) {
	job := sampleJob()
	rec := &recorder{}
	svc := NewService(newMemRepo(job), staticSkills{}, ai.New(nil, nil), rec)
	user := uuid.New()

	a, err := svc.Apply(context.Background(), user, job.ID, "", " first contact ")
	require.NoError(t, err)
	assert.Equal(t, StatusApplied, a.Status)
	assert.Equal(t, "first contact", a.Notes)

	_, err = svc.Apply(context.Background(), user, job.ID, "hired", "")
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.Apply(context.Background(), user, uuid.New(), "", "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// any status may follow any other
	for _, st := range []string{"offer", "applied", "rejected", "interview"} {
		s := st
		a, err = svc.UpdateApplication(context.Background(), user, a.ID, &s, nil)
		require.NoError(t, err)
		assert.Equal(t, Status(st), a.Status)
	}

	bad := "won"
	_, err = svc.UpdateApplication(context.Background(), user, a.ID, &bad, nil)
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.UpdateApplication(context.Background(), user, a.ID, nil, nil)
	assert.True(t, apperr.IsValidation(err))

	notes := "call back friday"
	_, err = svc.UpdateApplication(context.Background(), uuid.New(), a.ID, nil, &notes)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	list, err := svc.ListApplications(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme", list[0].Job.Company.Name)

	assert.Equal(t, []string{"application.created", "application.updated", "application.updated", "application.updated", "application.updated"}, rec.topics)
}
