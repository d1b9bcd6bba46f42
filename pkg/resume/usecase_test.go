package resume

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/career/pkg/ai"
	"github.com/artem13815/career/pkg/apperr"
	"github.com/artem13815/career/pkg/export"
	"github.com/artem13815/career/pkg/resume/content"
)

type memRepo struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]Resume
	uploads []Upload
	failOn  string
	clock   time.Time
}

func newMemRepo() *memRepo {
	return &memRepo{byID: map[uuid.UUID]Resume{}, clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *memRepo) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memRepo) CreateResume(_ context.Context, r Resume) (Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn == "create" {
		return Resume{}, errors.New("disk full")
	}
	r.ID = uuid.New()
	r.CreatedAt = m.tick()
	r.UpdatedAt = r.CreatedAt
	m.byID[r.ID] = r
	return r, nil
}

func (m *memRepo) UpdateResume(_ context.Context, id uuid.UUID, p Patch) (Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.byID[id]
	if !ok {
		return Resume{}, apperr.ErrNotFound
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
	r.UpdatedAt = m.tick()
	m.byID[id] = r
	return r, nil
}

func (m *memRepo) GetResume(_ context.Context, id uuid.UUID) (Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.byID[id]
	if !ok {
		return Resume{}, apperr.ErrNotFound
	}
	return r, nil
}

func (m *memRepo) ListResumes(_ context.Context, userID uuid.UUID) ([]Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []Resume{}
	for _, r := range m.byID {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (m *memRepo) SaveUpload(_ context.Context, u Upload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploads = append(m.uploads, u)
	return nil
}

type memFiles struct{ saved map[string][]byte }

func (f *memFiles) Save(_ context.Context, name string, data []byte) (string, error) {
	if f.saved == nil {
		f.saved = map[string][]byte{}
	}
	f.saved[name] = data
	return "mem://" + name, nil
}

type replyLLM struct {
	reply string
	err   error
}

func (r replyLLM) Ask(context.Context, string, string) (string, error) { return r.reply, r.err }

func newTestService(repo *memRepo, model *replyLLM) (UseCase, *memFiles) {
	files := &memFiles{}
	gw := ai.New(nil, nil)
	if model == nil {
		return NewService(repo, gw, files, nil), files
	}
	return NewService(repo, gw, files, *model), files
}

func TestGenerateFallsBackAndSaves(t *testing.T) {
	repo := newMemRepo()
	svc, _ := newTestService(repo, nil)
	user := uuid.New()

	got, err := svc.Generate(context.Background(), user, GenerateInput{LinkedinURL: "https://linkedin.com/in/test"})
	require.NoError(t, err)
	assert.Equal(t, ai.SourceFallback, got.Source)
	assert.NotEmpty(t, got.Content.PersonalInfo.Name)
	require.NotNil(t, got.Resume)
	assert.Equal(t, "Professional Resume", got.Resume.Title)
	assert.Equal(t, FormatOnePage, got.Resume.Format)
	assert.Contains(t, got.Message(), "template")

	got, err = svc.Generate(context.Background(), user, GenerateInput{LinkedinURL: "https://linkedin.com/in/test", TargetRole: "SRE"})
	require.NoError(t, err)
	assert.Equal(t, "SRE Resume", got.Resume.Title)

	_, err = svc.Generate(context.Background(), user, GenerateInput{})
	assert.True(t, apperr.IsValidation(err))
}

func TestGenerateSucceedsWhenSaveFails(t *testing.T) {
	repo := newMemRepo()
	repo.failOn = "create"
	svc, _ := newTestService(repo, nil)

	got, err := svc.Generate(context.Background(), uuid.New(), GenerateInput{LinkedinURL: "https://linkedin.com/in/test"})
	require.NoError(t, err)
	assert.Nil(t, got.Resume)
	assert.NotEmpty(t, got.Content.PersonalInfo.Name)
}

func TestListIsStableAndOwned(t *testing.T) {
	repo := newMemRepo()
	svc, _ := newTestService(repo, nil)
	user, other := uuid.New(), uuid.New()
	for _, role := range []string{"A", "B", "C"} {
		_, err := svc.Generate(context.Background(), user, GenerateInput{LinkedinURL: "u", TargetRole: role})
		require.NoError(t, err)
	}
	_, err := svc.Generate(context.Background(), other, GenerateInput{LinkedinURL: "u"})
	require.NoError(t, err)

	first, err := svc.List(context.Background(), user)
	require.NoError(t, err)
	second, err := svc.List(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, first, second)
	assert.Equal(t, "C Resume", first[0].Title)

	_, err = svc.Get(context.Background(), other, first[0].ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdate(t *testing.T) {
	repo := newMemRepo()
	svc, _ := newTestService(repo, nil)
	user := uuid.New()
	g, err := svc.Generate(context.Background(), user, GenerateInput{LinkedinURL: "u"})
	require.NoError(t, err)
	id := g.Resume.ID

	title := "Renamed"
	detailed := FormatDetailed
	r, err := svc.Update(context.Background(), user, id, Patch{Title: &title, Format: &detailed})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", r.Title)
	assert.Equal(t, FormatDetailed, r.Format)

	bad := content.Document{Experience: []content.Experience{{Company: "No title"}}}
	_, err = svc.Update(context.Background(), user, id, Patch{Content: &bad})
	assert.True(t, apperr.IsValidation(err))

	blank := " "
	_, err = svc.Update(context.Background(), user, id, Patch{Title: &blank})
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.Update(context.Background(), user, uuid.New(), Patch{Title: &title})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestExport(t *testing.T) {
	repo := newMemRepo()
	svc, _ := newTestService(repo, nil)
	user := uuid.New()
	g, err := svc.Generate(context.Background(), user, GenerateInput{LinkedinURL: "u"})
	require.NoError(t, err)

	data, r, err := svc.Export(context.Background(), user, g.Resume.ID, export.FormatPDF)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, g.Resume.ID, r.ID)

	empty, err := repo.CreateResume(context.Background(), Resume{UserID: user, Title: "Empty", Format: FormatOnePage})
	require.NoError(t, err)
	data, _, err = svc.Export(context.Background(), user, empty.ID, export.FormatDOCX)
	assert.ErrorIs(t, err, apperr.ErrNoContent)
	assert.Nil(t, data)

	_, _, err = svc.Export(context.Background(), user, uuid.New(), export.FormatPDF)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestImprove(t *testing.T) {
	repo := newMemRepo()
	svc, _ := newTestService(repo, nil)
	user := uuid.New()
	g, err := svc.Generate(context.Background(), user, GenerateInput{LinkedinURL: "u"})
	require.NoError(t, err)

	res, err := svc.Improve(context.Background(), user, g.Resume.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Suggestions)

	empty, err := repo.CreateResume(context.Background(), Resume{UserID: user, Title: "Empty"})
	require.NoError(t, err)
	_, err = svc.Improve(context.Background(), user, empty.ID)
	assert.ErrorIs(t, err, apperr.ErrNoContent)
}

func TestPolishValidates(t *testing.T) {
	svc, _ := newTestService(newMemRepo(), nil)
	doc := content.Fallback("Engineer", "")

	_, err := svc.Polish(context.Background(), doc, ai.JobDescriptor{})
	assert.True(t, apperr.IsValidation(err))

	p, err := svc.Polish(context.Background(), doc, ai.JobDescriptor{Title: "Engineer", Skills: []string{"Leadership"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Leadership"}, p.KeyStrengths)
}

func uploadedPDF(t *testing.T) []byte {
	t.Helper()
	doc := content.Document{
		FormatVersion: content.CurrentVersion,
		PersonalInfo:  content.PersonalInfo{Name: "Grace Hopper"},
		Summary:       "Compiler pioneer.",
		Skills:        []string{"COBOL"},
	}
	data, err := export.PDF(doc)
	require.NoError(t, err)
	return data
}

func TestUploadStructuresWithLLM(t *testing.T) {
	repo := newMemRepo()
	model := &replyLLM{reply: "```json\n{\"personalInfo\":{\"name\":\"Grace Hopper\"},\"summary\":\"Compiler pioneer.\",\"skills\":[\"COBOL\",\"\"],\"experience\":[{\"title\":\"\"}],\"education\":[]}\n```"}
	svc, files := newTestService(repo, model)
	user := uuid.New()

	r, err := svc.Upload(context.Background(), user, UploadInput{Filename: "grace_cv.pdf", Data: uploadedPDF(t), OwnerName: "Chenkai Xie"})
	require.NoError(t, err)
	assert.Equal(t, FormatUploaded, r.Format)
	assert.Equal(t, "grace_cv", r.Title)
	require.NotNil(t, r.Content)
	assert.Equal(t, "Grace Hopper", r.Content.PersonalInfo.Name)
	assert.Equal(t, []string{"COBOL"}, r.Content.Skills)
	assert.Empty(t, r.Content.Experience)

	require.Len(t, repo.uploads, 1)
	assert.Equal(t, "mem://grace_cv.pdf", repo.uploads[0].StorageURI)
	assert.Equal(t, "application/pdf", repo.uploads[0].MimeType)
	assert.Contains(t, repo.uploads[0].Text, "Compiler pioneer.")
	assert.Contains(t, files.saved, "grace_cv.pdf")
}

func TestUploadWithoutLLMKeepsText(t *testing.T) {
	repo := newMemRepo()
	svc, _ := newTestService(repo, nil)

	r, err := svc.Upload(context.Background(), uuid.New(), UploadInput{Filename: "cv.pdf", Data: uploadedPDF(t), OwnerName: "Chenkai Xie"})
	require.NoError(t, err)
	require.NotNil(t, r.Content)
	assert.Equal(t, "Chenkai Xie", r.Content.PersonalInfo.Name)
	assert.Contains(t, r.Content.Summary, "Compiler pioneer.")
}

func TestUploadRejectsUnsupportedFiles(t *testing.T) {
	svc, _ := newTestService(newMemRepo(), nil)
	_, err := svc.Upload(context.Background(), uuid.New(), UploadInput{Filename: "cv.txt", Data: []byte("hi")})
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.Upload(context.Background(), uuid.New(), UploadInput{Filename: "cv.pdf"})
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.Upload(context.Background(), uuid.New(), UploadInput{Filename: "cv.pdf", Data: []byte("not a pdf")})
	assert.True(t, apperr.IsValidation(err))
}
