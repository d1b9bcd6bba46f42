package resume

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/artem13815/career/pkg/ai"
	"github.com/artem13815/career/pkg/apperr"
	"github.com/artem13815/career/pkg/export"
	"github.com/artem13815/career/pkg/llm"
	"github.com/artem13815/career/pkg/resume/content"
)

// Generator is the part of the AI gateway the resume service needs.
type Generator interface {
	GenerateResume(ctx context.Context, req ai.ResumeRequest) (ai.ResumeResult, error)
	PolishResume(ctx context.Context, doc content.Document, job ai.JobDescriptor) (ai.PolishResult, error)
	ImproveResume(ctx context.Context, doc content.Document) (ai.ImproveResult, error)
}

// FileStore keeps the original bytes of uploaded resumes.
type FileStore interface {
	Save(ctx context.Context, name string, data []byte) (uri string, err error)
}

type GenerateInput struct {
	LinkedinURL string
	TargetRole  string
	Profile     *ai.UserProfile
}

// Generated is the outcome of a generation. Resume is nil when saving failed.
type Generated struct {
	Content content.Document
	Source  ai.Source
	Resume  *Resume
}

func (g Generated) Message() string {
	if g.Source.Degraded() {
		return "Resume generated from a template because the AI service is unavailable"
	}
	return "Resume generated successfully"
}

type UploadInput struct {
	Filename  string
	MimeType  string
	Data      []byte
	OwnerName string
}

// UseCase is the application API for resumes.
type UseCase interface {
	Generate(ctx context.Context, userID uuid.UUID, in GenerateInput) (Generated, error)
	Polish(ctx context.Context, doc content.Document, job ai.JobDescriptor) (ai.PolishResult, error)
	Improve(ctx context.Context, userID, resumeID uuid.UUID) (ai.ImproveResult, error)
	Upload(ctx context.Context, userID uuid.UUID, in UploadInput) (Resume, error)
	Get(ctx context.Context, userID, id uuid.UUID) (Resume, error)
	List(ctx context.Context, userID uuid.UUID) ([]Resume, error)
	Update(ctx context.Context, userID, id uuid.UUID, p Patch) (Resume, error)
	Export(ctx context.Context, userID, id uuid.UUID, f export.Format) ([]byte, Resume, error)
}

type service struct {
	repo  Repository
	gen   Generator
	files FileStore
	text  structurer
	log   *slog.Logger
}

// NewService wires the resume use cases. model structures uploaded resumes and may be nil.
func NewService(repo Repository, gen Generator, files FileStore, model llm.ChatModel) UseCase {
	return &service{
		repo:  repo,
		gen:   gen,
		files: files,
		text:  structurer{llm: model, maxChars: maxStructureChars},
		log:   slog.Default().With("component", "resume"),
	}
}

func (s *service) Generate(ctx context.Context, userID uuid.UUID, in GenerateInput) (Generated, error) {
	in.LinkedinURL = strings.TrimSpace(in.LinkedinURL)
	if in.LinkedinURL == "" {
		return Generated{}, apperr.Validation("linkedinUrl", "is required")
	}
	res, err := s.gen.GenerateResume(ctx, ai.ResumeRequest{
		LinkedinURL: in.LinkedinURL,
		TargetRole:  strings.TrimSpace(in.TargetRole),
		Profile:     in.Profile,
	})
	if err != nil {
		return Generated{}, apperr.Validation("linkedinUrl", err.Error())
	}
	out := Generated{Content: res.Content, Source: res.Source}

	role := strings.TrimSpace(in.TargetRole)
	if role == "" {
		role = "Professional"
	}
	doc := res.Content
	saved, err := s.repo.CreateResume(ctx, Resume{
		UserID:  userID,
		Title:   role + " Resume",
		Content: &doc,
		Format:  FormatOnePage,
	})
	if err != nil {
		s.log.Error("save generated resume", "user_id", userID, "err", err)
		return out, nil
	}
	out.Resume = &saved
	return out, nil
}

func (s *service) Polish(ctx context.Context, doc content.Document, job ai.JobDescriptor) (ai.PolishResult, error) {
	doc.Normalize()
	if err := doc.Validate(); err != nil {
		return ai.PolishResult{}, err
	}
	if strings.TrimSpace(job.Title) == "" {
		return ai.PolishResult{}, apperr.Validation("jobData.title", "is required")
	}
	return s.gen.PolishResume(ctx, doc, job)
}

func (s *service) Improve(ctx context.Context, userID, resumeID uuid.UUID) (ai.ImproveResult, error) {
	r, err := s.Get(ctx, userID, resumeID)
	if err != nil {
		return ai.ImproveResult{}, err
	}
	if r.Content == nil {
		return ai.ImproveResult{}, apperr.ErrNoContent
	}
	return s.gen.ImproveResume(ctx, *r.Content)
}

func (s *service) Upload(ctx context.Context, userID uuid.UUID, in UploadInput) (Resume, error) {
	if !AllowedExtension(in.Filename) {
		return Resume{}, apperr.Validation("resume", "only .pdf, .doc and .docx files are allowed")
	}
	if len(in.Data) == 0 {
		return Resume{}, apperr.Validation("resume", "file is empty")
	}
	text, err := ParseText(in.Filename, in.Data)
	if err != nil {
		return Resume{}, apperr.Validation("resume", fmt.Sprintf("could not read file: %v", err))
	}

	uri, err := s.files.Save(ctx, in.Filename, in.Data)
	if err != nil {
		return Resume{}, err
	}

	doc, err := s.text.Structure(ctx, text)
	if err != nil {
		s.log.Warn("structure uploaded resume, keeping plain text", "err", err)
		doc = summaryOnly(in.OwnerName, text)
	}
	if strings.TrimSpace(doc.PersonalInfo.Name) == "" {
		doc.PersonalInfo.Name = in.OwnerName
	}

	title := strings.TrimSuffix(filepath.Base(in.Filename), filepath.Ext(in.Filename))
	if strings.TrimSpace(title) == "" {
		title = "Uploaded Resume"
	}
	r, err := s.repo.CreateResume(ctx, Resume{
		UserID:  userID,
		Title:   title,
		Content: &doc,
		Format:  FormatUploaded,
	})
	if err != nil {
		return Resume{}, err
	}

	mimeType := in.MimeType
	if mimeType == "" {
		mimeType = mime.TypeByExtension(strings.ToLower(filepath.Ext(in.Filename)))
	}
	if err := s.repo.SaveUpload(ctx, Upload{
		ResumeID:   r.ID,
		Filename:   in.Filename,
		MimeType:   mimeType,
		Size:       int64(len(in.Data)),
		StorageURI: uri,
		Text:       text,
	}); err != nil {
		s.log.Error("save upload metadata", "resume_id", r.ID, "err", err)
	}
	return r, nil
}

// Get returns the resume only to its owner; others see ErrNotFound.
func (s *service) Get(ctx context.Context, userID, id uuid.UUID) (Resume, error) {
	r, err := s.repo.GetResume(ctx, id)
	if err != nil {
		return Resume{}, err
	}
	if r.UserID != userID {
		return Resume{}, apperr.ErrNotFound
	}
	return r, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]Resume, error) {
	return s.repo.ListResumes(ctx, userID)
}

func (s *service) Update(ctx context.Context, userID, id uuid.UUID, p Patch) (Resume, error) {
	if p.Title != nil {
		t := strings.TrimSpace(*p.Title)
		if t == "" {
			return Resume{}, apperr.Validation("title", "must not be empty")
		}
		p.Title = &t
	}
	if p.Content != nil {
		p.Content.Normalize()
		if err := p.Content.Validate(); err != nil {
			return Resume{}, err
		}
	}
	if p.Format != nil {
		if _, err := ParseFormat(string(*p.Format)); err != nil {
			return Resume{}, err
		}
	}
	if _, err := s.Get(ctx, userID, id); err != nil {
		return Resume{}, err
	}
	return s.repo.UpdateResume(ctx, id, p)
}

func (s *service) Export(ctx context.Context, userID, id uuid.UUID, f export.Format) ([]byte, Resume, error) {
	r, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, Resume{}, err
	}
	data, err := export.Render(f, r.Content)
	if err != nil {
		if errors.Is(err, apperr.ErrNoContent) {
			return nil, r, err
		}
		return nil, r, fmt.Errorf("export %s: %w", f, err)
	}
	return data, r, nil
}
