package resume

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/career/pkg/apperr"
	"github.com/artem13815/career/pkg/resume/content"
)

type Format string

const (
	FormatOnePage  Format = "1-page"
	FormatDetailed Format = "detailed"
	FormatUploaded Format = "uploaded"
)

// ParseFormat validates a format tag; empty means 1-page.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "":
		return FormatOnePage, nil
	case FormatOnePage, FormatDetailed, FormatUploaded:
		return Format(s), nil
	}
	return "", apperr.Validation("format", "must be one of 1-page, detailed, uploaded")
}

// Resume is owned by exactly one user. Content is nil when the stored body
// is missing or does not decode to a document.
type Resume struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"userId"`
	Title     string            `json:"title"`
	Content   *content.Document `json:"content"`
	Format    Format            `json:"format"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Title   *string
	Content *content.Document
	Format  *Format
}

// Upload describes a stored source file of an uploaded resume.
type Upload struct {
	ResumeID   uuid.UUID
	Filename   string
	MimeType   string
	Size       int64
	StorageURI string
	Text       string
}

// Repository is the storage port for resumes. Missing ids yield apperr.ErrNotFound.
type Repository interface {
	CreateResume(ctx context.Context, r Resume) (Resume, error)
	UpdateResume(ctx context.Context, id uuid.UUID, p Patch) (Resume, error)
	GetResume(ctx context.Context, id uuid.UUID) (Resume, error)
	// ListResumes returns the user's resumes, most recently updated first.
	ListResumes(ctx context.Context, userID uuid.UUID) ([]Resume, error)
	SaveUpload(ctx context.Context, u Upload) error
}
