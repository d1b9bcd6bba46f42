package postgres

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/artem13815/career/pkg/resume"
	"github.com/artem13815/career/pkg/resume/content"
)

const resumeColumns = `id, user_id, title, content, format, created_at, updated_at`

// scanResume leaves Content nil when the stored body is absent or unreadable.
func scanResume(row scanner) (resume.Resume, error) {
	var (
		r   resume.Resume
		raw []byte
	)
	if err := row.Scan(&r.ID, &r.UserID, &r.Title, &raw, &r.Format, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return resume.Resume{}, err
	}
	if len(raw) > 0 {
		doc, err := content.Decode(raw)
		if err != nil {
			slog.Warn("stored resume content is unreadable", "resume_id", r.ID, "err", err)
		} else {
			r.Content = &doc
		}
	}
	return r, nil
}

func encodeContent(doc *content.Document) ([]byte, error) {
	if doc == nil {
		return nil, nil
	}
	return content.Encode(*doc)
}

func (s *Store) CreateResume(ctx context.Context, r resume.Resume) (resume.Resume, error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	raw, err := encodeContent(r.Content)
	if err != nil {
		return resume.Resume{}, err
	}
	out, err := scanResume(s.pool.QueryRow(ctx, `
		INSERT INTO resumes (id, user_id, title, content, format)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+resumeColumns,
		r.ID, r.UserID, r.Title, raw, string(r.Format)))
	return out, mapErr(err)
}

func (s *Store) UpdateResume(ctx context.Context, id uuid.UUID, p resume.Patch) (resume.Resume, error) {
	raw, err := encodeContent(p.Content)
	if err != nil {
		return resume.Resume{}, err
	}
	var format *string
	if p.Format != nil {
		f := string(*p.Format)
		format = &f
	}
	out, err := scanResume(s.pool.QueryRow(ctx, `
		UPDATE resumes SET
			title = COALESCE($2, title),
			content = COALESCE($3::jsonb, content),
			format = COALESCE($4, format),
			updated_at = now()
		WHERE id = $1
		RETURNING `+resumeColumns,
		id, p.Title, raw, format))
	return out, mapErr(err)
}

func (s *Store) GetResume(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	out, err := scanResume(s.pool.QueryRow(ctx, `SELECT `+resumeColumns+` FROM resumes WHERE id = $1`, id))
	return out, mapErr(err)
}

func (s *Store) ListResumes(ctx context.Context, userID uuid.UUID) ([]resume.Resume, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+resumeColumns+` FROM resumes
		WHERE user_id = $1
		ORDER BY updated_at DESC, id`, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanResume)
}

func (s *Store) SaveUpload(ctx context.Context, u resume.Upload) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO resume_uploads (resume_id, filename, mime_type, size_bytes, storage_uri, text)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (resume_id) DO UPDATE SET
			filename = EXCLUDED.filename,
			mime_type = EXCLUDED.mime_type,
			size_bytes = EXCLUDED.size_bytes,
			storage_uri = EXCLUDED.storage_uri,
			text = EXCLUDED.text`,
		u.ResumeID, u.Filename, u.MimeType, u.Size, u.StorageURI, u.Text)
	return mapErr(err)
}
