package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/artem13815/career/pkg/linkedin"
)

const postColumns = `id, user_id, content, topic, status, created_at, published_at`

func scanPost(row scanner) (linkedin.Post, error) {
	var p linkedin.Post
	err := row.Scan(&p.ID, &p.UserID, &p.Content, &p.Topic, &p.Status, &p.CreatedAt, &p.PublishedAt)
	return p, err
}

func (s *Store) CreatePost(ctx context.Context, p linkedin.Post) (linkedin.Post, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	out, err := scanPost(s.pool.QueryRow(ctx, `
		INSERT INTO linkedin_posts (id, user_id, content, topic, status, published_at)
		VALUES ($1, $2, $3, $4, $5, CASE WHEN $5 = 'published' THEN now() END)
		RETURNING `+postColumns,
		p.ID, p.UserID, p.Content, p.Topic, string(p.Status)))
	return out, mapErr(err)
}

func (s *Store) ListPosts(ctx context.Context, userID uuid.UUID) ([]linkedin.Post, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+postColumns+` FROM linkedin_posts
		WHERE user_id = $1
		ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanPost)
}

// UpdatePost stamps published_at on the transition to published and clears it on a return to draft.
func (s *Store) UpdatePost(ctx context.Context, userID, id uuid.UUID, p linkedin.PostPatch) (linkedin.Post, error) {
	var status *string
	if p.Status != nil {
		st := string(*p.Status)
		status = &st
	}
	out, err := scanPost(s.pool.QueryRow(ctx, `
		UPDATE linkedin_posts SET
			content = COALESCE($3, content),
			status = COALESCE($4::text, status),
			published_at = CASE
				WHEN $4::text = 'published' AND status <> 'published' THEN now()
				WHEN $4::text = 'draft' THEN NULL
				ELSE published_at
			END
		WHERE id = $1 AND user_id = $2
		RETURNING `+postColumns,
		id, userID, p.Content, status))
	return out, mapErr(err)
}
