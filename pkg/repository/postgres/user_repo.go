package postgres

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/artem13815/career/pkg/auth"
)

const userColumns = `id, COALESCE(email, ''), first_name, last_name, profile_image_url, linkedin_url,
	location, title, password_hash, created_at, updated_at`

func scanUser(row scanner) (auth.User, error) {
	var u auth.User
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.ProfileImageURL, &u.LinkedinURL,
		&u.Location, &u.Title, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (s *Store) CreateUser(ctx context.Context, user auth.User) (auth.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	row := s.pool.QueryRow(ctx, `
		INSERT INTO users (id, email, first_name, last_name, profile_image_url, linkedin_url, location, title, password_hash)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+userColumns,
		user.ID, strings.ToLower(user.Email), user.FirstName, user.LastName, user.ProfileImageURL,
		user.LinkedinURL, user.Location, user.Title, user.PasswordHash)
	u, err := scanUser(row)
	return u, mapErr(err)
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (auth.User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	return u, mapErr(err)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (auth.User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`,
		strings.ToLower(email)))
	return u, mapErr(err)
}
