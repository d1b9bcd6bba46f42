package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/artem13815/career/pkg/seed"
)

// stamp spaces seeded rows one minute apart so the first item of each list is
// the newest one. now() is frozen for the whole transaction and would tie them.
func stamp(base time.Time, i int) time.Time {
	return base.Add(-time.Duration(i) * time.Minute)
}

// Seed inserts d inside a single transaction. Nothing is written when any
// company already exists, and any failure rolls the whole dataset back.
func (s *Store) Seed(ctx context.Context, d seed.Dataset) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var seeded bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM companies)`).Scan(&seeded); err != nil {
		return fmt.Errorf("check seed: %w", err)
	}
	if seeded {
		slog.Debug("reference data already present, skipping seed")
		return nil
	}

	base := time.Now().UTC()
	var userID uuid.UUID
	u := d.User
	err = tx.QueryRow(ctx, `
		INSERT INTO users (id, email, first_name, last_name, profile_image_url, linkedin_url, location, title)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id`,
		uuid.New(), strings.ToLower(u.Email), u.FirstName, u.LastName, u.ProfileImageURL,
		u.LinkedinURL, u.Location, u.Title).Scan(&userID)
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	companies := make(map[string]uuid.UUID, len(d.Companies))
	for _, c := range d.Companies {
		id := uuid.New()
		if _, err := tx.Exec(ctx, `
			INSERT INTO companies (id, name, industry, location, size, website, description, logo)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			id, c.Name, c.Industry, c.Location, c.Size, c.Website, c.Description, c.Logo); err != nil {
			return fmt.Errorf("seed company %q: %w", c.Name, err)
		}
		companies[c.Name] = id
	}

	jobIDs := make(map[string]uuid.UUID, len(d.Jobs))
	for i, j := range d.Jobs {
		companyID, ok := companies[j.Company]
		if !ok {
			return fmt.Errorf("seed job %q: unknown company %q", j.Title, j.Company)
		}
		id := uuid.New()
		if _, err := tx.Exec(ctx, `
			INSERT INTO jobs (id, company_id, title, description, requirements, salary_min, salary_max,
				location, type, work_mode, skills, is_active, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, TRUE, $12)`,
			id, companyID, j.Title, j.Description, j.Requirements, j.SalaryMin, j.SalaryMax,
			j.Location, string(j.Type), string(j.WorkMode), j.Skills, stamp(base, i)); err != nil {
			return fmt.Errorf("seed job %q: %w", j.Title, err)
		}
		jobIDs[j.Company+"/"+j.Title] = id
	}

	skillIDs := make(map[string]uuid.UUID, len(d.Skills))
	for _, sk := range d.Skills {
		var id uuid.UUID
		err := tx.QueryRow(ctx, `
			INSERT INTO skills (id, name, category, description)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id`,
			uuid.New(), sk.Name, sk.Category, sk.Description).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed skill %q: %w", sk.Name, err)
		}
		skillIDs[sk.Name] = id
	}

	for _, us := range d.UserSkills {
		skillID, ok := skillIDs[us.Skill]
		if !ok {
			return fmt.Errorf("seed user skill: unknown skill %q", us.Skill)
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO user_skills (id, user_id, skill_id, level, verified)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (user_id, skill_id) DO NOTHING`,
			uuid.New(), userID, skillID, string(us.Level), us.Verified); err != nil {
			return fmt.Errorf("seed user skill %q: %w", us.Skill, err)
		}
	}

	for i, p := range d.LearningPaths {
		if _, err := tx.Exec(ctx, `
			INSERT INTO learning_paths (id, user_id, title, description, category, total_modules,
				completed_modules, estimated_hours, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`,
			uuid.New(), userID, p.Title, p.Description, p.Category, p.TotalModules,
			p.CompletedModules, p.EstimatedHours, p.IsActive, stamp(base, i)); err != nil {
			return fmt.Errorf("seed learning path %q: %w", p.Title, err)
		}
	}

	for i, b := range d.Badges {
		if _, err := tx.Exec(ctx, `
			INSERT INTO badges (id, user_id, name, description, icon, category, earned_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			uuid.New(), userID, b.Name, b.Description, b.Icon, b.Category, stamp(base, i)); err != nil {
			return fmt.Errorf("seed badge %q: %w", b.Name, err)
		}
	}

	for i, a := range d.Applications {
		jobID, ok := jobIDs[a.Company+"/"+a.JobTitle]
		if !ok {
			return fmt.Errorf("seed application: unknown job %q at %q", a.JobTitle, a.Company)
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO job_applications (id, user_id, job_id, status, notes, applied_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $6)`,
			uuid.New(), userID, jobID, string(a.Status), a.Notes, stamp(base, i)); err != nil {
			return fmt.Errorf("seed application %q: %w", a.JobTitle, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	slog.Info("database seeded",
		"companies", len(d.Companies), "jobs", len(d.Jobs), "skills", len(d.Skills))
	return nil
}
