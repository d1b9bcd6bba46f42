package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/artem13815/career/pkg/jobs"
)

const (
	companyColumns = `c.id, c.name, c.industry, c.location, c.size, c.website, c.description, c.logo, c.created_at`
	jobColumns     = `j.id, j.company_id, j.title, j.description, j.requirements, j.salary_min, j.salary_max,
		j.location, j.type, j.work_mode, j.skills, j.is_active, j.created_at`
	applicationColumns = `a.id, a.user_id, a.job_id, a.status, a.notes, a.applied_at, a.updated_at`
)

func companyDest(c *jobs.Company) []any {
	return []any{&c.ID, &c.Name, &c.Industry, &c.Location, &c.Size, &c.Website, &c.Description, &c.Logo, &c.CreatedAt}
}

func jobDest(j *jobs.Job) []any {
	return []any{&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.Requirements, &j.SalaryMin, &j.SalaryMax,
		&j.Location, &j.Type, &j.WorkMode, &j.Skills, &j.IsActive, &j.CreatedAt}
}

func applicationDest(a *jobs.Application) []any {
	return []any{&a.ID, &a.UserID, &a.JobID, &a.Status, &a.Notes, &a.AppliedAt, &a.UpdatedAt}
}

func scanCompany(row scanner) (jobs.Company, error) {
	var c jobs.Company
	err := row.Scan(companyDest(&c)...)
	return c, err
}

func scanJobWithCompany(row scanner) (jobs.JobWithCompany, error) {
	var j jobs.JobWithCompany
	err := row.Scan(append(jobDest(&j.Job), companyDest(&j.Company)...)...)
	if j.Skills == nil {
		j.Skills = []string{}
	}
	return j, err
}

func scanApplication(row scanner) (jobs.Application, error) {
	var a jobs.Application
	err := row.Scan(applicationDest(&a)...)
	return a, err
}

func scanApplicationWithJob(row scanner) (jobs.ApplicationWithJob, error) {
	var a jobs.ApplicationWithJob
	dest := applicationDest(&a.Application)
	dest = append(dest, jobDest(&a.Job.Job)...)
	dest = append(dest, companyDest(&a.Job.Company)...)
	err := row.Scan(dest...)
	if a.Job.Skills == nil {
		a.Job.Skills = []string{}
	}
	return a, err
}

func (s *Store) ListCompanies(ctx context.Context) ([]jobs.Company, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+companyColumns+` FROM companies c ORDER BY c.name, c.id`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanCompany)
}

func (s *Store) ListJobs(ctx context.Context) ([]jobs.JobWithCompany, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+jobColumns+`, `+companyColumns+`
		FROM jobs j JOIN companies c ON c.id = j.company_id
		WHERE j.is_active
		ORDER BY j.created_at DESC, j.id`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanJobWithCompany)
}

func (s *Store) GetJob(ctx context.Context, id uuid.UUID) (jobs.JobWithCompany, error) {
	j, err := scanJobWithCompany(s.pool.QueryRow(ctx, `
		SELECT `+jobColumns+`, `+companyColumns+`
		FROM jobs j JOIN companies c ON c.id = j.company_id
		WHERE j.id = $1`, id))
	return j, mapErr(err)
}

func (s *Store) ListApplications(ctx context.Context, userID uuid.UUID) ([]jobs.ApplicationWithJob, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+applicationColumns+`, `+jobColumns+`, `+companyColumns+`
		FROM job_applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE a.user_id = $1
		ORDER BY a.applied_at DESC, a.id`, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanApplicationWithJob)
}

func (s *Store) CreateApplication(ctx context.Context, a jobs.Application) (jobs.Application, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	out, err := scanApplication(s.pool.QueryRow(ctx, `
		INSERT INTO job_applications AS a (id, user_id, job_id, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+applicationColumns,
		a.ID, a.UserID, a.JobID, string(a.Status), a.Notes))
	return out, mapErr(err)
}

func (s *Store) UpdateApplication(ctx context.Context, userID, id uuid.UUID, p jobs.ApplicationPatch) (jobs.Application, error) {
	var status *string
	if p.Status != nil {
		st := string(*p.Status)
		status = &st
	}
	out, err := scanApplication(s.pool.QueryRow(ctx, `
		UPDATE job_applications AS a SET
			status = COALESCE($3, a.status),
			notes = COALESCE($4, a.notes),
			updated_at = now()
		WHERE a.id = $1 AND a.user_id = $2
		RETURNING `+applicationColumns,
		id, userID, status, p.Notes))
	return out, mapErr(err)
}
