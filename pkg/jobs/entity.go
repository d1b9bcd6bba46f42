package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/career/pkg/apperr"
)

type Company struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Industry    string    `json:"industry"`
	Location    string    `json:"location"`
	Size        string    `json:"size"`
	Website     string    `json:"website"`
	Description string    `json:"description"`
	Logo        string    `json:"logo,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type JobType string

const (
	FullTime JobType = "full-time"
	PartTime JobType = "part-time"
	Contract JobType = "contract"
)

func ParseJobType(s string) (JobType, error) {
	switch t := JobType(s); t {
	case "":
		return FullTime, nil
	case FullTime, PartTime, Contract:
		return t, nil
	}
	return "", apperr.Validation("type", "must be one of full-time, part-time, contract")
}

type WorkMode string

const (
	Remote WorkMode = "remote"
	OnSite WorkMode = "on-site"
	Hybrid WorkMode = "hybrid"
)

func ParseWorkMode(s string) (WorkMode, error) {
	switch m := WorkMode(s); m {
	case "":
		return Hybrid, nil
	case Remote, OnSite, Hybrid:
		return m, nil
	}
	return "", apperr.Validation("workMode", "must be one of remote, on-site, hybrid")
}

type Job struct {
	ID           uuid.UUID `json:"id"`
	CompanyID    uuid.UUID `json:"companyId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	SalaryMin    *int      `json:"salaryMin"`
	SalaryMax    *int      `json:"salaryMax"`
	Location     string    `json:"location"`
	Type         JobType   `json:"type"`
	WorkMode     WorkMode  `json:"workMode"`
	Skills       []string  `json:"skills"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// JobWithCompany is a job joined with its company.
type JobWithCompany struct {
	Job
	Company Company `json:"company"`
}

// Status is the closed set of application states. Any state may follow any other.
type Status string

const (
	StatusApplied   Status = "applied"
	StatusInReview  Status = "in_review"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
)

// ParseStatus validates a status; empty means applied.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case "":
		return StatusApplied, nil
	case StatusApplied, StatusInReview, StatusInterview, StatusOffer, StatusRejected:
		return st, nil
	}
	return "", apperr.Validation("status", "must be one of applied, in_review, interview, offer, rejected")
}

type Application struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	JobID     uuid.UUID `json:"jobId"`
	Status    Status    `json:"status"`
	Notes     string    `json:"notes"`
	AppliedAt time.Time `json:"appliedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ApplicationWithJob is an application joined with its job and company.
type ApplicationWithJob struct {
	Application
	Job JobWithCompany `json:"job"`
}

type ApplicationPatch struct {
	Status *Status
	Notes  *string
}

// Repository is the storage port for jobs and applications.
type Repository interface {
	// ListCompanies orders by name.
	ListCompanies(ctx context.Context) ([]Company, error)
	// ListJobs returns active jobs, newest first.
	ListJobs(ctx context.Context) ([]JobWithCompany, error)
	GetJob(ctx context.Context, id uuid.UUID) (JobWithCompany, error)
	// ListApplications returns the user's applications, most recent first.
	ListApplications(ctx context.Context, userID uuid.UUID) ([]ApplicationWithJob, error)
	CreateApplication(ctx context.Context, a Application) (Application, error)
	// UpdateApplication only touches rows owned by userID.
	UpdateApplication(ctx context.Context, userID, id uuid.UUID, p ApplicationPatch) (Application, error)
}
