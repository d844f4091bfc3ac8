package ports

import (
	"context"
	"time"

	"github.com/ShaharSolema/TasksFlow/internal/core/domain"
)

// CreateJobInput carries the fields accepted when creating a job application.
type CreateJobInput struct {
	Company           string
	Title             string
	Status            string
	Order             *int
	JobType           string
	Labels            []string
	Priority          string
	Location          string
	Link              string
	ExpectedSalary    *float64
	SalaryCurrency    string
	SalarySource      string
	Notes             string
	AppliedDate       *time.Time
	NextInterviewDate *time.Time
	FollowUpDate      *time.Time
	Reminders         []domain.Reminder
}

// SalaryEstimate is the normalized response of the external salary API.
// Estimate is whatever value the upstream reported under one of its known
// field names, or nil when nothing matched.
type SalaryEstimate struct {
	Estimate any            `json:"estimate"`
	Currency string         `json:"currency"`
	Raw      map[string]any `json:"raw"`
}

// SalaryClient calls the external salary estimate service.
type SalaryClient interface {
	Estimate(ctx context.Context, title, location, jobType string) (*SalaryEstimate, error)
}

// JobService defines owner-scoped job use cases plus the salary pass-through.
type JobService interface {
	Create(ctx context.Context, owner string, input CreateJobInput) (*domain.Job, error)
	List(ctx context.Context, owner string) ([]*domain.Job, error)
	Get(ctx context.Context, owner, id string) (*domain.Job, error)
	Update(ctx context.Context, owner, id string, patch JobPatch) (*domain.Job, error)
	Delete(ctx context.Context, owner, id string) error
	EstimateSalary(ctx context.Context, title, location, jobType string) (*SalaryEstimate, error)
}
