package ports

import (
	"context"
	"time"

	"github.com/ShaharSolema/TasksFlow/internal/core/domain"
)

// JobPatch carries a partial update of a job. Nil fields are left untouched.
type JobPatch struct {
	Company           *string
	Title             *string
	Status            *string
	Order             *int
	JobType           *string
	Labels            *[]string
	Priority          *string
	Location          *string
	Link              *string
	ExpectedSalary    *float64
	SalaryCurrency    *string
	SalarySource      *string
	Notes             *string
	AppliedDate       *time.Time
	NextInterviewDate *time.Time
	FollowUpDate      *time.Time
	Reminders         *[]domain.Reminder
}

// JobRepository defines persistence for job applications, owner-scoped like
// TaskRepository.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	ListByOwner(ctx context.Context, owner string) ([]*domain.Job, error)
	FindByID(ctx context.Context, id, owner string) (*domain.Job, error)
	Update(ctx context.Context, id, owner string, patch JobPatch) (*domain.Job, error)
	Delete(ctx context.Context, id, owner string) error
}
