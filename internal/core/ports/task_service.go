package ports

import (
	"context"
	"time"

	"github.com/ShaharSolema/TasksFlow/internal/core/domain"
)

// CreateTaskInput carries the fields accepted when creating a task. Only the
// title is required; everything else falls back to defaults.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	Labels      []string
	Order       *int
	DueDate     *time.Time
}

// TaskService defines owner-scoped task use cases.
type TaskService interface {
	Create(ctx context.Context, owner string, input CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context, owner string) ([]*domain.Task, error)
	Get(ctx context.Context, owner, id string) (*domain.Task, error)
	Update(ctx context.Context, owner, id string, patch TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, owner, id string) error
}
