package ports

import (
	"context"
	"time"

	"github.com/ShaharSolema/TasksFlow/internal/core/domain"
)

// TaskPatch carries a partial update. Nil fields are left untouched; non-nil
// fields overwrite, matching the original partial-update semantics.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
	Labels      *[]string
	Order       *int
	DueDate     *time.Time
}

// DayCount is one bucket of the tasks-per-day analytics grouping.
type DayCount struct {
	Date  string `json:"date" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}

// StatusCount is one bucket of the status distribution grouping.
type StatusCount struct {
	Status string `json:"status" bson:"_id"`
	Count  int64  `json:"count" bson:"count"`
}

// OwnerCount is one row of the top-users-by-task-count grouping.
type OwnerCount struct {
	UserID   string `json:"userId" bson:"userId"`
	Username string `json:"username" bson:"username"`
	Count    int64  `json:"count" bson:"count"`
}

// TaskRepository defines persistence for tasks. Every lookup and mutation is
// scoped by owner; a wrong-owner match is reported as ErrTaskNotFound.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	ListByOwner(ctx context.Context, owner string) ([]*domain.Task, error)
	FindByID(ctx context.Context, id, owner string) (*domain.Task, error)
	Update(ctx context.Context, id, owner string, patch TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id, owner string) error

	// Analytics aggregations, used by the admin dashboard.
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	PerDay(ctx context.Context) ([]DayCount, error)
	StatusDistribution(ctx context.Context) ([]StatusCount, error)
	TopOwners(ctx context.Context, limit int) ([]OwnerCount, error)
}
