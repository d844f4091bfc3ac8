package ports

import (
	"context"

	"github.com/ShaharSolema/TasksFlow/internal/core/domain"
)

// ProfileUpdate carries the fields a user may change on their own account.
// Nil means "leave unchanged".
type ProfileUpdate struct {
	Username *string
	Email    *string
}

// UserRepository defines persistence over the users collection, including the
// nested board collections addressed field-by-field so a mutation writes back
// only the sequence it touched.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// ExistsOther reports whether a user other than excludeID already holds
	// the given username or email. Empty excludeID checks all users.
	ExistsOther(ctx context.Context, excludeID, username, email string) (bool, error)
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*domain.User, error)
	UpdateRole(ctx context.Context, id, role string) error
	List(ctx context.Context) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)

	Columns(ctx context.Context, userID string, field domain.BoardField) ([]domain.Column, error)
	SetColumns(ctx context.Context, userID string, field domain.BoardField, cols []domain.Column) error
	Tags(ctx context.Context, userID string, field domain.BoardField) ([]domain.Tag, error)
	SetTags(ctx context.Context, userID string, field domain.BoardField, tags []domain.Tag) error
}
