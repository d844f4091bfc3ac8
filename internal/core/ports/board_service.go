package ports

import (
	"context"

	"github.com/ShaharSolema/TasksFlow/internal/core/domain"
)

// ColumnPatch carries a partial column update. The key itself never changes;
// renaming does not reslug.
type ColumnPatch struct {
	Name  *string
	Color *string
}

// TagSet is the combined view returned by the tags endpoint.
type TagSet struct {
	Labels     []domain.Tag `json:"labels"`
	Categories []domain.Tag `json:"categories"`
}

// BoardService is the collection engine: operations over a user's nested
// keyed board collections. Every call is scoped to the authenticated user.
type BoardService interface {
	// Columns lazily seeds the kind's default set when the stored sequence is
	// empty, persisting the seed before returning.
	Columns(ctx context.Context, userID string, kind domain.Kind) ([]domain.Column, error)
	AddColumn(ctx context.Context, userID string, kind domain.Kind, name, color string) ([]domain.Column, error)
	UpdateColumn(ctx context.Context, userID string, kind domain.Kind, key string, patch ColumnPatch) ([]domain.Column, error)
	DeleteColumn(ctx context.Context, userID string, kind domain.Kind, key string) ([]domain.Column, error)
	// ReorderColumns accepts only a full permutation of the current keys;
	// anything else is rejected and the stored order is left untouched.
	ReorderColumns(ctx context.Context, userID string, kind domain.Kind, orderedKeys []string) ([]domain.Column, error)

	Tags(ctx context.Context, userID string, kind domain.Kind) (*TagSet, error)
	AddLabel(ctx context.Context, userID string, kind domain.Kind, name, color string) ([]domain.Tag, error)
	AddCategory(ctx context.Context, userID string, kind domain.Kind, name, color string) ([]domain.Tag, error)
}
