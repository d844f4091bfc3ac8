package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ShaharSolema/TasksFlow/internal/core/domain"
	"github.com/ShaharSolema/TasksFlow/internal/core/ports"
)

// BoardDefaults is the seed and fallback configuration injected at
// construction. Tests can swap in different defaults.
type BoardDefaults struct {
	TaskColumns   []domain.Column
	JobColumns    []domain.Column
	ColumnColor   string
	LabelColor    string
	CategoryColor string
}

// DefaultBoardConfig returns the stock defaults: three task columns, five job
// columns, muted colors.
func DefaultBoardConfig() BoardDefaults {
	return BoardDefaults{
		TaskColumns: []domain.Column{
			{Key: "todo", Name: "todo", Color: "#e9dfcf"},
			{Key: "in-progress", Name: "in progress", Color: "#f2e2c2"},
			{Key: "done", Name: "done", Color: "#dcecdf"},
		},
		JobColumns: []domain.Column{
			{Key: "saved", Name: "saved", Color: "#e9dfcf"},
			{Key: "applied", Name: "applied", Color: "#d6e4f0"},
			{Key: "interview", Name: "interview", Color: "#f2e2c2"},
			{Key: "offer", Name: "offer", Color: "#dcecdf"},
			{Key: "rejected", Name: "rejected", Color: "#f4d3d0"},
		},
		ColumnColor:   "#e9dfcf",
		LabelColor:    "#6a8c7d",
		CategoryColor: "#a58b6f",
	}
}

// kindSpec routes a kind to its stored fields and seed set. Built once at
// construction so no call path selects fields by string at runtime.
type kindSpec struct {
	columns    domain.BoardField
	labels     domain.BoardField
	categories domain.BoardField
	seed       []domain.Column
}

type boardService struct {
	users    ports.UserRepository
	defaults BoardDefaults
	specs    map[domain.Kind]kindSpec
	log      zerolog.Logger
}

// NewBoardService returns the collection engine over a user's board
// collections. All mutations are read-modify-write on the owning user
// document; concurrent mutations from the same user are last-write-wins.
func NewBoardService(users ports.UserRepository, defaults BoardDefaults, log zerolog.Logger) ports.BoardService {
	return &boardService{
		users:    users,
		defaults: defaults,
		specs: map[domain.Kind]kindSpec{
			domain.KindTask: {
				columns:    domain.FieldTaskColumns,
				labels:     domain.FieldTaskLabels,
				categories: domain.FieldTaskCategories,
				seed:       defaults.TaskColumns,
			},
			domain.KindJob: {
				columns:    domain.FieldJobColumns,
				labels:     domain.FieldJobLabels,
				categories: domain.FieldJobCategories,
				seed:       defaults.JobColumns,
			},
		},
		log: log,
	}
}

func (s *boardService) spec(kind domain.Kind) (kindSpec, error) {
	sp, ok := s.specs[kind]
	if !ok {
		return kindSpec{}, fmt.Errorf("%w: invalid kind %q", domain.ErrInvalidInput, kind)
	}
	return sp, nil
}

// Columns returns the user's column sequence for the kind, seeding the
// defaults when it is empty. Seeding persists before returning, so the first
// read is also a write.
func (s *boardService) Columns(ctx context.Context, userID string, kind domain.Kind) ([]domain.Column, error) {
	sp, err := s.spec(kind)
	if err != nil {
		return nil, err
	}

	cols, err := s.users.Columns(ctx, userID, sp.columns)
	if err != nil {
		return nil, err
	}
	if len(cols) > 0 {
		return cols, nil
	}
	return s.ensureSeeded(ctx, userID, sp)
}

// ensureSeeded writes the kind's default column set for the user and returns
// a copy of it.
func (s *boardService) ensureSeeded(ctx context.Context, userID string, sp kindSpec) ([]domain.Column, error) {
	seeded := make([]domain.Column, len(sp.seed))
	copy(seeded, sp.seed)
	if err := s.users.SetColumns(ctx, userID, sp.columns, seeded); err != nil {
		return nil, err
	}
	s.log.Debug().Str("user_id", userID).Str("field", string(sp.columns)).Msg("seeded default columns")
	return seeded, nil
}

func (s *boardService) AddColumn(ctx context.Context, userID string, kind domain.Kind, name, color string) ([]domain.Column, error) {
	sp, err := s.spec(kind)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	key := domain.Slugify(trimmed)
	if key == "" {
		return nil, fmt.Errorf("%w: invalid name", domain.ErrInvalidInput)
	}

	cols, err := s.users.Columns(ctx, userID, sp.columns)
	if err != nil {
		return nil, err
	}
	for _, col := range cols {
		if col.Key == key {
			return nil, domain.ErrColumnExists
		}
	}

	if color == "" {
		color = s.defaults.ColumnColor
	}
	next := append(cols, domain.Column{Key: key, Name: trimmed, Color: color})
	if err := s.users.SetColumns(ctx, userID, sp.columns, next); err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", userID).Str("kind", string(kind)).Str("key", key).Msg("column added")
	return next, nil
}

func (s *boardService) UpdateColumn(ctx context.Context, userID string, kind domain.Kind, key string, patch ports.ColumnPatch) ([]domain.Column, error) {
	sp, err := s.spec(kind)
	if err != nil {
		return nil, err
	}
	cols, err := s.users.Columns(ctx, userID, sp.columns)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, col := range cols {
		if col.Key == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrColumnNotFound
	}

	if patch.Name != nil {
		trimmed := strings.TrimSpace(*patch.Name)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrInvalidInput)
		}
		// The key stays as-is: renaming never reslugs.
		cols[idx].Name = trimmed
	}
	if patch.Color != nil {
		cols[idx].Color = *patch.Color
	}

	if err := s.users.SetColumns(ctx, userID, sp.columns, cols); err != nil {
		return nil, err
	}
	return cols, nil
}

func (s *boardService) DeleteColumn(ctx context.Context, userID string, kind domain.Kind, key string) ([]domain.Column, error) {
	sp, err := s.spec(kind)
	if err != nil {
		return nil, err
	}
	cols, err := s.users.Columns(ctx, userID, sp.columns)
	if err != nil {
		return nil, err
	}

	next := cols[:0:0]
	for _, col := range cols {
		if col.Key != key {
			next = append(next, col)
		}
	}
	if len(next) == len(cols) {
		return nil, domain.ErrColumnNotFound
	}

	// Items still referencing the deleted key keep their dangling status;
	// there is deliberately no cascade.
	if err := s.users.SetColumns(ctx, userID, sp.columns, next); err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", userID).Str("kind", string(kind)).Str("key", key).Msg("column deleted")
	return next, nil
}

func (s *boardService) ReorderColumns(ctx context.Context, userID string, kind domain.Kind, orderedKeys []string) ([]domain.Column, error) {
	sp, err := s.spec(kind)
	if err != nil {
		return nil, err
	}
	if len(orderedKeys) == 0 {
		return nil, fmt.Errorf("%w: order array is required", domain.ErrInvalidInput)
	}

	cols, err := s.users.Columns(ctx, userID, sp.columns)
	if err != nil {
		return nil, err
	}
	if len(orderedKeys) != len(cols) {
		return nil, fmt.Errorf("%w: order length mismatch", domain.ErrInvalidInput)
	}

	byKey := make(map[string]domain.Column, len(cols))
	for _, col := range cols {
		byKey[col.Key] = col
	}

	next := make([]domain.Column, 0, len(orderedKeys))
	for _, key := range orderedKeys {
		col, ok := byKey[key]
		if !ok {
			return nil, fmt.Errorf("%w: invalid column order", domain.ErrInvalidInput)
		}
		// A repeated key would shrink the map lookup set; delete to catch it.
		delete(byKey, key)
		next = append(next, col)
	}

	if err := s.users.SetColumns(ctx, userID, sp.columns, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Tags returns labels and categories together. Unlike columns there is no
// seeding: empty is a valid terminal state.
func (s *boardService) Tags(ctx context.Context, userID string, kind domain.Kind) (*ports.TagSet, error) {
	sp, err := s.spec(kind)
	if err != nil {
		return nil, err
	}
	labels, err := s.users.Tags(ctx, userID, sp.labels)
	if err != nil {
		return nil, err
	}
	categories, err := s.users.Tags(ctx, userID, sp.categories)
	if err != nil {
		return nil, err
	}
	if labels == nil {
		labels = []domain.Tag{}
	}
	if categories == nil {
		categories = []domain.Tag{}
	}
	return &ports.TagSet{Labels: labels, Categories: categories}, nil
}

func (s *boardService) AddLabel(ctx context.Context, userID string, kind domain.Kind, name, color string) ([]domain.Tag, error) {
	sp, err := s.spec(kind)
	if err != nil {
		return nil, err
	}
	return s.addTag(ctx, userID, sp.labels, name, color, s.defaults.LabelColor)
}

func (s *boardService) AddCategory(ctx context.Context, userID string, kind domain.Kind, name, color string) ([]domain.Tag, error) {
	sp, err := s.spec(kind)
	if err != nil {
		return nil, err
	}
	return s.addTag(ctx, userID, sp.categories, name, color, s.defaults.CategoryColor)
}

// addTag appends a tag after a case-insensitive duplicate-name check. The
// stored casing is the trimmed input as submitted.
func (s *boardService) addTag(ctx context.Context, userID string, field domain.BoardField, name, color, fallback string) ([]domain.Tag, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	tags, err := s.users.Tags(ctx, userID, field)
	if err != nil {
		return nil, err
	}
	for _, tag := range tags {
		if strings.EqualFold(tag.Name, trimmed) {
			return nil, domain.ErrTagExists
		}
	}

	if color == "" {
		color = fallback
	}
	next := append(tags, domain.Tag{Name: trimmed, Color: color})
	if err := s.users.SetTags(ctx, userID, field, next); err != nil {
		return nil, err
	}
	return next, nil
}
