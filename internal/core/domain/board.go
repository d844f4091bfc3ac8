package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind selects which board a request operates on.
type Kind string

const (
	KindTask Kind = "task"
	KindJob  Kind = "job"
)

// ParseKind validates the :kind path parameter.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindTask, KindJob:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: invalid kind %q", ErrInvalidInput, s)
}

// BoardField names one of a user's nested board collections. Values match the
// stored document field names so repositories can address a single field.
type BoardField string

const (
	FieldTaskColumns    BoardField = "taskColumns"
	FieldJobColumns     BoardField = "jobColumns"
	FieldTaskLabels     BoardField = "taskLabels"
	FieldJobLabels      BoardField = "jobLabels"
	FieldTaskCategories BoardField = "taskCategories"
	FieldJobCategories  BoardField = "jobCategories"
)

// Column is one kanban column on a user's board. Key is derived from the
// display name at creation time and never changes afterwards.
type Column struct {
	Key   string `json:"key" bson:"key"`
	Name  string `json:"name" bson:"name"`
	Color string `json:"color" bson:"color"`
}

// Tag is a label or category entry. Names are unique per collection,
// case-insensitively.
type Tag struct {
	Name  string `json:"name" bson:"name"`
	Color string `json:"color" bson:"color"`
}

var nonSlugRuns = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a column key from a display name: lowercase, runs of
// non-alphanumeric characters collapse to a single hyphen, edge hyphens
// trimmed. An empty result means the name cannot become a key.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonSlugRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
