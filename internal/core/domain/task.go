package domain

import "time"

// Task is a kanban card. Status is a free column key owned by the same user;
// it is not foreign-key checked, so deleting or renaming a column leaves
// cards pointing at the old key.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Labels      []string   `json:"labels,omitempty"`
	Order       int        `json:"order"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Owner       string     `json:"owner"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// DefaultTaskStatus is applied when a task is created without a status.
const DefaultTaskStatus = "todo"
