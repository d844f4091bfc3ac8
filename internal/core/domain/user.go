package domain

import (
	"regexp"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// emailPattern is the loose RFC-shape check applied on register and profile
// update: something@something.something, no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidRole reports whether s is a known role.
func ValidRole(s string) bool {
	return s == RoleUser || s == RoleAdmin
}

// User models an account. Each user owns six nested board collections: one
// columns/labels/categories triple per item kind.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`

	TaskColumns    []Column `json:"taskColumns,omitempty"`
	JobColumns     []Column `json:"jobColumns,omitempty"`
	TaskLabels     []Tag    `json:"taskLabels,omitempty"`
	JobLabels      []Tag    `json:"jobLabels,omitempty"`
	TaskCategories []Tag    `json:"taskCategories,omitempty"`
	JobCategories  []Tag    `json:"jobCategories,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
