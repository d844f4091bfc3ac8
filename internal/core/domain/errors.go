package domain

import "errors"

// Sentinel errors understood by the API error handler. Wrap with
// fmt.Errorf("%w: detail") when a more specific message is useful.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("forbidden")

	ErrUserExists   = errors.New("user already in use")
	ErrUserNotFound = errors.New("user not found")

	ErrColumnExists   = errors.New("column already exists")
	ErrColumnNotFound = errors.New("column not found")
	ErrTagExists      = errors.New("tag already exists")

	ErrTaskNotFound = errors.New("task not found")
	ErrJobNotFound  = errors.New("job not found")

	ErrSalaryNotConfigured = errors.New("salary API not configured")
	ErrSalaryUpstream      = errors.New("salary API failed")
)
