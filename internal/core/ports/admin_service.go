package ports

import (
	"context"
	"time"
)

// AnalyticsKPIs are the headline numbers on the admin dashboard.
type AnalyticsKPIs struct {
	TotalUsers     int64 `json:"totalUsers"`
	TotalTasks     int64 `json:"totalTasks"`
	CompletionRate int   `json:"completionRate"`
}

// Analytics is the full admin dashboard rollup.
type Analytics struct {
	KPIs               AnalyticsKPIs `json:"kpis"`
	TasksPerDay        []DayCount    `json:"tasksPerDay"`
	StatusDistribution []StatusCount `json:"statusDistribution"`
	TopUsers           []OwnerCount  `json:"topUsers"`
}

// UserSummary is the admin view of an account.
type UserSummary struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminService defines admin-only read rollups and role management.
type AdminService interface {
	Analytics(ctx context.Context) (*Analytics, error)
	ListUsers(ctx context.Context) ([]UserSummary, error)
	UpdateRole(ctx context.Context, userID, role string) (*UserSummary, error)
}
