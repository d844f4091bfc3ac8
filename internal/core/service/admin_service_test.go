package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ShaharSolema/TasksFlow/internal/core/domain"
)

func TestAdminService_Analytics(t *testing.T) {
	users := newStubUserRepo()
	users.addUser(&domain.User{Username: "alice", Email: "alice@example.com"})
	users.addUser(&domain.User{Username: "bob", Email: "bob@example.com"})

	tasks := newStubTaskRepo()
	now := time.Now().UTC()
	tasks.tasks["t1"] = &domain.Task{ID: "t1", Owner: "a", Status: "done", CreatedAt: now}
	tasks.tasks["t2"] = &domain.Task{ID: "t2", Owner: "a", Status: "done", CreatedAt: now}
	tasks.tasks["t3"] = &domain.Task{ID: "t3", Owner: "b", Status: "todo", CreatedAt: now.AddDate(0, 0, -1)}

	svc := NewAdminService(users, tasks, zerolog.Nop())
	got, err := svc.Analytics(context.Background())
	if err != nil {
		t.Fatalf("Analytics returned error: %v", err)
	}
	if got.KPIs.TotalUsers != 2 || got.KPIs.TotalTasks != 3 {
		t.Fatalf("unexpected KPIs: %+v", got.KPIs)
	}
	// 2 of 3 done → 67 after rounding.
	if got.KPIs.CompletionRate != 67 {
		t.Fatalf("expected completion rate 67, got %d", got.KPIs.CompletionRate)
	}
	if len(got.TasksPerDay) != 2 {
		t.Fatalf("expected 2 day buckets, got %d", len(got.TasksPerDay))
	}
	if len(got.StatusDistribution) != 2 {
		t.Fatalf("expected 2 status buckets, got %d", len(got.StatusDistribution))
	}
	if len(got.TopUsers) == 0 || got.TopUsers[0].Count != 2 {
		t.Fatalf("unexpected top users: %+v", got.TopUsers)
	}
}

func TestAdminService_Analytics_Empty(t *testing.T) {
	svc := NewAdminService(newStubUserRepo(), newStubTaskRepo(), zerolog.Nop())

	got, err := svc.Analytics(context.Background())
	if err != nil {
		t.Fatalf("Analytics returned error: %v", err)
	}
	if got.KPIs.CompletionRate != 0 {
		t.Fatalf("expected 0 completion rate with no tasks, got %d", got.KPIs.CompletionRate)
	}
}

func TestAdminService_UpdateRole(t *testing.T) {
	users := newStubUserRepo()
	u := users.addUser(&domain.User{Username: "alice", Email: "alice@example.com", Role: domain.RoleUser})
	svc := NewAdminService(users, newStubTaskRepo(), zerolog.Nop())

	if _, err := svc.UpdateRole(context.Background(), u.ID, "superuser"); !errorsIsInvalid(err) {
		t.Fatalf("expected ErrInvalidInput for unknown role, got %v", err)
	}
	if _, err := svc.UpdateRole(context.Background(), "missing", domain.RoleAdmin); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	summary, err := svc.UpdateRole(context.Background(), u.ID, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("UpdateRole returned error: %v", err)
	}
	if summary.Role != domain.RoleAdmin {
		t.Fatalf("role not applied: %q", summary.Role)
	}
}

func TestAdminService_ListUsers(t *testing.T) {
	users := newStubUserRepo()
	users.addUser(&domain.User{Username: "alice", Email: "alice@example.com", Role: domain.RoleAdmin})
	users.addUser(&domain.User{Username: "bob", Email: "bob@example.com", Role: domain.RoleUser})
	svc := NewAdminService(users, newStubTaskRepo(), zerolog.Nop())

	got, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 users, got %d", len(got))
	}
	for _, u := range got {
		if u.Username == "" || u.Email == "" || u.Role == "" {
			t.Fatalf("incomplete summary: %+v", u)
		}
	}
}
