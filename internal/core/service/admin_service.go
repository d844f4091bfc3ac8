package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/ShaharSolema/TasksFlow/internal/core/domain"
	"github.com/ShaharSolema/TasksFlow/internal/core/ports"
)

const topUsersLimit = 5

type adminService struct {
	users ports.UserRepository
	tasks ports.TaskRepository
	log   zerolog.Logger
}

// NewAdminService returns the admin-only rollups and role management. Role
// gating happens at the middleware layer; the service assumes the caller is
// already an admin.
func NewAdminService(users ports.UserRepository, tasks ports.TaskRepository, log zerolog.Logger) ports.AdminService {
	return &adminService{users: users, tasks: tasks, log: log}
}

func (s *adminService) Analytics(ctx context.Context) (*ports.Analytics, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalTasks, err := s.tasks.Count(ctx)
	if err != nil {
		return nil, err
	}
	completed, err := s.tasks.CountByStatus(ctx, "done")
	if err != nil {
		return nil, err
	}

	completionRate := 0
	if totalTasks > 0 {
		completionRate = int(math.Round(float64(completed) / float64(totalTasks) * 100))
	}

	perDay, err := s.tasks.PerDay(ctx)
	if err != nil {
		return nil, err
	}
	distribution, err := s.tasks.StatusDistribution(ctx)
	if err != nil {
		return nil, err
	}
	topUsers, err := s.tasks.TopOwners(ctx, topUsersLimit)
	if err != nil {
		return nil, err
	}

	return &ports.Analytics{
		KPIs: ports.AnalyticsKPIs{
			TotalUsers:     totalUsers,
			TotalTasks:     totalTasks,
			CompletionRate: completionRate,
		},
		TasksPerDay:        perDay,
		StatusDistribution: distribution,
		TopUsers:           topUsers,
	}, nil
}

func (s *adminService) ListUsers(ctx context.Context) ([]ports.UserSummary, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]ports.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, ports.UserSummary{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *adminService) UpdateRole(ctx context.Context, userID, role string) (*ports.UserSummary, error) {
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("%w: invalid role %q", domain.ErrInvalidInput, role)
	}
	if err := s.users.UpdateRole(ctx, userID, role); err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", userID).Str("role", role).Msg("role updated")
	return &ports.UserSummary{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}, nil
}
