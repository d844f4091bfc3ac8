package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ShaharSolema/TasksFlow/internal/core/domain"
	"github.com/ShaharSolema/TasksFlow/internal/core/ports"
)

type taskService struct {
	repo ports.TaskRepository
	log  zerolog.Logger
}

// NewTaskService returns the owner-scoped task store. Status and label values
// pass through unchecked: they are soft references resolved at presentation
// time.
func NewTaskService(repo ports.TaskRepository, log zerolog.Logger) ports.TaskService {
	return &taskService{repo: repo, log: log}
}

func (s *taskService) Create(ctx context.Context, owner string, input ports.CreateTaskInput) (*domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}

	status := input.Status
	if status == "" {
		status = domain.DefaultTaskStatus
	}
	order := 0
	if input.Order != nil {
		order = *input.Order
	}

	now := time.Now().UTC()
	task := &domain.Task{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Status:      status,
		Labels:      input.Labels,
		Order:       order,
		DueDate:     input.DueDate,
		Owner:       owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.log.Error().Err(err).Str("owner", owner).Msg("failed to create task")
		return nil, err
	}
	s.log.Info().Str("task_id", created.ID).Str("owner", owner).Msg("task created")
	return created, nil
}

func (s *taskService) List(ctx context.Context, owner string) ([]*domain.Task, error) {
	return s.repo.ListByOwner(ctx, owner)
}

func (s *taskService) Get(ctx context.Context, owner, id string) (*domain.Task, error) {
	return s.repo.FindByID(ctx, id, owner)
}

func (s *taskService) Update(ctx context.Context, owner, id string, patch ports.TaskPatch) (*domain.Task, error) {
	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrInvalidInput)
		}
		patch.Title = &trimmed
	}
	if patch.Description != nil {
		// A blank description clears the field rather than leaving it unset.
		trimmed := strings.TrimSpace(*patch.Description)
		patch.Description = &trimmed
	}
	return s.repo.Update(ctx, id, owner, patch)
}

func (s *taskService) Delete(ctx context.Context, owner, id string) error {
	if err := s.repo.Delete(ctx, id, owner); err != nil {
		return err
	}
	s.log.Info().Str("task_id", id).Str("owner", owner).Msg("task deleted")
	return nil
}
