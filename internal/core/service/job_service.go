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

type jobService struct {
	repo   ports.JobRepository
	salary ports.SalaryClient
	log    zerolog.Logger
}

// NewJobService returns the owner-scoped job store plus the salary estimate
// pass-through. salary may be a client that always reports "not configured".
func NewJobService(repo ports.JobRepository, salary ports.SalaryClient, log zerolog.Logger) ports.JobService {
	return &jobService{repo: repo, salary: salary, log: log}
}

func (s *jobService) Create(ctx context.Context, owner string, input ports.CreateJobInput) (*domain.Job, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}

	status := input.Status
	if status == "" {
		status = domain.DefaultJobStatus
	}
	jobType := input.JobType
	if !domain.ValidJobType(jobType) {
		jobType = domain.JobTypeFullTime
	}
	priority := input.Priority
	if !domain.ValidPriority(priority) {
		priority = domain.PriorityMedium
	}
	currency := input.SalaryCurrency
	if currency == "" {
		currency = "USD"
	}
	order := 0
	if input.Order != nil {
		order = *input.Order
	}

	now := time.Now().UTC()
	job := &domain.Job{
		Company:           strings.TrimSpace(input.Company),
		Title:             title,
		Status:            status,
		Order:             order,
		JobType:           jobType,
		Labels:            input.Labels,
		Priority:          priority,
		Location:          strings.TrimSpace(input.Location),
		Link:              strings.TrimSpace(input.Link),
		ExpectedSalary:    input.ExpectedSalary,
		SalaryCurrency:    currency,
		SalarySource:      strings.TrimSpace(input.SalarySource),
		Notes:             strings.TrimSpace(input.Notes),
		AppliedDate:       input.AppliedDate,
		NextInterviewDate: input.NextInterviewDate,
		FollowUpDate:      input.FollowUpDate,
		Reminders:         input.Reminders,
		Owner:             owner,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := s.repo.Create(ctx, job)
	if err != nil {
		s.log.Error().Err(err).Str("owner", owner).Msg("failed to create job")
		return nil, err
	}
	s.log.Info().Str("job_id", created.ID).Str("owner", owner).Msg("job created")
	return created, nil
}

func (s *jobService) List(ctx context.Context, owner string) ([]*domain.Job, error) {
	return s.repo.ListByOwner(ctx, owner)
}

func (s *jobService) Get(ctx context.Context, owner, id string) (*domain.Job, error) {
	return s.repo.FindByID(ctx, id, owner)
}

func (s *jobService) Update(ctx context.Context, owner, id string, patch ports.JobPatch) (*domain.Job, error) {
	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrInvalidInput)
		}
		patch.Title = &trimmed
	}
	if patch.Company != nil {
		trimmed := strings.TrimSpace(*patch.Company)
		patch.Company = &trimmed
	}
	if patch.JobType != nil && !domain.ValidJobType(*patch.JobType) {
		return nil, fmt.Errorf("%w: invalid job type %q", domain.ErrInvalidInput, *patch.JobType)
	}
	if patch.Priority != nil && !domain.ValidPriority(*patch.Priority) {
		return nil, fmt.Errorf("%w: invalid priority %q", domain.ErrInvalidInput, *patch.Priority)
	}
	return s.repo.Update(ctx, id, owner, patch)
}

func (s *jobService) Delete(ctx context.Context, owner, id string) error {
	if err := s.repo.Delete(ctx, id, owner); err != nil {
		return err
	}
	s.log.Info().Str("job_id", id).Str("owner", owner).Msg("job deleted")
	return nil
}

func (s *jobService) EstimateSalary(ctx context.Context, title, location, jobType string) (*ports.SalaryEstimate, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	return s.salary.Estimate(ctx, title, location, jobType)
}
