package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ShaharSolema/TasksFlow/internal/core/domain"
	"github.com/ShaharSolema/TasksFlow/internal/core/ports"
)

type stubJobRepo struct {
	jobs   map[string]*domain.Job
	nextID int
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*domain.Job)}
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	r.nextID++
	clone := *job
	clone.ID = fmt.Sprintf("job-%d", r.nextID)
	r.jobs[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubJobRepo) ListByOwner(_ context.Context, owner string) ([]*domain.Job, error) {
	var out []*domain.Job
	for _, j := range r.jobs {
		if j.Owner == owner {
			clone := *j
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id, owner string) (*domain.Job, error) {
	j, ok := r.jobs[id]
	if !ok || j.Owner != owner {
		return nil, domain.ErrJobNotFound
	}
	clone := *j
	return &clone, nil
}

func (r *stubJobRepo) Update(_ context.Context, id, owner string, patch ports.JobPatch) (*domain.Job, error) {
	j, ok := r.jobs[id]
	if !ok || j.Owner != owner {
		return nil, domain.ErrJobNotFound
	}
	if patch.Title != nil {
		j.Title = *patch.Title
	}
	if patch.Company != nil {
		j.Company = *patch.Company
	}
	if patch.Status != nil {
		j.Status = *patch.Status
	}
	if patch.Order != nil {
		j.Order = *patch.Order
	}
	if patch.JobType != nil {
		j.JobType = *patch.JobType
	}
	if patch.Priority != nil {
		j.Priority = *patch.Priority
	}
	if patch.Reminders != nil {
		j.Reminders = *patch.Reminders
	}
	j.UpdatedAt = time.Now().UTC()
	clone := *j
	return &clone, nil
}

func (r *stubJobRepo) Delete(_ context.Context, id, owner string) error {
	j, ok := r.jobs[id]
	if !ok || j.Owner != owner {
		return domain.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

type stubSalaryClient struct {
	estimate *ports.SalaryEstimate
	err      error
	lastArgs [3]string
}

func (c *stubSalaryClient) Estimate(_ context.Context, title, location, jobType string) (*ports.SalaryEstimate, error) {
	c.lastArgs = [3]string{title, location, jobType}
	if c.err != nil {
		return nil, c.err
	}
	return c.estimate, nil
}

func TestJobService_Create_Defaults(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, &stubSalaryClient{}, zerolog.Nop())

	job, err := svc.Create(context.Background(), "owner-a", ports.CreateJobInput{Title: "Backend Engineer"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if job.Status != domain.DefaultJobStatus {
		t.Fatalf("expected default status saved, got %q", job.Status)
	}
	if job.JobType != domain.JobTypeFullTime {
		t.Fatalf("expected default job type, got %q", job.JobType)
	}
	if job.Priority != domain.PriorityMedium {
		t.Fatalf("expected default priority, got %q", job.Priority)
	}
	if job.SalaryCurrency != "USD" {
		t.Fatalf("expected default currency USD, got %q", job.SalaryCurrency)
	}
}

func TestJobService_Create_BlankTitle(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, &stubSalaryClient{}, zerolog.Nop())

	if _, err := svc.Create(context.Background(), "owner-a", ports.CreateJobInput{Title: " "}); !errorsIsInvalid(err) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(repo.jobs) != 0 {
		t.Fatalf("no record should be persisted, got %d", len(repo.jobs))
	}
}

func TestJobService_Create_Reminders(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, &stubSalaryClient{}, zerolog.Nop())

	due := time.Now().UTC().AddDate(0, 0, 7)
	job, err := svc.Create(context.Background(), "owner-a", ports.CreateJobInput{
		Title:     "SRE",
		Reminders: []domain.Reminder{{Date: due, Note: "follow up"}},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if len(job.Reminders) != 1 || job.Reminders[0].Note != "follow up" || job.Reminders[0].Done {
		t.Fatalf("unexpected reminders: %+v", job.Reminders)
	}
}

func TestJobService_Update_Validation(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, &stubSalaryClient{}, zerolog.Nop())

	job, err := svc.Create(context.Background(), "owner-a", ports.CreateJobInput{Title: "SRE"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	bad := "night-shift"
	if _, err := svc.Update(context.Background(), "owner-a", job.ID, ports.JobPatch{JobType: &bad}); !errorsIsInvalid(err) {
		t.Fatalf("expected ErrInvalidInput for bad job type, got %v", err)
	}
	if _, err := svc.Update(context.Background(), "owner-a", job.ID, ports.JobPatch{Priority: &bad}); !errorsIsInvalid(err) {
		t.Fatalf("expected ErrInvalidInput for bad priority, got %v", err)
	}

	company := "  Initech  "
	updated, err := svc.Update(context.Background(), "owner-a", job.ID, ports.JobPatch{Company: &company})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Company != "Initech" {
		t.Fatalf("company not trimmed: %q", updated.Company)
	}
}

func TestJobService_OwnershipScoping(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, &stubSalaryClient{}, zerolog.Nop())

	job, err := svc.Create(context.Background(), "owner-a", ports.CreateJobInput{Title: "SRE"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Get(context.Background(), "owner-b", job.ID); err != domain.ErrJobNotFound {
		t.Fatalf("expected ErrJobNotFound for foreign owner, got %v", err)
	}
}

func TestJobService_EstimateSalary(t *testing.T) {
	client := &stubSalaryClient{estimate: &ports.SalaryEstimate{Estimate: 120000.0, Currency: "USD"}}
	svc := NewJobService(newStubJobRepo(), client, zerolog.Nop())

	got, err := svc.EstimateSalary(context.Background(), "Backend Engineer", "Berlin", "full-time")
	if err != nil {
		t.Fatalf("EstimateSalary returned error: %v", err)
	}
	if got.Estimate != 120000.0 || got.Currency != "USD" {
		t.Fatalf("unexpected estimate: %+v", got)
	}
	if client.lastArgs != [3]string{"Backend Engineer", "Berlin", "full-time"} {
		t.Fatalf("arguments not passed through: %v", client.lastArgs)
	}

	if _, err := svc.EstimateSalary(context.Background(), "  ", "", ""); !errorsIsInvalid(err) {
		t.Fatalf("expected ErrInvalidInput for missing title, got %v", err)
	}
}

func TestJobService_EstimateSalary_NotConfigured(t *testing.T) {
	client := &stubSalaryClient{err: domain.ErrSalaryNotConfigured}
	svc := NewJobService(newStubJobRepo(), client, zerolog.Nop())

	if _, err := svc.EstimateSalary(context.Background(), "SRE", "", ""); err != domain.ErrSalaryNotConfigured {
		t.Fatalf("expected ErrSalaryNotConfigured, got %v", err)
	}
}
