package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ShaharSolema/TasksFlow/internal/api/metrics"
	"github.com/ShaharSolema/TasksFlow/internal/core/domain"
	"github.com/ShaharSolema/TasksFlow/internal/core/ports"
)

// JobHandler handles the owner-scoped job application endpoints plus the
// salary estimate pass-through.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

type reminderRequest struct {
	Date time.Time `json:"date"`
	Note string    `json:"note"`
	Done bool      `json:"done"`
}

type createJobRequest struct {
	Company           string            `json:"company"`
	Title             string            `json:"title" validate:"required"`
	Status            string            `json:"status"`
	Order             *int              `json:"order"`
	JobType           string            `json:"jobType"`
	Labels            []string          `json:"labels"`
	Priority          string            `json:"priority"`
	Location          string            `json:"location"`
	Link              string            `json:"link"`
	ExpectedSalary    *float64          `json:"expectedSalary"`
	SalaryCurrency    string            `json:"salaryCurrency"`
	SalarySource      string            `json:"salarySource"`
	Notes             string            `json:"notes"`
	AppliedDate       *time.Time        `json:"appliedDate"`
	NextInterviewDate *time.Time        `json:"nextInterviewDate"`
	FollowUpDate      *time.Time        `json:"followUpDate"`
	Reminders         []reminderRequest `json:"reminders"`
}

type updateJobRequest struct {
	Company           *string            `json:"company"`
	Title             *string            `json:"title"`
	Status            *string            `json:"status"`
	Order             *int               `json:"order"`
	JobType           *string            `json:"jobType"`
	Labels            *[]string          `json:"labels"`
	Priority          *string            `json:"priority"`
	Location          *string            `json:"location"`
	Link              *string            `json:"link"`
	ExpectedSalary    *float64           `json:"expectedSalary"`
	SalaryCurrency    *string            `json:"salaryCurrency"`
	SalarySource      *string            `json:"salarySource"`
	Notes             *string            `json:"notes"`
	AppliedDate       *time.Time         `json:"appliedDate"`
	NextInterviewDate *time.Time         `json:"nextInterviewDate"`
	FollowUpDate      *time.Time         `json:"followUpDate"`
	Reminders         *[]reminderRequest `json:"reminders"`
}

func toReminders(reqs []reminderRequest) []domain.Reminder {
	reminders := make([]domain.Reminder, 0, len(reqs))
	for _, r := range reqs {
		reminders = append(reminders, domain.Reminder{Date: r.Date, Note: r.Note, Done: r.Done})
	}
	return reminders
}

// Create handles POST /jobs.
//
// @Summary      Create a job application
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  domain.Job
// @Failure      400   {object}  map[string]string
// @Router       /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.service.Create(c.Request().Context(), userID, ports.CreateJobInput{
		Company:           req.Company,
		Title:             req.Title,
		Status:            req.Status,
		Order:             req.Order,
		JobType:           req.JobType,
		Labels:            req.Labels,
		Priority:          req.Priority,
		Location:          req.Location,
		Link:              req.Link,
		ExpectedSalary:    req.ExpectedSalary,
		SalaryCurrency:    req.SalaryCurrency,
		SalarySource:      req.SalarySource,
		Notes:             req.Notes,
		AppliedDate:       req.AppliedDate,
		NextInterviewDate: req.NextInterviewDate,
		FollowUpDate:      req.FollowUpDate,
		Reminders:         toReminders(req.Reminders),
	})
	if err != nil {
		return err
	}

	metrics.ItemsCreated.WithLabelValues(string(domain.KindJob)).Inc()
	return c.JSON(http.StatusCreated, job)
}

// List handles GET /jobs.
//
// @Summary      List the caller's job applications
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Job
// @Router       /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	jobs, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, jobs)
}

// Get handles GET /jobs/:id.
//
// @Summary      Get a job application
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  domain.Job
// @Failure      404  {object}  map[string]string
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	job, err := h.service.Get(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, job)
}

// Update handles PUT /jobs/:id.
//
// @Summary      Update a job application
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Job ID"
// @Param        body  body      updateJobRequest  true  "Fields to change"
// @Success      200   {object}  domain.Job
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	patch := ports.JobPatch{
		Company:           req.Company,
		Title:             req.Title,
		Status:            req.Status,
		Order:             req.Order,
		JobType:           req.JobType,
		Labels:            req.Labels,
		Priority:          req.Priority,
		Location:          req.Location,
		Link:              req.Link,
		ExpectedSalary:    req.ExpectedSalary,
		SalaryCurrency:    req.SalaryCurrency,
		SalarySource:      req.SalarySource,
		Notes:             req.Notes,
		AppliedDate:       req.AppliedDate,
		NextInterviewDate: req.NextInterviewDate,
		FollowUpDate:      req.FollowUpDate,
	}
	if req.Reminders != nil {
		reminders := toReminders(*req.Reminders)
		patch.Reminders = &reminders
	}

	job, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), patch)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, job)
}

// Delete handles DELETE /jobs/:id.
//
// @Summary      Delete a job application
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "job deleted"})
}

// EstimateSalary handles GET /jobs/estimate-salary.
//
// @Summary      Estimate salary for a job title
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        title     query     string  true   "Job title"
// @Param        location  query     string  false  "Location"
// @Param        jobType   query     string  false  "Job type"
// @Success      200       {object}  ports.SalaryEstimate
// @Failure      400       {object}  map[string]string
// @Failure      502       {object}  map[string]string
// @Failure      503       {object}  map[string]string
// @Router       /jobs/estimate-salary [get]
func (h *JobHandler) EstimateSalary(c echo.Context) error {
	if _, _, err := ctxUser(c); err != nil {
		return err
	}

	estimate, err := h.service.EstimateSalary(
		c.Request().Context(),
		c.QueryParam("title"),
		c.QueryParam("location"),
		c.QueryParam("jobType"),
	)
	if err != nil {
		metrics.SalaryRequests.WithLabelValues("failure").Inc()
		return err
	}

	metrics.SalaryRequests.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, estimate)
}
