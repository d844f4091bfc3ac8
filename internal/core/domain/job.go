package domain

import "time"

const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
	JobTypeFreelance  = "freelance"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// DefaultJobStatus is applied when a job is created without a status.
const DefaultJobStatus = "saved"

// ValidJobType reports whether s is a known job type.
func ValidJobType(s string) bool {
	switch s {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeFreelance:
		return true
	}
	return false
}

// ValidPriority reports whether s is a known priority.
func ValidPriority(s string) bool {
	switch s {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Reminder is a dated note attached to a job application.
type Reminder struct {
	Date time.Time `json:"date" bson:"date"`
	Note string    `json:"note,omitempty" bson:"note,omitempty"`
	Done bool      `json:"done" bson:"done"`
}

// Job is one tracked job application. Like Task.Status, the status field is a
// soft reference to a column key on the owner's job board.
type Job struct {
	ID                string     `json:"id"`
	Company           string     `json:"company,omitempty"`
	Title             string     `json:"title"`
	Status            string     `json:"status"`
	Order             int        `json:"order"`
	JobType           string     `json:"jobType"`
	Labels            []string   `json:"labels,omitempty"`
	Priority          string     `json:"priority"`
	Location          string     `json:"location,omitempty"`
	Link              string     `json:"link,omitempty"`
	ExpectedSalary    *float64   `json:"expectedSalary,omitempty"`
	SalaryCurrency    string     `json:"salaryCurrency"`
	SalarySource      string     `json:"salarySource,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	AppliedDate       *time.Time `json:"appliedDate,omitempty"`
	NextInterviewDate *time.Time `json:"nextInterviewDate,omitempty"`
	FollowUpDate      *time.Time `json:"followUpDate,omitempty"`
	Reminders         []Reminder `json:"reminders,omitempty"`
	Owner             string     `json:"owner"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}
