package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job status values. The lifecycle is one-directional: active → closed.
// There is no reopening path.
const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
)

type Job struct {
	ID           string    `json:"id"`
	RecruiterID  string    `json:"recruiter_id"`
	Title        string    `json:"title" validate:"required,min=3,max=150"`
	Company      string    `json:"company" validate:"required"`
	Location     string    `json:"location" validate:"required"`
	Type         string    `json:"type" validate:"required,oneof=full-time part-time contract internship remote"`
	Description  string    `json:"description" validate:"required"`
	Requirements []string  `json:"requirements"`
	SalaryRange  *string   `json:"salary_range,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	// FetchActive returns active jobs only, newest first.
	FetchActive(ctx context.Context, limit, offset int) ([]Job, int64, error)
	// FetchByRecruiter returns all jobs owned by a recruiter regardless of
	// status, newest first.
	FetchByRecruiter(ctx context.Context, recruiterID string, limit, offset int) ([]Job, int64, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, actor Actor, job *Job) error
	CloseJob(ctx context.Context, actor Actor, jobID string) error
	GetJobDetails(ctx context.Context, id string) (*Job, error)
	ListActiveJobs(ctx context.Context, page, pageSize int) ([]Job, int64, error)
	ListMyJobs(ctx context.Context, actor Actor, page, pageSize int) ([]Job, int64, error)
}
