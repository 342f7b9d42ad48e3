package domain

import (
	"context"
	"errors"
	"time"
)

// Application status values. pending is the only initial state; accepted
// and rejected are terminal.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusReviewed = "reviewed"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// ErrDuplicateApplication is returned by the repository when the unique
// index on (job_id, applicant_id) rejects an insert. The store enforces
// at-most-one application per pair; the usecase pre-check only exists to
// produce a friendly error in the common sequential case.
var ErrDuplicateApplication = errors.New("application already exists for this job and applicant")

// Application is an employee's request against one Job.
type Application struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	ApplicantID string    `json:"applicant_id"`
	Status      string    `json:"status"`
	CoverLetter *string   `json:"cover_letter,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined data for list and detail responses
	Job            *Job    `json:"job,omitempty"`
	ApplicantName  *string `json:"applicant_name,omitempty"`
	ApplicantEmail *string `json:"applicant_email,omitempty"`
}

// Terminal reports whether the application has reached a final state.
func (a *Application) Terminal() bool {
	return a.Status == ApplicationStatusAccepted || a.Status == ApplicationStatusRejected
}

type ApplicationRepository interface {
	// Create inserts the application and returns ErrDuplicateApplication on
	// a unique violation for (job_id, applicant_id).
	Create(ctx context.Context, app *Application) error
	// GetByID returns the application joined with its job.
	GetByID(ctx context.Context, id string) (*Application, error)
	// GetByApplicant returns the applicant's applications joined with their
	// jobs, newest first.
	GetByApplicant(ctx context.Context, applicantID string) ([]Application, error)
	// GetByRecruiter returns applications against any job owned by the
	// recruiter, joined with job and applicant data, newest first.
	GetByRecruiter(ctx context.Context, recruiterID string) ([]Application, error)
	Exists(ctx context.Context, jobID, applicantID string) (bool, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type ApplicationUsecase interface {
	// Employee operations
	Apply(ctx context.Context, actor Actor, jobID, coverLetter string) (*Application, error)
	ListForApplicant(ctx context.Context, actor Actor) ([]Application, error)

	// Recruiter operations
	ListForRecruiter(ctx context.Context, actor Actor) ([]Application, error)
	TransitionStatus(ctx context.Context, actor Actor, applicationID, status string) error

	// Shared: applicant or owning recruiter
	GetApplicationDetail(ctx context.Context, actor Actor, applicationID string) (*Application, error)
}
