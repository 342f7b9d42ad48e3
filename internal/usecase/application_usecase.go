package usecase

import (
	"context"
	"errors"

	"skillsingh-backend/internal/domain"
	"skillsingh-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
}

func NewApplicationUsecase(applicationRepo domain.ApplicationRepository, jobRepo domain.JobRepository) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
	}
}

// Apply submits an application for the acting employee against an active
// job. At most one application may exist per (job, applicant) pair; the
// store's unique index is the authoritative guard, so two racing Apply
// calls cannot both succeed.
func (uc *applicationUsecase) Apply(ctx context.Context, actor domain.Actor, jobID, coverLetter string) (*domain.Application, error) {
	if !actor.IsEmployee() {
		return nil, apperror.Forbidden("Only employees can apply to jobs")
	}

	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.Status != domain.JobStatusActive {
		return nil, apperror.Conflict("This job is no longer accepting applications")
	}

	// Friendly pre-check for the common sequential duplicate
	exists, err := uc.applicationRepo.Exists(ctx, jobID, actor.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job")
	}

	var coverLetterPtr *string
	if coverLetter != "" {
		coverLetterPtr = &coverLetter
	}

	app := &domain.Application{
		JobID:       jobID,
		ApplicantID: actor.UserID,
		CoverLetter: coverLetterPtr,
		Status:      domain.ApplicationStatusPending,
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		// The unique index catches what the pre-check raced past
		if errors.Is(err, domain.ErrDuplicateApplication) {
			return nil, apperror.Conflict("You have already applied to this job")
		}
		return nil, apperror.Internal(err)
	}

	app.Job = job
	return app, nil
}

// TransitionStatus moves an application along pending → reviewed →
// accepted/rejected. Only the recruiter owning the referenced job may
// transition it. Accepted and rejected are terminal: once reached, no
// further transition is permitted.
func (uc *applicationUsecase) TransitionStatus(ctx context.Context, actor domain.Actor, applicationID, status string) error {
	switch status {
	case domain.ApplicationStatusReviewed, domain.ApplicationStatusAccepted, domain.ApplicationStatusRejected:
	default:
		return apperror.BadRequest("Invalid status. Must be: reviewed, accepted, or rejected")
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}

	if err := uc.requireJobOwner(ctx, actor, app); err != nil {
		return err
	}

	if app.Terminal() {
		return apperror.Conflict("Application has already been finalized")
	}
	if app.Status == domain.ApplicationStatusReviewed && status == domain.ApplicationStatusReviewed {
		return apperror.Conflict("Application is already under review")
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// ListForApplicant returns the acting employee's own applications, newest
// first, each joined with its job.
func (uc *applicationUsecase) ListForApplicant(ctx context.Context, actor domain.Actor) ([]domain.Application, error) {
	if !actor.IsEmployee() {
		return nil, apperror.Forbidden("Only employees have an application list")
	}

	apps, err := uc.applicationRepo.GetByApplicant(ctx, actor.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// ListForRecruiter returns every application against the acting
// recruiter's jobs, newest first, joined with job and applicant data.
func (uc *applicationUsecase) ListForRecruiter(ctx context.Context, actor domain.Actor) ([]domain.Application, error) {
	if !actor.IsRecruiter() {
		return nil, apperror.Forbidden("Only recruiters can view received applications")
	}

	apps, err := uc.applicationRepo.GetByRecruiter(ctx, actor.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// GetApplicationDetail returns one application. Visible to its applicant
// and to the recruiter owning the referenced job, nobody else.
func (uc *applicationUsecase) GetApplicationDetail(ctx context.Context, actor domain.Actor, applicationID string) (*domain.Application, error) {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}

	if app.ApplicantID == actor.UserID {
		return app, nil
	}
	if err := uc.requireJobOwner(ctx, actor, app); err != nil {
		return nil, apperror.Forbidden("You do not have access to this application")
	}
	return app, nil
}

// requireJobOwner verifies the actor owns the job the application refers
// to. The joined job is used when present to save a round trip.
func (uc *applicationUsecase) requireJobOwner(ctx context.Context, actor domain.Actor, app *domain.Application) error {
	job := app.Job
	if job == nil {
		var err error
		job, err = uc.jobRepo.GetByID(ctx, app.JobID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return apperror.NotFound("Job not found")
			}
			return apperror.Internal(err)
		}
	}

	if job.RecruiterID != actor.UserID {
		return apperror.Forbidden("Only the recruiter who posted this job can manage its applications")
	}
	return nil
}
