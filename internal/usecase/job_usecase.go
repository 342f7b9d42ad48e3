package usecase

import (
	"context"
	"errors"
	"time"

	"skillsingh-backend/internal/domain"
	"skillsingh-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type jobUsecase struct {
	jobRepo  domain.JobRepository
	validate *validator.Validate
}

func NewJobUsecase(jobRepo domain.JobRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:  jobRepo,
		validate: validate,
	}
}

// CreateJob posts a new job owned by the acting recruiter. The job always
// starts active.
func (u *jobUsecase) CreateJob(ctx context.Context, actor domain.Actor, job *domain.Job) error {
	if !actor.IsRecruiter() {
		return apperror.Forbidden("Only recruiters can post jobs")
	}

	job.RecruiterID = actor.UserID
	job.Status = domain.JobStatusActive
	job.CreatedAt = time.Now()

	// Required fields are rejected before any store call
	if err := u.validate.Struct(job); err != nil {
		return apperror.BadRequest(err.Error())
	}

	if job.Requirements == nil {
		job.Requirements = []string{}
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// CloseJob sets the job to closed. Only the owning recruiter may close a
// job; closing an already-closed job is an idempotent no-op. There is no
// path back to active.
func (u *jobUsecase) CloseJob(ctx context.Context, actor domain.Actor, jobID string) error {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}

	if job.RecruiterID != actor.UserID {
		return apperror.Forbidden("Only the recruiter who posted this job can close it")
	}

	if job.Status == domain.JobStatusClosed {
		return nil
	}

	if err := u.jobRepo.UpdateStatus(ctx, jobID, domain.JobStatusClosed); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// GetJobDetails returns a single job. Closed jobs remain viewable; they
// are only excluded from the active listing and from Apply.
func (u *jobUsecase) GetJobDetails(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) ListActiveJobs(ctx context.Context, page, pageSize int) ([]domain.Job, int64, error) {
	limit, offset := paginate(page, pageSize)
	jobs, total, err := u.jobRepo.FetchActive(ctx, limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return jobs, total, nil
}

func (u *jobUsecase) ListMyJobs(ctx context.Context, actor domain.Actor, page, pageSize int) ([]domain.Job, int64, error) {
	if !actor.IsRecruiter() {
		return nil, 0, apperror.Forbidden("Only recruiters have a job list")
	}

	limit, offset := paginate(page, pageSize)
	jobs, total, err := u.jobRepo.FetchByRecruiter(ctx, actor.UserID, limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return jobs, total, nil
}

func paginate(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return pageSize, (page - 1) * pageSize
}
