package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"skillsingh-backend/internal/domain"
	"skillsingh-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestApply(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject non-employee actors", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		_, err := uc.Apply(ctx, recruiter, "job-1", "")

		assertCode(t, err, http.StatusForbidden)
		appRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should signal JobClosed for a non-active job and create nothing", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		job := activeJob("job-1", recruiter.UserID)
		job.Status = domain.JobStatusClosed
		jobRepo.On("GetByID", ctx, "job-1").Return(job, nil)

		_, err := uc.Apply(ctx, employee, "job-1", "")

		assertCode(t, err, http.StatusConflict)
		assert.Contains(t, err.Error(), "no longer accepting")
		appRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should signal NotFound for a missing job", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		jobRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound)

		_, err := uc.Apply(ctx, employee, "ghost", "")

		assertCode(t, err, http.StatusNotFound)
	})

	t.Run("Should signal AlreadyApplied on a sequential duplicate", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		jobRepo.On("GetByID", ctx, "job-1").Return(activeJob("job-1", recruiter.UserID), nil)
		appRepo.On("Exists", ctx, "job-1", employee.UserID).Return(true, nil)

		_, err := uc.Apply(ctx, employee, "job-1", "")

		assertCode(t, err, http.StatusConflict)
		assert.Contains(t, err.Error(), "already applied")
		appRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should signal AlreadyApplied when the unique index catches a race", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		jobRepo.On("GetByID", ctx, "job-1").Return(activeJob("job-1", recruiter.UserID), nil)
		// The pre-check sees nothing, but the insert loses the race
		appRepo.On("Exists", ctx, "job-1", employee.UserID).Return(false, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(domain.ErrDuplicateApplication)

		_, err := uc.Apply(ctx, employee, "job-1", "")

		assertCode(t, err, http.StatusConflict)
		assert.Contains(t, err.Error(), "already applied")
	})

	t.Run("Should create a pending application for the actor", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		jobRepo.On("GetByID", ctx, "job-1").Return(activeJob("job-1", recruiter.UserID), nil)
		appRepo.On("Exists", ctx, "job-1", employee.UserID).Return(false, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil).Run(func(args mock.Arguments) {
			a := args.Get(1).(*domain.Application)
			assert.Equal(t, domain.ApplicationStatusPending, a.Status)
			assert.Equal(t, employee.UserID, a.ApplicantID)
			assert.Nil(t, a.CoverLetter) // empty cover letter stays unset
		})

		app, err := uc.Apply(ctx, employee, "job-1", "")

		assert.NoError(t, err)
		assert.NotNil(t, app.Job)
		appRepo.AssertExpectations(t)
	})
}

func TestTransitionStatus(t *testing.T) {
	ctx := context.Background()

	pendingApp := func() *domain.Application {
		return &domain.Application{
			ID:          "app-1",
			JobID:       "job-1",
			ApplicantID: employee.UserID,
			Status:      domain.ApplicationStatusPending,
			Job:         activeJob("job-1", recruiter.UserID),
		}
	}

	t.Run("Should reject pending as a transition target", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		err := uc.TransitionStatus(ctx, recruiter, "app-1", domain.ApplicationStatusPending)

		assertCode(t, err, http.StatusBadRequest)
		appRepo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Should reject an actor who does not own the referenced job", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		stranger := domain.Actor{UserID: "recruiter-2", Role: domain.RoleRecruiter}
		appRepo.On("GetByID", ctx, "app-1").Return(pendingApp(), nil)

		err := uc.TransitionStatus(ctx, stranger, "app-1", domain.ApplicationStatusReviewed)

		assertCode(t, err, http.StatusForbidden)
		appRepo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Should move pending to reviewed for the owning recruiter", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		appRepo.On("GetByID", ctx, "app-1").Return(pendingApp(), nil)
		appRepo.On("UpdateStatus", ctx, "app-1", domain.ApplicationStatusReviewed).Return(nil)

		err := uc.TransitionStatus(ctx, recruiter, "app-1", domain.ApplicationStatusReviewed)

		assert.NoError(t, err)
		appRepo.AssertExpectations(t)
	})

	t.Run("Should lock terminal states", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		app := pendingApp()
		app.Status = domain.ApplicationStatusRejected
		appRepo.On("GetByID", ctx, "app-1").Return(app, nil)

		err := uc.TransitionStatus(ctx, recruiter, "app-1", domain.ApplicationStatusReviewed)

		assertCode(t, err, http.StatusConflict)
		appRepo.AssertNotCalled(t, "UpdateStatus")
	})
}

func TestApplicationVisibility(t *testing.T) {
	ctx := context.Background()

	app := &domain.Application{
		ID:          "app-1",
		JobID:       "job-1",
		ApplicantID: employee.UserID,
		Status:      domain.ApplicationStatusPending,
		Job:         activeJob("job-1", recruiter.UserID),
	}

	t.Run("Applicant can view their own application", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		appRepo.On("GetByID", ctx, "app-1").Return(app, nil)

		got, err := uc.GetApplicationDetail(ctx, employee, "app-1")
		assert.NoError(t, err)
		assert.Equal(t, "app-1", got.ID)
	})

	t.Run("Owning recruiter can view the application", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		appRepo.On("GetByID", ctx, "app-1").Return(app, nil)

		_, err := uc.GetApplicationDetail(ctx, recruiter, "app-1")
		assert.NoError(t, err)
	})

	t.Run("Anyone else is denied", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		stranger := domain.Actor{UserID: "employee-2", Role: domain.RoleEmployee}
		appRepo.On("GetByID", ctx, "app-1").Return(app, nil)

		_, err := uc.GetApplicationDetail(ctx, stranger, "app-1")
		assertCode(t, err, http.StatusForbidden)
	})

	t.Run("ListForApplicant is scoped to the actor", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		appRepo.On("GetByApplicant", ctx, employee.UserID).Return([]domain.Application{*app}, nil)

		apps, err := uc.ListForApplicant(ctx, employee)
		assert.NoError(t, err)
		assert.Len(t, apps, 1)
		assert.Equal(t, employee.UserID, apps[0].ApplicantID)
	})
}

// TestApplicationLifecycleScenario walks the full flow: a recruiter posts
// a job, an employee applies, the application is accepted, and a repeat
// apply is refused.
func TestApplicationLifecycleScenario(t *testing.T) {
	ctx := context.Background()

	appRepo := new(MockApplicationRepo)
	jobRepo := new(MockJobRepo)
	uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

	job := activeJob("J1", recruiter.UserID)
	jobRepo.On("GetByID", ctx, "J1").Return(job, nil)

	// First apply goes through
	appRepo.On("Exists", ctx, "J1", employee.UserID).Return(false, nil).Once()
	appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil).Once()

	a1, err := uc.Apply(ctx, employee, "J1", "I am a great fit")
	assert.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusPending, a1.Status)

	// The owning recruiter accepts it
	a1.ID = "A1"
	appRepo.On("GetByID", ctx, "A1").Return(a1, nil)
	appRepo.On("UpdateStatus", ctx, "A1", domain.ApplicationStatusAccepted).Return(nil).Once()

	err = uc.TransitionStatus(ctx, recruiter, "A1", domain.ApplicationStatusAccepted)
	assert.NoError(t, err)

	// A second apply for the same job is refused
	appRepo.On("Exists", ctx, "J1", employee.UserID).Return(true, nil).Once()

	_, err = uc.Apply(ctx, employee, "J1", "")
	assertCode(t, err, http.StatusConflict)

	appRepo.AssertExpectations(t)
}
