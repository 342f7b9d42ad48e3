package usecase

import (
	"context"
	"math"

	"skillsingh-backend/internal/domain"
	"skillsingh-backend/pkg/apperror"
)

// recentApplicationsLimit caps the recruiter dashboard's recent slice.
const recentApplicationsLimit = 5

// dashboardFetchLimit bounds the job scan backing the summary counts.
const dashboardFetchLimit = 1000

type dashboardUsecase struct {
	jobRepo         domain.JobRepository
	applicationRepo domain.ApplicationRepository
}

func NewDashboardUsecase(jobRepo domain.JobRepository, applicationRepo domain.ApplicationRepository) domain.DashboardUsecase {
	return &dashboardUsecase{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

// RecruiterSummary derives the recruiter's counters from their jobs and
// the applications against them. Nothing is cached or maintained
// incrementally; every request recomputes from the fetched rows.
func (u *dashboardUsecase) RecruiterSummary(ctx context.Context, actor domain.Actor) (*domain.RecruiterDashboard, error) {
	if !actor.IsRecruiter() {
		return nil, apperror.Forbidden("Only recruiters can view this dashboard")
	}

	jobs, _, err := u.jobRepo.FetchByRecruiter(ctx, actor.UserID, dashboardFetchLimit, 0)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	apps, err := u.applicationRepo.GetByRecruiter(ctx, actor.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	dash := &domain.RecruiterDashboard{
		TotalJobs:          len(jobs),
		TotalApplications:  len(apps),
		RecentApplications: []domain.Application{},
	}

	for _, job := range jobs {
		switch job.Status {
		case domain.JobStatusActive:
			dash.ActiveJobs++
		case domain.JobStatusClosed:
			dash.ClosedJobs++
		}
	}
	for _, app := range apps {
		if app.Status == domain.ApplicationStatusPending {
			dash.PendingApplications++
		}
	}

	if dash.TotalJobs > 0 {
		dash.FillRate = int(math.Round(float64(dash.ClosedJobs) / float64(dash.TotalJobs) * 100))
	}

	// Repos return newest first, so the head is the recent slice
	if len(apps) > recentApplicationsLimit {
		apps = apps[:recentApplicationsLimit]
	}
	dash.RecentApplications = apps

	return dash, nil
}

// EmployeeSummary derives the applicant's counters plus the size of the
// currently active job pool.
func (u *dashboardUsecase) EmployeeSummary(ctx context.Context, actor domain.Actor) (*domain.EmployeeDashboard, error) {
	if !actor.IsEmployee() {
		return nil, apperror.Forbidden("Only employees can view this dashboard")
	}

	apps, err := u.applicationRepo.GetByApplicant(ctx, actor.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	_, availableJobs, err := u.jobRepo.FetchActive(ctx, 1, 0)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	dash := &domain.EmployeeDashboard{AvailableJobs: availableJobs}
	for _, app := range apps {
		switch app.Status {
		case domain.ApplicationStatusPending, domain.ApplicationStatusReviewed:
			dash.ActiveApplications++
		case domain.ApplicationStatusAccepted:
			dash.AcceptedApplications++
		}
	}

	return dash, nil
}
