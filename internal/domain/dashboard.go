package domain

import "context"

// RecruiterDashboard is a read-only projection over the recruiter's own
// jobs and their applications. It is recomputed on every request; nothing
// here is stored.
type RecruiterDashboard struct {
	ActiveJobs          int           `json:"active_jobs"`
	ClosedJobs          int           `json:"closed_jobs"`
	TotalJobs           int           `json:"total_jobs"`
	TotalApplications   int           `json:"total_applications"`
	PendingApplications int           `json:"pending_applications"`
	FillRate            int           `json:"fill_rate"` // closed/total as a rounded percentage
	RecentApplications  []Application `json:"recent_applications"`
}

// EmployeeDashboard summarizes the applicant's own activity plus the pool
// of jobs currently open to them.
type EmployeeDashboard struct {
	ActiveApplications   int   `json:"active_applications"` // pending + reviewed
	AcceptedApplications int   `json:"accepted_applications"`
	AvailableJobs        int64 `json:"available_jobs"`
}

type DashboardUsecase interface {
	RecruiterSummary(ctx context.Context, actor Actor) (*RecruiterDashboard, error)
	EmployeeSummary(ctx context.Context, actor Actor) (*EmployeeDashboard, error)
}
