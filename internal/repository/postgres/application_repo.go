package postgres

import (
	"context"
	"errors"
	"time"

	"skillsingh-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the postgres error code raised by the unique index
// on (job_id, applicant_id).
const uniqueViolation = "23505"

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. Duplicate (job_id, applicant_id)
// pairs are rejected by the store itself, so concurrent applies cannot
// both land.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (id, job_id, applicant_id, status, cover_letter, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	_, err := r.db.Exec(ctx, query,
		app.ID, app.JobID, app.ApplicantID, app.Status, app.CoverLetter,
		app.CreatedAt, app.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicateApplication
		}
		return err
	}
	return nil
}

// GetByID retrieves an application joined with its job.
func (r *applicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.applicant_id, a.status, a.cover_letter, a.created_at, a.updated_at,
			j.id, j.recruiter_id, j.title, j.company, j.location, j.type, j.description,
			j.requirements, j.salary_range, j.status, j.created_at
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		WHERE a.id = $1`

	var app domain.Application
	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.ApplicantID, &app.Status, &app.CoverLetter,
		&app.CreatedAt, &app.UpdatedAt,
		&job.ID, &job.RecruiterID, &job.Title, &job.Company, &job.Location, &job.Type,
		&job.Description, &job.Requirements, &job.SalaryRange, &job.Status, &job.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	app.Job = &job
	return &app, nil
}

// GetByApplicant retrieves the applicant's applications with their jobs,
// newest first.
func (r *applicationRepo) GetByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.applicant_id, a.status, a.cover_letter, a.created_at, a.updated_at,
			j.id, j.recruiter_id, j.title, j.company, j.location, j.type, j.description,
			j.requirements, j.salary_range, j.status, j.created_at
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		WHERE a.applicant_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanApplications(rows, false)
}

// GetByRecruiter retrieves every application against the recruiter's
// jobs, with job and applicant data, newest first.
func (r *applicationRepo) GetByRecruiter(ctx context.Context, recruiterID string) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.applicant_id, a.status, a.cover_letter, a.created_at, a.updated_at,
			j.id, j.recruiter_id, j.title, j.company, j.location, j.type, j.description,
			j.requirements, j.salary_range, j.status, j.created_at,
			p.full_name, p.email
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		LEFT JOIN profiles p ON a.applicant_id = p.user_id
		WHERE j.recruiter_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, recruiterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanApplications(rows, true)
}

func scanApplications(rows pgx.Rows, withApplicant bool) ([]domain.Application, error) {
	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		var job domain.Job

		dest := []any{
			&app.ID, &app.JobID, &app.ApplicantID, &app.Status, &app.CoverLetter,
			&app.CreatedAt, &app.UpdatedAt,
			&job.ID, &job.RecruiterID, &job.Title, &job.Company, &job.Location, &job.Type,
			&job.Description, &job.Requirements, &job.SalaryRange, &job.Status, &job.CreatedAt,
		}
		if withApplicant {
			dest = append(dest, &app.ApplicantName, &app.ApplicantEmail)
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		app.Job = &job
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

func (r *applicationRepo) Exists(ctx context.Context, jobID, applicantID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, jobID, applicantID).Scan(&exists)
	return exists, err
}

// UpdateStatus updates the status and bumps updated_at.
func (r *applicationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
