package postgres

import (
	"context"
	"errors"

	"skillsingh-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, recruiter_id, title, company, location, type, description, requirements, salary_range, status, created_at`

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (id, recruiter_id, title, company, location, type, description, requirements, salary_range, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	if job.ID == "" {
		job.ID = uuid.NewString()
	}

	_, err := r.db.Exec(ctx, query,
		job.ID, job.RecruiterID, job.Title, job.Company, job.Location, job.Type,
		job.Description, job.Requirements, job.SalaryRange, job.Status, job.CreatedAt,
	)
	return err
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.RecruiterID, &job.Title, &job.Company, &job.Location, &job.Type,
		&job.Description, &job.Requirements, &job.SalaryRange, &job.Status, &job.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FetchActive returns active jobs only, newest first. The status filter is
// applied server-side; listings for applicants cannot be widened by the
// client.
func (r *jobRepo) FetchActive(ctx context.Context, limit, offset int) ([]domain.Job, int64, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs
	          WHERE status = 'active'
	          ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	jobs, err := r.fetch(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE status = 'active'`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepo) FetchByRecruiter(ctx context.Context, recruiterID string, limit, offset int) ([]domain.Job, int64, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs
	          WHERE recruiter_id = $3
	          ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	jobs, err := r.fetch(ctx, query, limit, offset, recruiterID)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE recruiter_id = $1`, recruiterID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepo) fetch(ctx context.Context, query string, limit, offset int, extra ...any) ([]domain.Job, error) {
	args := append([]any{limit, offset}, extra...)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.RecruiterID, &job.Title, &job.Company, &job.Location, &job.Type,
			&job.Description, &job.Requirements, &job.SalaryRange, &job.Status, &job.CreatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE jobs SET status = $2 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
