package postgres

import (
	"context"
	"errors"
	"time"

	"skillsingh-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

const profileColumns = `id, user_id, role, full_name, email, phone, company, title, bio, skills, experience, education, resume_url, created_at, updated_at`

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`

	var p domain.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Role, &p.FullName, &p.Email, &p.Phone, &p.Company,
		&p.Title, &p.Bio, &p.Skills, &p.Experience, &p.Education, &p.ResumeURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	query := `INSERT INTO profiles (id, user_id, role, full_name, email, phone, company, title, bio, skills, experience, education, resume_url, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now()
		profile.UpdatedAt = profile.CreatedAt
	}

	_, err := r.db.Exec(ctx, query,
		profile.ID, profile.UserID, profile.Role, profile.FullName, profile.Email,
		profile.Phone, profile.Company, profile.Title, profile.Bio, profile.Skills,
		profile.Experience, profile.Education, profile.ResumeURL,
		profile.CreatedAt, profile.UpdatedAt,
	)
	return err
}

// Update rewrites every mutable field. The role column is deliberately
// absent: a profile's role never changes after first assignment.
func (r *profileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	query := `UPDATE profiles SET
		full_name = $2,
		email = $3,
		phone = $4,
		company = $5,
		title = $6,
		bio = $7,
		skills = $8,
		experience = $9,
		education = $10,
		resume_url = $11,
		updated_at = $12
	WHERE user_id = $1`

	result, err := r.db.Exec(ctx, query,
		profile.UserID, profile.FullName, profile.Email, profile.Phone,
		profile.Company, profile.Title, profile.Bio, profile.Skills,
		profile.Experience, profile.Education, profile.ResumeURL, time.Now(),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
