package domain

import (
	"context"
	"time"
)

// Profile roles. A profile's role is assigned once at creation and is
// immutable afterwards.
const (
	RoleRecruiter = "recruiter"
	RoleEmployee  = "employee"
)

type Profile struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id" validate:"required"`
	Role       string    `json:"role" validate:"required,oneof=recruiter employee"`
	FullName   string    `json:"full_name" validate:"required,min=2,max=100"`
	Email      string    `json:"email" validate:"required,email"`
	Phone      *string   `json:"phone,omitempty"`
	Company    *string   `json:"company,omitempty"`
	Title      *string   `json:"title,omitempty"`
	Bio        *string   `json:"bio,omitempty" validate:"omitempty,max=500"`
	Skills     []string  `json:"skills,omitempty"`
	Experience *string   `json:"experience,omitempty"`
	Education  *string   `json:"education,omitempty"`
	ResumeURL  *string   `json:"resume_url,omitempty" validate:"omitempty,url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ProfileRepository interface {
	// GetByUserID returns (nil, nil) when no profile exists for the user.
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	Create(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
}

type ProfileUsecase interface {
	// ResolveActor maps an authenticated identity to an Actor. When no
	// profile exists yet the Actor carries an empty role; every role-gated
	// operation rejects such an actor, so a missing profile never grants a
	// default role. Profile creation is the only bootstrap path.
	ResolveActor(ctx context.Context, userID, email string) (Actor, error)
	GetProfile(ctx context.Context, actor Actor) (*Profile, error)
	// SaveProfile creates the profile on first save and updates it after.
	// The stored role never changes on update.
	SaveProfile(ctx context.Context, actor Actor, profile *Profile) (*Profile, error)
}
