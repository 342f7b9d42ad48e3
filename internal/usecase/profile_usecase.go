package usecase

import (
	"context"
	"time"

	"skillsingh-backend/internal/domain"
	"skillsingh-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	validate    *validator.Validate
}

func NewProfileUsecase(profileRepo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		validate:    validate,
	}
}

// ResolveActor turns a verified identity into an Actor. A missing profile
// yields a roleless actor rather than an error so that the profile
// bootstrap (first save) can still go through; everything role-gated
// rejects a roleless actor.
func (u *profileUsecase) ResolveActor(ctx context.Context, userID, email string) (domain.Actor, error) {
	if userID == "" {
		return domain.Actor{}, apperror.Unauthorized("User not authenticated")
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return domain.Actor{}, apperror.Internal(err)
	}

	actor := domain.Actor{UserID: userID, Email: email}
	if profile != nil {
		actor.Role = profile.Role
	}
	return actor, nil
}

func (u *profileUsecase) GetProfile(ctx context.Context, actor domain.Actor) (*domain.Profile, error) {
	if actor.UserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	profile, err := u.profileRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return profile, nil
}

// SaveProfile creates the actor's profile on first save and updates it
// afterwards. Ownership is forced from the actor, and the stored role is
// immutable once assigned.
func (u *profileUsecase) SaveProfile(ctx context.Context, actor domain.Actor, profile *domain.Profile) (*domain.Profile, error) {
	if actor.UserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	// The actor can only ever write its own profile
	profile.UserID = actor.UserID

	existing, err := u.profileRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	if existing != nil {
		// Role never changes after first assignment
		profile.ID = existing.ID
		profile.Role = existing.Role
		profile.CreatedAt = existing.CreatedAt
		profile.UpdatedAt = now

		if err := u.validate.Struct(profile); err != nil {
			return nil, apperror.BadRequest(err.Error())
		}
		if err := u.profileRepo.Update(ctx, profile); err != nil {
			return nil, apperror.Internal(err)
		}
		return profile, nil
	}

	profile.CreatedAt = now
	profile.UpdatedAt = now

	if err := u.validate.Struct(profile); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	if err := u.profileRepo.Create(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}
