package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"skillsingh-backend/internal/domain"
	"skillsingh-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestResolveActor(t *testing.T) {
	ctx := context.Background()

	t.Run("Should resolve the role from the stored profile", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, validator.New())

		mockRepo.On("GetByUserID", ctx, "user-1").Return(&domain.Profile{
			UserID: "user-1",
			Role:   domain.RoleRecruiter,
		}, nil)

		actor, err := uc.ResolveActor(ctx, "user-1", "u@mail.test")

		assert.NoError(t, err)
		assert.True(t, actor.IsRecruiter())
	})

	t.Run("Should yield a roleless actor when no profile exists", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, validator.New())

		mockRepo.On("GetByUserID", ctx, "fresh-user").Return(nil, nil)

		actor, err := uc.ResolveActor(ctx, "fresh-user", "u@mail.test")

		assert.NoError(t, err)
		assert.False(t, actor.IsRecruiter())
		assert.False(t, actor.IsEmployee())
	})

	t.Run("Should fail safe without an identity", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, validator.New())

		_, err := uc.ResolveActor(ctx, "", "")

		assertCode(t, err, http.StatusUnauthorized)
		mockRepo.AssertNotCalled(t, "GetByUserID")
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should signal NotFound for a missing profile", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, validator.New())

		mockRepo.On("GetByUserID", ctx, employee.UserID).Return(nil, nil)

		_, err := uc.GetProfile(ctx, employee)
		assertCode(t, err, http.StatusNotFound)
	})
}

func TestSaveProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("First save creates the profile with the requested role", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, validator.New())

		fresh := domain.Actor{UserID: "fresh-user", Email: "f@mail.test"}
		mockRepo.On("GetByUserID", ctx, "fresh-user").Return(nil, nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Profile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Profile)
			assert.Equal(t, "fresh-user", p.UserID)
			assert.Equal(t, domain.RoleEmployee, p.Role)
		})

		_, err := uc.SaveProfile(ctx, fresh, &domain.Profile{
			Role:     domain.RoleEmployee,
			FullName: "Fresh User",
			Email:    "f@mail.test",
		})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Role is immutable after first assignment", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, validator.New())

		mockRepo.On("GetByUserID", ctx, employee.UserID).Return(&domain.Profile{
			ID:     "p1",
			UserID: employee.UserID,
			Role:   domain.RoleEmployee,
		}, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Profile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Profile)
			assert.Equal(t, domain.RoleEmployee, p.Role) // attempted switch is ignored
		})

		_, err := uc.SaveProfile(ctx, employee, &domain.Profile{
			Role:     domain.RoleRecruiter, // attempt to escalate
			FullName: "Existing User",
			Email:    "e@mail.test",
		})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("UserID is forced from the actor", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, validator.New())

		mockRepo.On("GetByUserID", ctx, employee.UserID).Return(nil, nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Profile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Profile)
			assert.Equal(t, employee.UserID, p.UserID)
		})

		_, err := uc.SaveProfile(ctx, employee, &domain.Profile{
			UserID:   "someone-else",
			Role:     domain.RoleEmployee,
			FullName: "Existing User",
			Email:    "e@mail.test",
		})

		assert.NoError(t, err)
	})

	t.Run("Invalid fields are rejected before any store write", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, validator.New())

		mockRepo.On("GetByUserID", ctx, employee.UserID).Return(nil, nil)

		_, err := uc.SaveProfile(ctx, employee, &domain.Profile{
			Role:     domain.RoleEmployee,
			FullName: "X", // too short
			Email:    "not-an-email",
		})

		assertCode(t, err, http.StatusBadRequest)
		mockRepo.AssertNotCalled(t, "Create")
		mockRepo.AssertNotCalled(t, "Update")
	})
}
