package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/domain/entity"
	domainerror "github.com/cashgps/backend/internal/domain/error"
)

// UpdateProfileInput represents the input for a profile update. Empty fields
// keep their stored value.
type UpdateProfileInput struct {
	UserID    uuid.UUID
	FirstName string
	LastName  string
	Timezone  string
	Currency  string
}

// UpdateProfileOutput represents the output of a profile update.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase handles user profile updates.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo}
}

// Execute performs the profile update.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if input.FirstName != "" {
		if !isValidName(input.FirstName) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidName,
				"name must contain at least 3 characters",
				domainerror.ErrInvalidName,
			)
		}
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		if !isValidName(input.LastName) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidName,
				"name must contain at least 3 characters",
				domainerror.ErrInvalidName,
			)
		}
		user.LastName = input.LastName
	}
	if input.Timezone != "" {
		user.Timezone = input.Timezone
	}
	if input.Currency != "" {
		user.Currency = input.Currency
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdateProfileOutput{User: user}, nil
}
