package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/domain/entity"
	domainerror "github.com/cashgps/backend/internal/domain/error"
)

// GetUserInput represents the input for the profile query.
type GetUserInput struct {
	UserID uuid.UUID
}

// GetUserOutput represents the output of the profile query.
type GetUserOutput struct {
	User *entity.User
}

// GetUserUseCase resolves the logged-in user's profile.
type GetUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetUserUseCase creates a new GetUserUseCase instance.
func NewGetUserUseCase(userRepo adapter.UserRepository) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo}
}

// Execute performs the profile query.
func (uc *GetUserUseCase) Execute(ctx context.Context, input GetUserInput) (*GetUserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}
	return &GetUserOutput{User: user}, nil
}
