package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cashgps/backend/internal/application/adapter"
	domainerror "github.com/cashgps/backend/internal/domain/error"
)

// ChangePasswordInput represents the input for a password change.
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePasswordOutput represents the output of a password change.
type ChangePasswordOutput struct {
	Changed bool
}

// ChangePasswordUseCase handles password changes for a logged-in user.
type ChangePasswordUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewChangePasswordUseCase creates a new ChangePasswordUseCase instance.
func NewChangePasswordUseCase(userRepo adapter.UserRepository, passwordService adapter.PasswordService) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{userRepo: userRepo, passwordService: passwordService}
}

// Execute performs the password change.
func (uc *ChangePasswordUseCase) Execute(ctx context.Context, input ChangePasswordInput) (*ChangePasswordOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if !uc.passwordService.Compare(user.PasswordHash, input.CurrentPassword) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	if !isValidPassword(input.NewPassword) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidPassword,
			"at least 8 chars password with letters and numbers",
			domainerror.ErrInvalidPassword,
		)
	}

	passwordHash, err := uc.passwordService.Hash(input.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &ChangePasswordOutput{Changed: true}, nil
}
