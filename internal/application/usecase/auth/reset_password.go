package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/cashgps/backend/internal/application/adapter"
	domainerror "github.com/cashgps/backend/internal/domain/error"
)

// ResetPasswordInput represents the input for the reset password flow.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// ResetPasswordOutput represents the output of the reset password flow.
type ResetPasswordOutput struct {
	Reset bool
}

// ResetPasswordUseCase exchanges a valid reset token for a new password and
// clears the token.
type ResetPasswordUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewResetPasswordUseCase creates a new ResetPasswordUseCase instance.
func NewResetPasswordUseCase(userRepo adapter.UserRepository, passwordService adapter.PasswordService) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{userRepo: userRepo, passwordService: passwordService}
}

// Execute performs the password reset.
func (uc *ResetPasswordUseCase) Execute(ctx context.Context, input ResetPasswordInput) (*ResetPasswordOutput, error) {
	if !isValidPassword(input.NewPassword) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidPassword,
			"at least 8 chars password with letters and numbers",
			domainerror.ErrInvalidPassword,
		)
	}

	user, err := uc.userRepo.FindByResetToken(ctx, input.Token)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeResetTokenInvalid,
			"password reset token is invalid or expired",
			domainerror.ErrResetTokenInvalid,
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
	if err := uc.userRepo.SetPasswordResetToken(ctx, user.ID, nil, nil); err != nil {
		return nil, fmt.Errorf("failed to clear reset token: %w", err)
	}

	return &ResetPasswordOutput{Reset: true}, nil
}
