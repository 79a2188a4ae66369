package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cashgps/backend/internal/application/adapter"
)

// ResetTokenTTL is how long a password reset token stays valid.
const ResetTokenTTL = time.Hour

// ResetEmailBuilder renders the password reset email with the token link.
type ResetEmailBuilder interface {
	BuildPasswordReset(recipientName, recipientEmail, token string) adapter.SendEmailInput
}

// ForgotPasswordInput represents the input for the forgot password flow.
type ForgotPasswordInput struct {
	Email string
}

// ForgotPasswordOutput represents the output of the forgot password flow.
type ForgotPasswordOutput struct {
	Sent bool
}

// ForgotPasswordUseCase stores a one-hour reset token and emails it. An
// unknown email reports success anyway so the endpoint cannot be used to
// probe for accounts.
type ForgotPasswordUseCase struct {
	userRepo     adapter.UserRepository
	emailSender  adapter.EmailSender
	emailBuilder ResetEmailBuilder
}

// NewForgotPasswordUseCase creates a new ForgotPasswordUseCase instance.
func NewForgotPasswordUseCase(
	userRepo adapter.UserRepository,
	emailSender adapter.EmailSender,
	emailBuilder ResetEmailBuilder,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo:     userRepo,
		emailSender:  emailSender,
		emailBuilder: emailBuilder,
	}
}

// Execute performs the forgot password flow.
func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, input ForgotPasswordInput) (*ForgotPasswordOutput, error) {
	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return &ForgotPasswordOutput{Sent: true}, nil
	}

	token, err := generateResetToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiresAt := time.Now().UTC().Add(ResetTokenTTL)
	if err := uc.userRepo.SetPasswordResetToken(ctx, user.ID, &token, &expiresAt); err != nil {
		return nil, fmt.Errorf("failed to store reset token: %w", err)
	}

	email := uc.emailBuilder.BuildPasswordReset(user.FullName(), user.Email, token)
	if err := uc.emailSender.Send(ctx, email); err != nil {
		return nil, fmt.Errorf("failed to send reset email: %w", err)
	}

	return &ForgotPasswordOutput{Sent: true}, nil
}

func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
