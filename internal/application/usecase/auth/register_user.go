package auth

import (
	"context"
	"fmt"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/domain/entity"
	domainerror "github.com/cashgps/backend/internal/domain/error"
)

// WelcomeEmailBuilder renders the signup confirmation email.
type WelcomeEmailBuilder interface {
	BuildWelcome(recipientName, recipientEmail string) adapter.SendEmailInput
}

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Timezone  string
	Currency  string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	Token string
	User  *entity.User
}

// RegisterUserUseCase handles user registration. The welcome email is part
// of the signup: when it cannot be sent the freshly created user row is
// deleted again and a generic error is surfaced, so a failed signup leaves
// no account behind.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	emailSender     adapter.EmailSender
	emailBuilder    WelcomeEmailBuilder
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	emailSender adapter.EmailSender,
	emailBuilder WelcomeEmailBuilder,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		emailSender:     emailSender,
		emailBuilder:    emailBuilder,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	if err := validateRegistration(input.Email, input.Password, input.FirstName, input.LastName); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	passwordHash, err := uc.passwordService.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(input.Email, passwordHash, input.FirstName, input.LastName, input.Timezone, input.Currency)

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	email := uc.emailBuilder.BuildWelcome(user.FullName(), user.Email)
	if err := uc.emailSender.Send(ctx, email); err != nil {
		// Compensate: the account must not exist without its confirmation.
		if deleteErr := uc.userRepo.Delete(ctx, user.ID); deleteErr != nil {
			return nil, fmt.Errorf("failed to roll back user after email failure: %w", deleteErr)
		}
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeSignupEmailFailed,
			"could not complete signup, please try again",
			domainerror.ErrSignupEmailFailed,
		)
	}

	token, err := uc.tokenService.Generate(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &RegisterUserOutput{Token: token, User: user}, nil
}
