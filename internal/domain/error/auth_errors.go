// Package error defines domain-specific errors for the CashGPS application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrEmailAlreadyExists is returned when registering with a taken email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidEmail is returned when the email format is invalid.
	ErrInvalidEmail = errors.New("please enter a valid email")

	// ErrInvalidPassword is returned when the password does not meet the policy.
	ErrInvalidPassword = errors.New("at least 8 chars password with letters and numbers")

	// ErrInvalidName is returned when a first or last name is too short.
	ErrInvalidName = errors.New("name must contain at least 3 characters")

	// ErrInvalidCredentials is returned when login credentials do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when a user lookup finds nothing.
	ErrUserNotFound = errors.New("user not found")

	// ErrResetTokenInvalid is returned when a password reset token is unknown or expired.
	ErrResetTokenInvalid = errors.New("password reset token is invalid or expired")

	// ErrSignupEmailFailed is returned when the welcome email cannot be sent
	// and the freshly created account has been rolled back.
	ErrSignupEmailFailed = errors.New("could not complete signup, please try again")
)

// Token errors used by the authentication middleware.
var (
	ErrMissingToken = errors.New("authorization token is required")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEmail    AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidPassword AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidName     AuthErrorCode = "AUTH-010003"
	ErrCodeEmailExists     AuthErrorCode = "AUTH-010004"

	// Authentication errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeMissingToken       AuthErrorCode = "AUTH-020002"
	ErrCodeInvalidToken       AuthErrorCode = "AUTH-020003"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-020004"
	ErrCodeResetTokenInvalid  AuthErrorCode = "AUTH-020005"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-020006"

	// External-dependency errors (03XXXX)
	ErrCodeSignupEmailFailed AuthErrorCode = "AUTH-030001"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
