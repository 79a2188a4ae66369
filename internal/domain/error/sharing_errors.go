package error

import "errors"

// Sharing domain errors.
var (
	// ErrSharingNotFound is returned when no sharing record ties the user to the project.
	ErrSharingNotFound = errors.New("sharing record not found")

	// ErrRecipientNotFound is returned when the invited email has no account.
	ErrRecipientNotFound = errors.New("recipient not found")

	// ErrInvitationFailed is returned when the invitation email cannot be sent.
	ErrInvitationFailed = errors.New("something was wrong")
)

// SharingErrorCode defines error codes for sharing errors.
type SharingErrorCode string

const (
	ErrCodeSharingNotFound   SharingErrorCode = "SHR-010001"
	ErrCodeRecipientNotFound SharingErrorCode = "SHR-010002"
	ErrCodeInvitationFailed  SharingErrorCode = "SHR-030001"
)

// SharingError represents a sharing error with code and message.
type SharingError struct {
	Code    SharingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SharingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SharingError) Unwrap() error {
	return e.Err
}

// NewSharingError creates a new SharingError with the given code and message.
func NewSharingError(code SharingErrorCode, message string, err error) *SharingError {
	return &SharingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
