package error

import "errors"

// Fixed user-facing texts surfaced by the authorization-style checks.
const (
	MsgUpgradeSubscription = "Upgrade your subscription to perform this action."
	MsgNotAuthorized       = "You are not authorized to perform this action"
)

// Project domain errors.
var (
	// ErrProjectNotFound is returned when a project lookup finds nothing.
	ErrProjectNotFound = errors.New("project not found")

	// ErrSubscriptionLimit is returned when the subscription limit gate
	// rejects an insert or invitation.
	ErrSubscriptionLimit = errors.New("subscription limit reached")

	// ErrNotAuthorized is returned when the permission gate rejects a mutation.
	ErrNotAuthorized = errors.New("not authorized to modify project")

	// ErrCurrencyConversion is returned when the exchange-rate lookup or the
	// bulk conversion fails; no partial conversion is applied.
	ErrCurrencyConversion = errors.New("something was wrong, please update later")
)

// ProjectErrorCode defines error codes for project errors.
type ProjectErrorCode string

const (
	ErrCodeProjectNotFound    ProjectErrorCode = "PRJ-010001"
	ErrCodeSubscriptionLimit  ProjectErrorCode = "PRJ-020001"
	ErrCodeNotAuthorized      ProjectErrorCode = "PRJ-020002"
	ErrCodeCurrencyConversion ProjectErrorCode = "PRJ-030001"
)

// ProjectError represents a project error with code and message.
type ProjectError struct {
	Code    ProjectErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProjectError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProjectError) Unwrap() error {
	return e.Err
}

// NewProjectError creates a new ProjectError with the given code and message.
func NewProjectError(code ProjectErrorCode, message string, err error) *ProjectError {
	return &ProjectError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
