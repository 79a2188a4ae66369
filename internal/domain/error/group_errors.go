package error

import "errors"

// Cash group domain errors.
var (
	// ErrGroupNotFound is returned when a cash group lookup finds nothing.
	ErrGroupNotFound = errors.New("cash group not found")

	// ErrGroupNameExists is returned when a group name is already taken
	// within the (project, group type) scope.
	ErrGroupNameExists = errors.New("group name already exists")

	// ErrInvalidGroupType is returned when the group type is not IN or OUT.
	ErrInvalidGroupType = errors.New("invalid group type")
)

// GroupErrorCode defines error codes for cash group errors.
type GroupErrorCode string

const (
	ErrCodeGroupNotFound    GroupErrorCode = "GRP-010001"
	ErrCodeGroupNameExists  GroupErrorCode = "GRP-010002"
	ErrCodeInvalidGroupType GroupErrorCode = "GRP-010003"
)

// GroupError represents a cash group error with code and message.
type GroupError struct {
	Code    GroupErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GroupError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GroupError) Unwrap() error {
	return e.Err
}

// NewGroupError creates a new GroupError with the given code and message.
func NewGroupError(code GroupErrorCode, message string, err error) *GroupError {
	return &GroupError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
