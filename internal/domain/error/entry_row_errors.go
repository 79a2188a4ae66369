package error

import "errors"

// Cash entry row domain errors.
var (
	// ErrEntryRowNotFound is returned when an entry row lookup finds nothing.
	ErrEntryRowNotFound = errors.New("entry row not found")

	// ErrEntryRowNameExists is returned when a row name is already taken
	// within its group.
	ErrEntryRowNameExists = errors.New("entry row name already exists")

	// ErrEmptyRankList is returned when a drag-and-drop reorder carries no IDs.
	ErrEmptyRankList = errors.New("rank list cannot be empty")
)

// EntryRowErrorCode defines error codes for entry row errors.
type EntryRowErrorCode string

const (
	ErrCodeEntryRowNotFound   EntryRowErrorCode = "ROW-010001"
	ErrCodeEntryRowNameExists EntryRowErrorCode = "ROW-010002"
	ErrCodeEmptyRankList      EntryRowErrorCode = "ROW-010003"
)

// EntryRowError represents an entry row error with code and message.
type EntryRowError struct {
	Code    EntryRowErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntryRowError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntryRowError) Unwrap() error {
	return e.Err
}

// NewEntryRowError creates a new EntryRowError with the given code and message.
func NewEntryRowError(code EntryRowErrorCode, message string, err error) *EntryRowError {
	return &EntryRowError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
