package error

import "errors"

// Cash transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction lookup finds nothing.
	ErrTransactionNotFound = errors.New("cash transaction not found")

	// ErrInvalidFrequency is returned when the recurrence frequency is unknown.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrEmptyUpsertPayload is returned when an upsert carries no entries.
	ErrEmptyUpsertPayload = errors.New("upsert payload cannot be empty")

	// ErrInconsistentRecurrence is returned when a payload would make a
	// transaction both a recurrence parent and an instance.
	ErrInconsistentRecurrence = errors.New("transaction cannot be parent and instance at once")
)

// TransactionErrorCode defines error codes for cash transaction errors.
type TransactionErrorCode string

const (
	ErrCodeTransactionNotFound    TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidFrequency       TransactionErrorCode = "TXN-010002"
	ErrCodeEmptyUpsertPayload     TransactionErrorCode = "TXN-010003"
	ErrCodeInconsistentRecurrence TransactionErrorCode = "TXN-010004"
	ErrCodeTransactionRowNotFound TransactionErrorCode = "TXN-010005"
)

// TransactionError represents a cash transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
