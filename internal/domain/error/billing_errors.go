package error

import "errors"

// Billing webhook domain errors.
var (
	// ErrWebhookSignature is returned when the event signature cannot be verified.
	ErrWebhookSignature = errors.New("webhook signature verification failed")

	// ErrUnknownWebhookEvent is returned for event types the handler does not process.
	ErrUnknownWebhookEvent = errors.New("unknown webhook event type")

	// ErrSubscriptionNotFound is returned when no subscription record matches.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// Email errors.
var (
	// ErrEmailSendFailed is returned when the email collaborator rejects a send.
	ErrEmailSendFailed = errors.New("failed to send email")
)
