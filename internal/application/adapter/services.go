package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TokenClaims holds the identity carried by a bearer token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService defines the authentication collaborator contract.
type TokenService interface {
	// Generate issues a signed, time-limited bearer token for the user.
	Generate(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// Validate parses and verifies a bearer token.
	Validate(ctx context.Context, token string) (*TokenClaims, error)
}

// PasswordService defines password hashing and verification.
type PasswordService interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) bool
}

// SendEmailInput holds an outgoing email.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
}

// EmailSender defines the email collaborator contract.
type EmailSender interface {
	Send(ctx context.Context, input SendEmailInput) error
}

// ExchangeRateService resolves the conversion rate between two currencies.
type ExchangeRateService interface {
	Rate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// ProviderSubscription is the slice of a payment-provider subscription the
// webhook handler needs.
type ProviderSubscription struct {
	ID           string
	PlanNickname string
	Interval     string // "month" or "year"
}

// PaymentGateway defines the payment-provider contract.
type PaymentGateway interface {
	// CreateCustomer registers a customer with the provider and returns its reference.
	CreateCustomer(ctx context.Context, email, name string) (string, error)

	// GetSubscription retrieves a subscription by its provider reference.
	GetSubscription(ctx context.Context, id string) (*ProviderSubscription, error)

	// CancelSubscription cancels a subscription immediately.
	CancelSubscription(ctx context.Context, id string) error
}
