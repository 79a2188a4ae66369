// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account in the CashGPS system.
type User struct {
	ID                    uuid.UUID
	Email                 string
	PasswordHash          string
	FirstName             string
	LastName              string
	Timezone              string
	Currency              string
	CustomerID            string // payment-provider customer reference
	ActiveSubscription    *string
	SubscriptionExpiresAt *time.Time
	PasswordResetToken    *string
	PasswordResetExpires  *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// NewUser creates a new User entity.
// New accounts start on a TRIAL subscription that expires after 14 days.
func NewUser(email, passwordHash, firstName, lastName, timezone, currency string) *User {
	now := time.Now().UTC()

	if timezone == "" {
		timezone = "UTC"
	}
	if currency == "" {
		currency = "USD"
	}

	trial := "TRIAL"
	expiresAt := now.Add(14 * 24 * time.Hour)

	return &User{
		ID:                    uuid.New(),
		Email:                 email,
		PasswordHash:          passwordHash,
		FirstName:             firstName,
		LastName:              lastName,
		Timezone:              timezone,
		Currency:              currency,
		ActiveSubscription:    &trial,
		SubscriptionExpiresAt: &expiresAt,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
