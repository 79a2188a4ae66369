package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus tracks the lifecycle of a payment-provider subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusPending    SubscriptionStatus = "pending"
	SubscriptionStatusComplete   SubscriptionStatus = "complete"
	SubscriptionStatusIncomplete SubscriptionStatus = "incomplete"
	SubscriptionStatusCanceled   SubscriptionStatus = "canceled"
)

// Subscription mirrors a payment-provider subscription for a customer.
type Subscription struct {
	ID                   uuid.UUID
	CustomerID           string
	ProviderSubscription string // payment-provider subscription reference
	CheckoutSessionID    string
	Description          string
	Status               SubscriptionStatus
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewSubscription creates a subscription record in the pending state, as
// recorded when a checkout session completes before its first invoice is paid.
func NewSubscription(customerID, providerSubscription, checkoutSessionID, description string) *Subscription {
	now := time.Now().UTC()

	return &Subscription{
		ID:                   uuid.New(),
		CustomerID:           customerID,
		ProviderSubscription: providerSubscription,
		CheckoutSessionID:    checkoutSessionID,
		Description:          description,
		Status:               SubscriptionStatusPending,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}
