package adapter

import (
	"context"

	"github.com/cashgps/backend/internal/domain/entity"
)

// SubscriptionRepository defines the interface for payment subscription records.
type SubscriptionRepository interface {
	// Create inserts a subscription record.
	Create(ctx context.Context, subscription *entity.Subscription) error

	// FindByProviderSubscription retrieves a record by its provider reference.
	FindByProviderSubscription(ctx context.Context, providerSubscription string) (*entity.Subscription, error)

	// FindProviderSubscriptionByCustomer returns the provider reference of
	// the customer's latest subscription record.
	FindProviderSubscriptionByCustomer(ctx context.Context, customerID string) (string, error)

	// UpdateStatus sets the status of the record matching the provider reference.
	UpdateStatus(ctx context.Context, providerSubscription string, status entity.SubscriptionStatus) error
}
