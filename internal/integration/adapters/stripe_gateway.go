package adapters

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/cashgps/backend/internal/application/adapter"
)

// stripeGateway implements the adapter.PaymentGateway interface using Stripe.
type stripeGateway struct {
	api *client.API
}

// NewStripeGateway creates a Stripe payment gateway.
func NewStripeGateway(apiKey string) adapter.PaymentGateway {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &stripeGateway{api: api}
}

// CreateCustomer registers a customer with Stripe and returns its reference.
func (g *stripeGateway) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	params.Context = ctx

	customer, err := g.api.Customers.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create customer: %w", err)
	}
	return customer.ID, nil
}

// GetSubscription retrieves a subscription by its Stripe reference.
func (g *stripeGateway) GetSubscription(ctx context.Context, id string) (*adapter.ProviderSubscription, error) {
	params := &stripe.SubscriptionParams{}
	params.Context = ctx

	subscription, err := g.api.Subscriptions.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	if subscription.Items == nil || len(subscription.Items.Data) == 0 || subscription.Items.Data[0].Price == nil {
		return nil, fmt.Errorf("subscription %s has no priced item", id)
	}
	price := subscription.Items.Data[0].Price

	result := &adapter.ProviderSubscription{
		ID:           subscription.ID,
		PlanNickname: price.Nickname,
	}
	if price.Recurring != nil {
		result.Interval = string(price.Recurring.Interval)
	}
	return result, nil
}

// CancelSubscription cancels a subscription immediately.
func (g *stripeGateway) CancelSubscription(ctx context.Context, id string) error {
	params := &stripe.SubscriptionCancelParams{}
	params.Context = ctx

	if _, err := g.api.Subscriptions.Cancel(id, params); err != nil {
		return fmt.Errorf("failed to cancel subscription: %w", err)
	}
	return nil
}
