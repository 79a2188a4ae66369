// Package billing contains the payment-provider webhook use cases.
package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/cashgps/backend/internal/application/adapter"
	"github.com/cashgps/backend/internal/domain/entity"
	domainerror "github.com/cashgps/backend/internal/domain/error"
)

// Webhook event types processed by the handler.
const (
	EventCheckoutCompleted   = "checkout.session.completed"
	EventInvoicePaid         = "invoice.paid"
	EventPaymentFailed       = "invoice.payment_failed"
	EventSubscriptionDeleted = "customer.subscription.deleted"
)

// Billing intervals reported by the payment provider.
const (
	IntervalMonth = "month"
	IntervalYear  = "year"
)

// WebhookEvent is the provider event normalized by the transport layer after
// signature verification.
type WebhookEvent struct {
	Type              string
	CustomerID        string
	SubscriptionID    string
	CheckoutSessionID string
	Description       string
}

// HandleWebhookInput represents the input for webhook handling.
type HandleWebhookInput struct {
	Event WebhookEvent
}

// HandleWebhookOutput represents the output of webhook handling.
type HandleWebhookOutput struct {
	Processed bool
}

// HandleWebhookUseCase applies payment-provider lifecycle events to the
// subscription records and the customer's active tier.
type HandleWebhookUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
	userRepo         adapter.UserRepository
	gateway          adapter.PaymentGateway
}

// NewHandleWebhookUseCase creates a new HandleWebhookUseCase instance.
func NewHandleWebhookUseCase(
	subscriptionRepo adapter.SubscriptionRepository,
	userRepo adapter.UserRepository,
	gateway adapter.PaymentGateway,
) *HandleWebhookUseCase {
	return &HandleWebhookUseCase{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		gateway:          gateway,
	}
}

// Execute processes one webhook event.
func (uc *HandleWebhookUseCase) Execute(ctx context.Context, input HandleWebhookInput) (*HandleWebhookOutput, error) {
	event := input.Event

	switch event.Type {
	case EventCheckoutCompleted:
		return uc.checkoutCompleted(ctx, event)
	case EventInvoicePaid:
		return uc.invoicePaid(ctx, event)
	case EventPaymentFailed:
		return uc.markStatus(ctx, event.SubscriptionID, entity.SubscriptionStatusIncomplete)
	case EventSubscriptionDeleted:
		return uc.markStatus(ctx, event.SubscriptionID, entity.SubscriptionStatusCanceled)
	}

	return nil, domainerror.ErrUnknownWebhookEvent
}

func (uc *HandleWebhookUseCase) checkoutCompleted(ctx context.Context, event WebhookEvent) (*HandleWebhookOutput, error) {
	record := entity.NewSubscription(event.CustomerID, event.SubscriptionID, event.CheckoutSessionID, event.Description)
	if err := uc.subscriptionRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record subscription: %w", err)
	}
	return &HandleWebhookOutput{Processed: true}, nil
}

func (uc *HandleWebhookUseCase) invoicePaid(ctx context.Context, event WebhookEvent) (*HandleWebhookOutput, error) {
	subscriptionID := event.SubscriptionID
	if subscriptionID == "" {
		// Recurring invoices reference only the customer.
		id, err := uc.subscriptionRepo.FindProviderSubscriptionByCustomer(ctx, event.CustomerID)
		if err != nil {
			return nil, domainerror.ErrSubscriptionNotFound
		}
		subscriptionID = id
	}

	provider, err := uc.gateway.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve provider subscription: %w", err)
	}

	expiresAt := time.Now().UTC().Add(ExtensionFor(provider.Interval))
	if err := uc.userRepo.UpdateSubscriptionByCustomer(ctx, event.CustomerID, provider.PlanNickname, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to activate subscription: %w", err)
	}
	if err := uc.subscriptionRepo.UpdateStatus(ctx, subscriptionID, entity.SubscriptionStatusComplete); err != nil {
		return nil, fmt.Errorf("failed to update subscription status: %w", err)
	}

	return &HandleWebhookOutput{Processed: true}, nil
}

func (uc *HandleWebhookUseCase) markStatus(ctx context.Context, subscriptionID string, status entity.SubscriptionStatus) (*HandleWebhookOutput, error) {
	if _, err := uc.subscriptionRepo.FindByProviderSubscription(ctx, subscriptionID); err != nil {
		return nil, domainerror.ErrSubscriptionNotFound
	}
	if err := uc.subscriptionRepo.UpdateStatus(ctx, subscriptionID, status); err != nil {
		return nil, fmt.Errorf("failed to update subscription status: %w", err)
	}
	return &HandleWebhookOutput{Processed: true}, nil
}

// ExtensionFor maps a billing interval onto the expiry extension: 30 days
// for monthly plans, 365 for yearly.
func ExtensionFor(interval string) time.Duration {
	if interval == IntervalYear {
		return 365 * 24 * time.Hour
	}
	return 30 * 24 * time.Hour
}
