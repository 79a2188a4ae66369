package controller

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/cashgps/backend/internal/application/usecase/billing"
	domainerror "github.com/cashgps/backend/internal/domain/error"
	"github.com/cashgps/backend/internal/integration/entrypoint/dto"
)

// BillingController handles the Stripe webhook endpoint. It verifies the
// event signature and normalizes the payload before handing it to the
// application layer.
type BillingController struct {
	handleWebhookUseCase *billing.HandleWebhookUseCase
	webhookSecret        string
}

// NewBillingController creates a new billing controller instance.
func NewBillingController(handleWebhookUseCase *billing.HandleWebhookUseCase, webhookSecret string) *BillingController {
	return &BillingController{
		handleWebhookUseCase: handleWebhookUseCase,
		webhookSecret:        webhookSecret,
	}
}

// Webhook handles POST /webhooks/stripe requests.
func (c *BillingController) Webhook(ctx *gin.Context) {
	payload, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		badRequest(ctx, "Could not read request body")
		return
	}

	event, err := webhook.ConstructEvent(payload, ctx.GetHeader("Stripe-Signature"), c.webhookSecret)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: domainerror.ErrWebhookSignature.Error(),
		})
		return
	}

	normalized, err := normalizeEvent(event)
	if err != nil {
		badRequest(ctx, "Could not parse event payload")
		return
	}

	if _, err := c.handleWebhookUseCase.Execute(ctx.Request.Context(), billing.HandleWebhookInput{
		Event: normalized,
	}); err != nil {
		// Unknown event types are acknowledged so Stripe stops retrying.
		if err == domainerror.ErrUnknownWebhookEvent {
			ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Event ignored"})
			return
		}
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Event processed"})
}

// normalizeEvent extracts the fields the webhook handler needs from the
// provider-specific payload.
func normalizeEvent(event stripe.Event) (billing.WebhookEvent, error) {
	normalized := billing.WebhookEvent{Type: string(event.Type)}

	switch string(event.Type) {
	case billing.EventCheckoutCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return normalized, err
		}
		normalized.CheckoutSessionID = session.ID
		if session.Customer != nil {
			normalized.CustomerID = session.Customer.ID
		}
		if session.Subscription != nil {
			normalized.SubscriptionID = session.Subscription.ID
		}

	case billing.EventInvoicePaid, billing.EventPaymentFailed:
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return normalized, err
		}
		if invoice.Customer != nil {
			normalized.CustomerID = invoice.Customer.ID
		}
		if invoice.Subscription != nil {
			normalized.SubscriptionID = invoice.Subscription.ID
		}
		normalized.Description = invoice.Description

	case billing.EventSubscriptionDeleted:
		var subscription stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
			return normalized, err
		}
		normalized.SubscriptionID = subscription.ID
		if subscription.Customer != nil {
			normalized.CustomerID = subscription.Customer.ID
		}
	}

	return normalized, nil
}
