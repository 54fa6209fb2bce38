package handlers

import (
	"encoding/json"
	"log"

	"shiprate/internal/config"
	"shiprate/internal/services/payments"
	"shiprate/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/webhook"
)

// WebhookHandler receives fiat payment notifications from Stripe and routes
// the ones tagged for this extension to the payments hook.
type WebhookHandler struct {
	paymentsService *payments.Service
	signingSecret   string
}

func NewWebhookHandler(paymentsService *payments.Service) *WebhookHandler {
	return &WebhookHandler{
		paymentsService: paymentsService,
		signingSecret:   config.GetEnv("STRIPE_WEBHOOK_SECRET", ""),
	}
}

func (h *WebhookHandler) HandlePaymentEvent(c *fiber.Ctx) error {
	event, err := webhook.ConstructEvent(c.Body(), c.Get("Stripe-Signature"), h.signingSecret)
	if err != nil {
		log.Printf("webhook signature verification failed: %v", err)
		return response.BadRequest(c, "Invalid webhook signature")
	}

	if event.Type != "payment_intent.succeeded" {
		return c.SendStatus(fiber.StatusOK)
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		log.Printf("failed to parse payment intent: %v", err)
		return response.BadRequest(c, "Invalid event payload")
	}

	invoice := &payments.PaidInvoice{
		PaymentHash: intent.ID,
		Tag:         intent.Metadata["tag"],
		Amount:      intent.Amount,
		Memo:        intent.Description,
		UserID:      intent.Metadata["user_id"],
	}
	if err := h.paymentsService.HandlePaidInvoice(invoice); err != nil {
		log.Printf("error processing payment for shipping: %v", err)
	}
	return c.SendStatus(fiber.StatusOK)
}
