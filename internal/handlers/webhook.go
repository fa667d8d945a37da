package handlers

import (
	"io"
	"log"
	"net/http"

	"tour-booking-platform/internal/services"
)

// maxWebhookBody bounds the webhook payload size
const maxWebhookBody = 1 << 20 // 1 MB

// WebhookHandler receives payment processor events
type WebhookHandler struct {
	paymentService services.PaymentServiceInterface
	bookingService services.BookingServiceInterface
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(paymentService services.PaymentServiceInterface, bookingService services.BookingServiceInterface) *WebhookHandler {
	return &WebhookHandler{
		paymentService: paymentService,
		bookingService: bookingService,
	}
}

// HandleStripeWebhook handles POST /webhooks/stripe. The signature is
// verified before the payload is trusted. A failed booking insert returns
// 500 so the processor redelivers the event; everything else acknowledges
// with 200 so delivery is not retried forever.
func (h *WebhookHandler) HandleStripeWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	event, err := h.paymentService.ConstructWebhookEvent(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		respondError(w, http.StatusBadRequest, "Invalid signature")
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		session, err := services.CheckoutSessionFromEvent(event)
		if err != nil {
			log.Printf("Webhook %s: malformed session object: %v", event.ID, err)
			respondError(w, http.StatusBadRequest, "Malformed event payload")
			return
		}

		booking, created, err := h.bookingService.ProcessCompletedSession(session)
		if err != nil {
			log.Printf("Webhook %s: failed to process session %s: %v", event.ID, session.ID, err)
			respondError(w, http.StatusInternalServerError, "Failed to record booking")
			return
		}

		if created {
			log.Printf("Webhook %s: recorded booking %d for session %s", event.ID, booking.ID, session.ID)
		}

	default:
		// Unhandled event types are acknowledged so Stripe stops resending
		log.Printf("Webhook %s: ignoring event type %s", event.ID, event.Type)
	}

	respondJSON(w, http.StatusOK, map[string]bool{"received": true})
}
