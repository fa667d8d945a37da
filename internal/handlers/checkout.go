package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"tour-booking-platform/internal/models"
	"tour-booking-platform/internal/services"
)

// CheckoutHandler starts hosted checkout sessions for tour and car bookings
type CheckoutHandler struct {
	paymentService services.PaymentServiceInterface
	baseURL        string
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(paymentService services.PaymentServiceInterface, baseURL string) *CheckoutHandler {
	return &CheckoutHandler{
		paymentService: paymentService,
		baseURL:        baseURL,
	}
}

// CreateCheckoutSession handles POST /api/checkout. The customer pays a 50%
// deposit up front; the remainder is settled on arrival. On success the
// response carries the hosted payment page URL for the browser to follow.
func (h *CheckoutHandler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var req models.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.paymentService.CreateCheckoutSession(&services.CheckoutSessionParams{
		LineItemName:  req.LineItemName(),
		Amount:        req.DepositAmount(),
		CustomerEmail: req.CustomerEmail,
		SuccessURL:    fmt.Sprintf("%s/booking-success?session_id={CHECKOUT_SESSION_ID}", h.baseURL),
		CancelURL:     fmt.Sprintf("%s/booking-cancelled", h.baseURL),
		Metadata:      req.Metadata(),
	})
	if err != nil {
		log.Printf("Failed to create checkout session for %q: %v", req.ItemName, err)
		respondError(w, http.StatusInternalServerError, "Unable to start checkout. Please try again.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"url": session.URL})
}
