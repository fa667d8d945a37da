package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tour-booking-platform/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func checkoutBody(t *testing.T, overrides map[string]any) *bytes.Buffer {
	t.Helper()

	body := map[string]any{
		"type":          "tour",
		"itemName":      "Akagera Safari",
		"price":         100.0,
		"customerName":  "Alice Uwase",
		"customerEmail": "alice@example.com",
		"customerPhone": "+250788654321",
		"people":        3,
		"arrivalDate":   "2026-11-01",
		"message":       "Vegetarian meals please",
	}
	for k, v := range overrides {
		if v == nil {
			delete(body, k)
		} else {
			body[k] = v
		}
	}

	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(body))
	return buf
}

func TestCreateCheckoutSessionSuccess(t *testing.T) {
	mockPayment := &MockPaymentService{}
	handler := NewCheckoutHandler(mockPayment, "https://rwandavisittours.com")

	mockPayment.On("CreateCheckoutSession", mock.MatchedBy(func(params *services.CheckoutSessionParams) bool {
		return params.LineItemName == "Tour: Akagera Safari" &&
			params.Amount == 5000 && // 50% of $100 in cents
			params.CustomerEmail == "alice@example.com" &&
			params.SuccessURL == "https://rwandavisittours.com/booking-success?session_id={CHECKOUT_SESSION_ID}" &&
			params.CancelURL == "https://rwandavisittours.com/booking-cancelled" &&
			params.Metadata["itemName"] == "Akagera Safari" &&
			params.Metadata["people"] == "3"
	})).Return(&services.CheckoutSession{
		ID:  "cs_test_new",
		URL: "https://checkout.stripe.com/c/pay/cs_test_new",
	}, nil)

	req := httptest.NewRequest("POST", "/api/checkout", checkoutBody(t, nil))
	rec := httptest.NewRecorder()
	handler.CreateCheckoutSession(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_new", resp["url"])

	mockPayment.AssertExpectations(t)
}

func TestCreateCheckoutSessionValidation(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
	}{
		{"missing item name", map[string]any{"itemName": nil}},
		{"blank item name", map[string]any{"itemName": "   "}},
		{"zero price", map[string]any{"price": 0}},
		{"missing email", map[string]any{"customerEmail": nil}},
		{"bad email", map[string]any{"customerEmail": "nope"}},
		{"bad type", map[string]any{"type": "boat"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPayment := &MockPaymentService{}
			handler := NewCheckoutHandler(mockPayment, "https://rwandavisittours.com")

			req := httptest.NewRequest("POST", "/api/checkout", checkoutBody(t, tt.overrides))
			rec := httptest.NewRecorder()
			handler.CreateCheckoutSession(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.NotEmpty(t, resp["error"])

			// No processor call is ever made for an invalid request
			mockPayment.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything)
		})
	}
}

func TestCreateCheckoutSessionMalformedJSON(t *testing.T) {
	mockPayment := &MockPaymentService{}
	handler := NewCheckoutHandler(mockPayment, "https://rwandavisittours.com")

	req := httptest.NewRequest("POST", "/api/checkout", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	handler.CreateCheckoutSession(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockPayment.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything)
}

func TestCreateCheckoutSessionProcessorError(t *testing.T) {
	mockPayment := &MockPaymentService{}
	handler := NewCheckoutHandler(mockPayment, "https://rwandavisittours.com")

	mockPayment.On("CreateCheckoutSession", mock.Anything).
		Return(nil, errors.New("unauthorized: check API keys - Invalid API Key provided"))

	req := httptest.NewRequest("POST", "/api/checkout", checkoutBody(t, nil))
	rec := httptest.NewRecorder()
	handler.CreateCheckoutSession(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// The processor error detail never reaches the client
	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotContains(t, resp["error"], "API Key")
}
