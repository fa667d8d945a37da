package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// StripeConfig represents Stripe payment service configuration
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	Currency      string
}

// StripeService handles payments via the Stripe API. Checkout is fully
// hosted: we create a session, redirect the customer to its URL, and learn
// the outcome from the webhook.
type StripeService struct {
	config    StripeConfig
	client    *http.Client
	baseURL   string
	tolerance time.Duration
}

// NewStripeService creates a new Stripe payment service
func NewStripeService(config StripeConfig) *StripeService {
	if config.Currency == "" {
		config.Currency = "usd"
	}

	return &StripeService{
		config:    config,
		client:    &http.Client{Timeout: 30 * time.Second},
		baseURL:   "https://api.stripe.com",
		tolerance: 5 * time.Minute,
	}
}

// CheckoutSessionParams describes the hosted checkout session to create
type CheckoutSessionParams struct {
	LineItemName  string
	Amount        int // Amount in cents
	Currency      string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

// CheckoutSession mirrors the Stripe checkout session object, restricted to
// the fields the platform reads
type CheckoutSession struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	CustomerEmail string            `json:"customer_email"`
	AmountTotal   int               `json:"amount_total"`
	PaymentStatus string            `json:"payment_status"`
	PaymentIntent string            `json:"payment_intent"`
	Metadata      map[string]string `json:"metadata"`
}

// WebhookEvent is a signature-verified Stripe event envelope
type WebhookEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

// StripeError represents an error response from the Stripe API
type StripeError struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *StripeError) Error() string {
	return fmt.Sprintf("stripe error: %s", e.Message)
}

// ErrInvalidSignature is returned when a webhook payload fails verification
var ErrInvalidSignature = errors.New("webhook signature verification failed")

// CreateCheckoutSession creates a hosted checkout session and returns its
// redirect URL. Nothing is persisted locally; all booking state travels in
// the session metadata until the webhook fires.
func (s *StripeService) CreateCheckoutSession(params *CheckoutSessionParams) (*CheckoutSession, error) {
	currency := params.Currency
	if currency == "" {
		currency = s.config.Currency
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)
	form.Set("customer_email", params.CustomerEmail)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.Itoa(params.Amount))
	form.Set("line_items[0][price_data][product_data][name]", params.LineItemName)
	for key, value := range params.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), value)
	}

	httpReq, err := http.NewRequest("POST", s.baseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create session request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+s.config.SecretKey)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send session request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read session response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, s.handleAPIError(resp.StatusCode, bodyBytes)
	}

	var session CheckoutSession
	if err := json.Unmarshal(bodyBytes, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session response: %w", err)
	}

	if session.URL == "" {
		return nil, fmt.Errorf("stripe returned session %s without a redirect URL", session.ID)
	}

	return &session, nil
}

// ConstructWebhookEvent verifies the Stripe-Signature header against the
// webhook secret and decodes the event. This is the anti-forgery boundary:
// no payload field is trusted before the signature checks out.
func (s *StripeService) ConstructWebhookEvent(payload []byte, sigHeader string) (*WebhookEvent, error) {
	timestamp, signatures, err := parseSignatureHeader(sigHeader)
	if err != nil {
		return nil, err
	}

	if s.tolerance > 0 {
		signedAt := time.Unix(timestamp, 0)
		if time.Since(signedAt) > s.tolerance {
			return nil, ErrInvalidSignature
		}
	}

	expected := computeSignature(timestamp, payload, s.config.WebhookSecret)
	valid := false
	for _, sig := range signatures {
		sigBytes, err := hex.DecodeString(sig)
		if err != nil {
			continue
		}
		if hmac.Equal(sigBytes, expected) {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrInvalidSignature
	}

	var event WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to decode webhook event: %w", err)
	}

	return &event, nil
}

// CheckoutSessionFromEvent extracts the session object from a
// checkout.session.* event
func CheckoutSessionFromEvent(event *WebhookEvent) (*CheckoutSession, error) {
	var session CheckoutSession
	if err := json.Unmarshal(event.Data.Object, &session); err != nil {
		return nil, fmt.Errorf("failed to decode checkout session from event %s: %w", event.ID, err)
	}
	return &session, nil
}

// SignPayload computes a valid Stripe-Signature header value for a payload.
// Used by tests and by the webhook replay tooling.
func (s *StripeService) SignPayload(payload []byte, signedAt time.Time) string {
	timestamp := signedAt.Unix()
	signature := computeSignature(timestamp, payload, s.config.WebhookSecret)
	return fmt.Sprintf("t=%d,v1=%s", timestamp, hex.EncodeToString(signature))
}

// parseSignatureHeader parses "t=<unix>,v1=<hex>[,v1=<hex>...]"
func parseSignatureHeader(header string) (int64, []string, error) {
	if header == "" {
		return 0, nil, ErrInvalidSignature
	}

	var timestamp int64 = -1
	var signatures []string

	for _, part := range strings.Split(header, ",") {
		pair := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(pair) != 2 {
			continue
		}
		switch pair[0] {
		case "t":
			ts, err := strconv.ParseInt(pair[1], 10, 64)
			if err != nil {
				return 0, nil, ErrInvalidSignature
			}
			timestamp = ts
		case "v1":
			signatures = append(signatures, pair[1])
		}
	}

	if timestamp < 0 || len(signatures) == 0 {
		return 0, nil, ErrInvalidSignature
	}

	return timestamp, signatures, nil
}

// computeSignature computes the HMAC-SHA256 of "<timestamp>.<payload>"
func computeSignature(timestamp int64, payload []byte, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(payload)
	return mac.Sum(nil)
}

// handleAPIError maps Stripe API errors to Go errors
func (s *StripeService) handleAPIError(statusCode int, body []byte) error {
	var wrapper struct {
		Error StripeError `json:"error"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil || wrapper.Error.Message == "" {
		return fmt.Errorf("stripe API error (status %d): %s", statusCode, string(body))
	}

	switch statusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("bad request: %s", wrapper.Error.Message)
	case http.StatusUnauthorized:
		return fmt.Errorf("unauthorized: check API keys - %s", wrapper.Error.Message)
	case http.StatusNotFound:
		return fmt.Errorf("not found: %s", wrapper.Error.Message)
	default:
		return &wrapper.Error
	}
}
