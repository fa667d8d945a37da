package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tour-booking-platform/internal/models"
)

// ResendConfig represents Resend email service configuration
type ResendConfig struct {
	APIKey     string
	FromEmail  string
	FromName   string
	AdminEmail string
}

// ResendEmailService handles email sending via the Resend API
type ResendEmailService struct {
	config  ResendConfig
	client  *http.Client
	baseURL string
}

// NewResendEmailService creates a new Resend email service
func NewResendEmailService(config ResendConfig) *ResendEmailService {
	return &ResendEmailService{
		config: config,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: "https://api.resend.com",
	}
}

// ResendEmailRequest represents the request structure for the Resend API
type ResendEmailRequest struct {
	From    string      `json:"from"`
	To      []string    `json:"to"`
	Subject string      `json:"subject"`
	HTML    string      `json:"html,omitempty"`
	Text    string      `json:"text,omitempty"`
	Tags    []ResendTag `json:"tags,omitempty"`
}

// ResendTag represents a tag for email categorization
type ResendTag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ResendEmailResponse represents the response from the Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from the Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
}

// getFromField constructs the from field properly
func (s *ResendEmailService) getFromField() string {
	if s.config.FromName != "" {
		return fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	}
	return s.config.FromEmail
}

// SendBookingNotification notifies the business owner of a new paid booking
func (s *ResendEmailService) SendBookingNotification(booking *models.Booking) error {
	htmlContent := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Booking</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #166534; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background-color: #f9f9f9; }
        .highlight { background-color: #DCFCE7; padding: 15px; border-left: 4px solid #166534; margin: 20px 0; }
        .footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New %s Booking</h1>
        </div>
        <div class="content">
            <div class="highlight">
                <h3>%s</h3>
                <p><strong>Customer:</strong> %s (%s, %s)</p>
                <p><strong>People:</strong> %d</p>
                <p><strong>Arrival:</strong> %s</p>
                <p><strong>Deposit paid:</strong> %s</p>
                <p><strong>Payment status:</strong> %s</p>
                <p><strong>Session:</strong> %s</p>
            </div>
            <p><strong>Customer message:</strong></p>
            <p>%s</p>
        </div>
        <div class="footer">
            <p>Rwanda Visit Tours</p>
        </div>
    </div>
</body>
</html>`,
		booking.Type, booking.ItemName,
		booking.CustomerName, booking.CustomerEmail, booking.CustomerPhone,
		booking.People, booking.ArrivalDate,
		booking.FormattedAmount(), booking.PaymentStatus,
		booking.StripeSessionID, booking.Message)

	textContent := fmt.Sprintf(`New %s booking

Item: %s
Customer: %s (%s, %s)
People: %d
Arrival: %s
Deposit paid: %s
Payment status: %s
Session: %s

Customer message:
%s`,
		booking.Type, booking.ItemName,
		booking.CustomerName, booking.CustomerEmail, booking.CustomerPhone,
		booking.People, booking.ArrivalDate,
		booking.FormattedAmount(), booking.PaymentStatus,
		booking.StripeSessionID, booking.Message)

	request := ResendEmailRequest{
		From:    s.getFromField(),
		To:      []string{s.config.AdminEmail},
		Subject: fmt.Sprintf("New booking: %s", booking.ItemName),
		HTML:    htmlContent,
		Text:    textContent,
		Tags: []ResendTag{
			{Name: "category", Value: "booking_notification"},
		},
	}

	return s.sendEmail(request)
}

// SendBookingConfirmation confirms the deposit payment to the customer
func (s *ResendEmailService) SendBookingConfirmation(booking *models.Booking) error {
	name := booking.CustomerName
	if name == "" {
		name = "traveller"
	}

	htmlContent := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Booking Confirmation</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #4F46E5; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background-color: #f9f9f9; }
        .highlight { background-color: #EEF2FF; padding: 15px; border-left: 4px solid #4F46E5; margin: 20px 0; }
        .footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Booking Confirmed</h1>
        </div>
        <div class="content">
            <p>Dear %s,</p>
            <p>Thank you for booking with us! Your deposit has been received. Here are your booking details:</p>

            <div class="highlight">
                <h3>%s</h3>
                <p><strong>Arrival date:</strong> %s</p>
                <p><strong>People:</strong> %d</p>
                <p><strong>Deposit paid:</strong> %s</p>
                <p><strong>Reference:</strong> %s</p>
            </div>

            <p>The remaining balance is payable on arrival. Our team will contact you shortly to finalize the details of your trip.</p>

            <p>Murakaza neza - welcome to Rwanda!</p>
        </div>
        <div class="footer">
            <p>Rwanda Visit Tours</p>
        </div>
    </div>
</body>
</html>`,
		name, booking.ItemName, booking.ArrivalDate, booking.People,
		booking.FormattedAmount(), booking.StripeSessionID)

	textContent := fmt.Sprintf(`Booking Confirmed

Dear %s,

Thank you for booking with us! Your deposit has been received.

Item: %s
Arrival date: %s
People: %d
Deposit paid: %s
Reference: %s

The remaining balance is payable on arrival. Our team will contact you
shortly to finalize the details of your trip.

Murakaza neza - welcome to Rwanda!

Rwanda Visit Tours`,
		name, booking.ItemName, booking.ArrivalDate, booking.People,
		booking.FormattedAmount(), booking.StripeSessionID)

	request := ResendEmailRequest{
		From:    s.getFromField(),
		To:      []string{booking.CustomerEmail},
		Subject: fmt.Sprintf("Booking confirmation - %s", booking.ItemName),
		HTML:    htmlContent,
		Text:    textContent,
		Tags: []ResendTag{
			{Name: "category", Value: "booking_confirmation"},
		},
	}

	return s.sendEmail(request)
}

// sendEmail sends an email via the Resend API
func (s *ResendEmailService) sendEmail(request ResendEmailRequest) error {
	jsonData, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", s.baseURL+"/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errorResp ResendErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errorResp); err != nil {
			return fmt.Errorf("failed to send email, status: %d", resp.StatusCode)
		}
		return fmt.Errorf("failed to send email: %s", errorResp.Message)
	}

	var response ResendEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// TestConnection tests the Resend API connection
func (s *ResendEmailService) TestConnection() error {
	request := ResendEmailRequest{
		From:    s.getFromField(),
		To:      []string{"test@example.com"}, // This won't actually send
		Subject: "Test Connection",
		Text:    "This is a test email to validate API connection",
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal test request: %w", err)
	}

	req, err := http.NewRequest("POST", s.baseURL+"/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create test request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send test request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("invalid API key")
	}

	return nil
}
