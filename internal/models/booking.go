package models

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// BookingType identifies what kind of catalog item was booked
type BookingType string

const (
	BookingTour BookingType = "tour"
	BookingCar  BookingType = "car"
)

// Booking represents a paid booking recorded from a completed checkout
// session. Rows are created only by the webhook handler, never by the
// client, so a booking always corresponds to a genuine processor event.
type Booking struct {
	ID                  int         `json:"id" db:"id"`
	StripeSessionID     string      `json:"stripe_session_id" db:"stripe_session_id"`
	Type                BookingType `json:"type" db:"type"`
	ItemName            string      `json:"item_name" db:"item_name"`
	CustomerName        string      `json:"customer_name" db:"customer_name"`
	CustomerEmail       string      `json:"customer_email" db:"customer_email"`
	CustomerPhone       string      `json:"customer_phone" db:"customer_phone"`
	People              int         `json:"people" db:"people"`
	ArrivalDate         string      `json:"arrival_date" db:"arrival_date"`
	Message             string      `json:"message" db:"message"`
	AmountPaid          int         `json:"amount_paid" db:"amount_paid"` // Amount in cents
	PaymentStatus       string      `json:"payment_status" db:"payment_status"`
	StripePaymentIntent string      `json:"stripe_payment_intent" db:"stripe_payment_intent"`
	CreatedAt           time.Time   `json:"created_at" db:"created_at"`
}

// BookingCreateRequest represents the data reconstructed from a completed
// checkout session by the webhook handler
type BookingCreateRequest struct {
	StripeSessionID     string      `json:"stripe_session_id"`
	Type                BookingType `json:"type"`
	ItemName            string      `json:"item_name"`
	CustomerName        string      `json:"customer_name"`
	CustomerEmail       string      `json:"customer_email"`
	CustomerPhone       string      `json:"customer_phone"`
	People              int         `json:"people"`
	ArrivalDate         string      `json:"arrival_date"`
	Message             string      `json:"message"`
	AmountPaid          int         `json:"amount_paid"`
	PaymentStatus       string      `json:"payment_status"`
	StripePaymentIntent string      `json:"stripe_payment_intent"`
}

var bookingEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate validates booking creation data
func (req *BookingCreateRequest) Validate() error {
	if req.StripeSessionID == "" {
		return errors.New("stripe session id is required")
	}

	switch req.Type {
	case BookingTour, BookingCar:
	default:
		return errors.New("booking type must be tour or car")
	}

	if req.ItemName == "" {
		return errors.New("item name is required")
	}

	if !bookingEmailRegex.MatchString(req.CustomerEmail) {
		return errors.New("customer email is invalid")
	}

	if req.AmountPaid < 0 {
		return errors.New("amount paid cannot be negative")
	}

	return nil
}

// FormattedAmount renders the paid amount in dollars, e.g. 5000 -> "$50.00"
func (b *Booking) FormattedAmount() string {
	return fmt.Sprintf("$%.2f", float64(b.AmountPaid)/100)
}
