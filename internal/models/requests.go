package models

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// CheckoutRequest is the payload submitted by the booking intake form.
// Price is the listed price in dollars; only a 50% deposit is charged at
// checkout, the remainder is collected offline.
type CheckoutRequest struct {
	Type          BookingType `json:"type"`
	ItemName      string      `json:"itemName"`
	Price         float64     `json:"price"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	CustomerPhone string      `json:"customerPhone"`
	People        int         `json:"people"`
	ArrivalDate   string      `json:"arrivalDate"`
	Message       string      `json:"message"`
}

// Validate rejects checkout requests that are missing required fields.
// Rejection happens before any processor call is made.
func (req *CheckoutRequest) Validate() error {
	if strings.TrimSpace(req.ItemName) == "" {
		return errors.New("itemName is required")
	}

	if req.Price <= 0 {
		return errors.New("price is required")
	}

	if !bookingEmailRegex.MatchString(req.CustomerEmail) {
		return errors.New("customerEmail is required")
	}

	switch req.Type {
	case BookingTour, BookingCar:
	default:
		return errors.New("type must be tour or car")
	}

	return nil
}

// DepositAmount computes the deposit charged at session creation:
// 50% of the listed price, in cents. A $100 price yields 5000.
func (req *CheckoutRequest) DepositAmount() int {
	return int(math.Round(req.Price * 0.5 * 100))
}

// LineItemName names the single checkout line item from type and item name
func (req *CheckoutRequest) LineItemName() string {
	if req.Type == BookingCar {
		return "Car: " + req.ItemName
	}
	return "Tour: " + req.ItemName
}

// Metadata flattens all booking-relevant fields into the session metadata
// bag. The processor is the only durable store between session creation and
// webhook delivery, so everything the webhook needs must travel here.
func (req *CheckoutRequest) Metadata() map[string]string {
	return map[string]string{
		"type":          string(req.Type),
		"itemName":      req.ItemName,
		"customerName":  req.CustomerName,
		"customerPhone": req.CustomerPhone,
		"people":        strconv.Itoa(req.People),
		"arrivalDate":   req.ArrivalDate,
		"message":       req.Message,
	}
}
