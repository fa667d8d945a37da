package models

import "testing"

func validCheckoutRequest() *CheckoutRequest {
	return &CheckoutRequest{
		Type:          BookingTour,
		ItemName:      "Akagera Safari",
		Price:         100,
		CustomerName:  "Alice Uwase",
		CustomerEmail: "alice@example.com",
		CustomerPhone: "+250788654321",
		People:        3,
		ArrivalDate:   "2026-11-01",
		Message:       "Vegetarian meals please",
	}
}

func TestCheckoutRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*CheckoutRequest)
		wantErr bool
	}{
		{"valid request", func(req *CheckoutRequest) {}, false},
		{"car type", func(req *CheckoutRequest) { req.Type = BookingCar }, false},
		{"missing item name", func(req *CheckoutRequest) { req.ItemName = "  " }, true},
		{"zero price", func(req *CheckoutRequest) { req.Price = 0 }, true},
		{"negative price", func(req *CheckoutRequest) { req.Price = -10 }, true},
		{"missing email", func(req *CheckoutRequest) { req.CustomerEmail = "" }, true},
		{"malformed email", func(req *CheckoutRequest) { req.CustomerEmail = "alice@" }, true},
		{"invalid type", func(req *CheckoutRequest) { req.Type = "bus" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCheckoutRequest()
			tt.modify(req)

			err := req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckoutRequestDepositAmount(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  int
	}{
		{"hundred dollars", 100, 5000},
		{"odd price rounds", 99.99, 5000},
		{"small price", 1, 50},
		{"fractional cents round", 0.33, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &CheckoutRequest{Price: tt.price}
			if got := req.DepositAmount(); got != tt.want {
				t.Errorf("DepositAmount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCheckoutRequestLineItemName(t *testing.T) {
	tour := &CheckoutRequest{Type: BookingTour, ItemName: "Akagera Safari"}
	if got := tour.LineItemName(); got != "Tour: Akagera Safari" {
		t.Errorf("LineItemName() = %q", got)
	}

	car := &CheckoutRequest{Type: BookingCar, ItemName: "Land Cruiser"}
	if got := car.LineItemName(); got != "Car: Land Cruiser" {
		t.Errorf("LineItemName() = %q", got)
	}
}

func TestCheckoutRequestMetadata(t *testing.T) {
	req := validCheckoutRequest()
	meta := req.Metadata()

	want := map[string]string{
		"type":          "tour",
		"itemName":      "Akagera Safari",
		"customerName":  "Alice Uwase",
		"customerPhone": "+250788654321",
		"people":        "3",
		"arrivalDate":   "2026-11-01",
		"message":       "Vegetarian meals please",
	}

	for k, v := range want {
		if meta[k] != v {
			t.Errorf("Metadata()[%q] = %q, want %q", k, meta[k], v)
		}
	}
}
