package models

import (
	"errors"
	"strings"
	"time"
)

// CarSpecifications describes the vehicle model details shown on listings
type CarSpecifications struct {
	Seats        int    `json:"seats"`
	Transmission string `json:"transmission"`
	Fuel         string `json:"fuel"`
	Drive        string `json:"drive"`
}

// Car represents a rental vehicle in the catalog
type Car struct {
	ID               int               `json:"id" db:"id"`
	Name             string            `json:"name" db:"name"`
	PricePerDay      int               `json:"price_per_day" db:"price_per_day"` // Amount in cents
	ShortDescription string            `json:"short_description" db:"short_description"`
	MainImage        string            `json:"main_image" db:"main_image"`
	Specifications   CarSpecifications `json:"specifications"`
	IsActive         bool              `json:"is_active" db:"is_active"`
	CreatedAt        time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at" db:"updated_at"`
}

// CarCreateRequest represents the data needed to create a new car
type CarCreateRequest struct {
	Name             string            `json:"name"`
	PricePerDay      int               `json:"price_per_day"`
	ShortDescription string            `json:"short_description"`
	MainImage        string            `json:"main_image"`
	Specifications   CarSpecifications `json:"specifications"`
	IsActive         bool              `json:"is_active"`
}

// CarUpdateRequest represents the data that can be updated for a car
type CarUpdateRequest struct {
	Name             string            `json:"name"`
	PricePerDay      int               `json:"price_per_day"`
	ShortDescription string            `json:"short_description"`
	MainImage        string            `json:"main_image"`
	Specifications   CarSpecifications `json:"specifications"`
	IsActive         bool              `json:"is_active"`
}

// Validate validates car creation data
func (req *CarCreateRequest) Validate() error {
	return validateCarFields(req.Name, req.PricePerDay, req.Specifications)
}

// Validate validates car update data
func (req *CarUpdateRequest) Validate() error {
	return validateCarFields(req.Name, req.PricePerDay, req.Specifications)
}

func validateCarFields(name string, pricePerDay int, specs CarSpecifications) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name is required")
	}

	if pricePerDay < 0 {
		return errors.New("price per day cannot be negative")
	}

	if specs.Seats < 0 {
		return errors.New("seats cannot be negative")
	}

	return nil
}
