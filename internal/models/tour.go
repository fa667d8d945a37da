package models

import (
	"errors"
	"strings"
	"time"
)

// Tour represents a guided tour in the catalog
type Tour struct {
	ID               int       `json:"id" db:"id"`
	Title            string    `json:"title" db:"title"`
	Destination      string    `json:"destination" db:"destination"`
	Duration         string    `json:"duration" db:"duration"`
	PricePerPerson   int       `json:"price_per_person" db:"price_per_person"` // Amount in cents
	ShortDescription string    `json:"short_description" db:"short_description"`
	Description      string    `json:"description" db:"description"`
	MainImage        string    `json:"main_image" db:"main_image"`
	Category         string    `json:"category" db:"category"`
	IsActive         bool      `json:"is_active" db:"is_active"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// TourCreateRequest represents the data needed to create a new tour
type TourCreateRequest struct {
	Title            string `json:"title"`
	Destination      string `json:"destination"`
	Duration         string `json:"duration"`
	PricePerPerson   int    `json:"price_per_person"`
	ShortDescription string `json:"short_description"`
	Description      string `json:"description"`
	MainImage        string `json:"main_image"`
	Category         string `json:"category"`
	IsActive         bool   `json:"is_active"`
}

// TourUpdateRequest represents the data that can be updated for a tour
type TourUpdateRequest struct {
	Title            string `json:"title"`
	Destination      string `json:"destination"`
	Duration         string `json:"duration"`
	PricePerPerson   int    `json:"price_per_person"`
	ShortDescription string `json:"short_description"`
	Description      string `json:"description"`
	MainImage        string `json:"main_image"`
	Category         string `json:"category"`
	IsActive         bool   `json:"is_active"`
}

// Validate validates tour creation data
func (req *TourCreateRequest) Validate() error {
	return validateTourFields(req.Title, req.Destination, req.PricePerPerson)
}

// Validate validates tour update data
func (req *TourUpdateRequest) Validate() error {
	return validateTourFields(req.Title, req.Destination, req.PricePerPerson)
}

func validateTourFields(title, destination string, pricePerPerson int) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("title is required")
	}

	if len(title) > 255 {
		return errors.New("title cannot exceed 255 characters")
	}

	if strings.TrimSpace(destination) == "" {
		return errors.New("destination is required")
	}

	if pricePerPerson < 0 {
		return errors.New("price per person cannot be negative")
	}

	return nil
}
