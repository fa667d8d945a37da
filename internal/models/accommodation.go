package models

import (
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
)

// AccommodationType distinguishes hotels from apartments
type AccommodationType string

const (
	AccommodationHotel     AccommodationType = "hotel"
	AccommodationApartment AccommodationType = "apartment"
)

// Accommodation represents a hotel or apartment listing.
// Images holds the ordered public URLs of uploaded photos.
type Accommodation struct {
	ID          int               `json:"id" db:"id"`
	Type        AccommodationType `json:"type" db:"type"`
	Name        string            `json:"name" db:"name"`
	Description string            `json:"description" db:"description"`
	Location    string            `json:"location" db:"location"`
	Rating      int               `json:"rating,omitempty" db:"rating"` // Hotels only, 1-5
	Images      pq.StringArray    `json:"images" db:"images"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
}

// AccommodationCreateRequest represents the data needed to create a listing.
// Image URLs are appended after the uploads succeed, not supplied by the client.
type AccommodationCreateRequest struct {
	Type        AccommodationType `json:"type"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Location    string            `json:"location"`
	Rating      int               `json:"rating"`
	Images      []string          `json:"-"`
}

// Validate validates accommodation creation data
func (req *AccommodationCreateRequest) Validate() error {
	switch req.Type {
	case AccommodationHotel, AccommodationApartment:
	default:
		return errors.New("type must be hotel or apartment")
	}

	if strings.TrimSpace(req.Name) == "" {
		return errors.New("name is required")
	}

	if req.Type == AccommodationHotel {
		if req.Rating < 1 || req.Rating > 5 {
			return errors.New("hotel rating must be between 1 and 5")
		}
	} else if req.Rating != 0 {
		return errors.New("rating only applies to hotels")
	}

	return nil
}
