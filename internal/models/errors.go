package models

import "errors"

// Common errors used throughout the application
var (
	ErrTourNotFound          = errors.New("tour not found")
	ErrCarNotFound           = errors.New("car not found")
	ErrAccommodationNotFound = errors.New("accommodation not found")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrAdminUserNotFound     = errors.New("admin user not found")
	ErrUnauthorized          = errors.New("unauthorized access")
	ErrInvalidInput          = errors.New("invalid input")
	ErrDuplicateBooking      = errors.New("booking already recorded for session")
)
