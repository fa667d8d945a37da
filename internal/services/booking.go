package services

import (
	"fmt"
	"log"
	"strconv"

	"tour-booking-platform/internal/models"
)

// BookingRepository defines the interface for booking data access
type BookingRepository interface {
	Create(req *models.BookingCreateRequest) (*models.Booking, error)
	GetBySessionID(sessionID string) (*models.Booking, error)
	List(limit, offset int) ([]*models.Booking, error)
	Count() (int, error)
}

// BookingService records bookings from completed checkout sessions and
// sends the two notification emails (owner + customer).
type BookingService struct {
	bookingRepo  BookingRepository
	emailService EmailServiceInterface
}

// NewBookingService creates a new booking service
func NewBookingService(bookingRepo BookingRepository, emailService EmailServiceInterface) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		emailService: emailService,
	}
}

// ProcessCompletedSession persists a booking for a completed checkout
// session and, on a first-time insert, sends the notification emails.
//
// The contract is persist-first: if the insert fails the error is returned
// and no email is sent, so the processor will redeliver the event. Email
// failures are logged but never fail the call; the persisted row is the
// source of truth and notifications are advisory. The returned bool
// reports whether this call created the row (false on webhook redelivery).
func (s *BookingService) ProcessCompletedSession(session *CheckoutSession) (*models.Booking, bool, error) {
	req := bookingRequestFromSession(session)

	booking, err := s.bookingRepo.Create(req)
	if err != nil {
		if err == models.ErrDuplicateBooking {
			log.Printf("Booking for session %s already recorded, skipping notifications", session.ID)
			return booking, false, nil
		}
		return nil, false, fmt.Errorf("failed to record booking for session %s: %w", session.ID, err)
	}

	if err := s.emailService.SendBookingNotification(booking); err != nil {
		log.Printf("Failed to send admin notification for session %s: %v", session.ID, err)
	}

	if err := s.emailService.SendBookingConfirmation(booking); err != nil {
		log.Printf("Failed to send customer confirmation for session %s: %v", session.ID, err)
	}

	return booking, true, nil
}

// GetBySessionID looks up a booking by its checkout session identifier
func (s *BookingService) GetBySessionID(sessionID string) (*models.Booking, error) {
	return s.bookingRepo.GetBySessionID(sessionID)
}

// ListBookings returns bookings newest first for the admin back-office
func (s *BookingService) ListBookings(limit, offset int) ([]*models.Booking, error) {
	return s.bookingRepo.List(limit, offset)
}

// bookingRequestFromSession rebuilds the booking from session metadata and
// top-level session fields. The session is the only durable store between
// checkout creation and webhook delivery.
func bookingRequestFromSession(session *CheckoutSession) *models.BookingCreateRequest {
	meta := session.Metadata
	if meta == nil {
		meta = map[string]string{}
	}

	people, _ := strconv.Atoi(meta["people"])
	if people <= 0 {
		people = 1
	}

	return &models.BookingCreateRequest{
		StripeSessionID:     session.ID,
		Type:                models.BookingType(meta["type"]),
		ItemName:            meta["itemName"],
		CustomerName:        meta["customerName"],
		CustomerEmail:       session.CustomerEmail,
		CustomerPhone:       meta["customerPhone"],
		People:              people,
		ArrivalDate:         meta["arrivalDate"],
		Message:             meta["message"],
		AmountPaid:          session.AmountTotal,
		PaymentStatus:       session.PaymentStatus,
		StripePaymentIntent: session.PaymentIntent,
	}
}
