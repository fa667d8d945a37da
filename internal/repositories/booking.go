package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"tour-booking-platform/internal/models"
)

// BookingRepository handles booking data operations
type BookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `id, stripe_session_id, type, item_name, customer_name, customer_email, customer_phone, people, arrival_date, message, amount_paid, payment_status, stripe_payment_intent, created_at`

func scanBooking(row interface{ Scan(...any) error }) (*models.Booking, error) {
	booking := &models.Booking{}
	err := row.Scan(
		&booking.ID,
		&booking.StripeSessionID,
		&booking.Type,
		&booking.ItemName,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.People,
		&booking.ArrivalDate,
		&booking.Message,
		&booking.AmountPaid,
		&booking.PaymentStatus,
		&booking.StripePaymentIntent,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// Create inserts a booking for a completed checkout session. The insert is
// idempotent on stripe_session_id: a redelivered webhook event hits the
// unique constraint, in which case the existing row is returned together
// with models.ErrDuplicateBooking so the caller can skip notifications.
func (r *BookingRepository) Create(req *models.BookingCreateRequest) (*models.Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO bookings (stripe_session_id, type, item_name, customer_name, customer_email, customer_phone, people, arrival_date, message, amount_paid, payment_status, stripe_payment_intent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (stripe_session_id) DO NOTHING
		RETURNING ` + bookingColumns

	booking, err := scanBooking(r.db.QueryRow(
		query,
		req.StripeSessionID,
		req.Type,
		req.ItemName,
		req.CustomerName,
		req.CustomerEmail,
		req.CustomerPhone,
		req.People,
		req.ArrivalDate,
		req.Message,
		req.AmountPaid,
		req.PaymentStatus,
		req.StripePaymentIntent,
		time.Now(),
	))
	if err != nil {
		if err == sql.ErrNoRows {
			// Conflict path: the session was already recorded
			existing, getErr := r.GetBySessionID(req.StripeSessionID)
			if getErr != nil {
				return nil, fmt.Errorf("failed to load existing booking: %w", getErr)
			}
			return existing, models.ErrDuplicateBooking
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return booking, nil
}

// GetBySessionID retrieves a booking by its checkout session identifier
func (r *BookingRepository) GetBySessionID(sessionID string) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE stripe_session_id = $1`

	booking, err := scanBooking(r.db.QueryRow(query, sessionID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking by session id: %w", err)
	}

	return booking, nil
}

// List retrieves bookings newest first, for the admin back-office
func (r *BookingRepository) List(limit, offset int) ([]*models.Booking, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

// Count returns the total number of bookings
func (r *BookingRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM bookings").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}
