package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"tour-booking-platform/internal/models"
)

// TourRepository handles tour data operations
type TourRepository struct {
	db *sql.DB
}

// NewTourRepository creates a new tour repository
func NewTourRepository(db *sql.DB) *TourRepository {
	return &TourRepository{db: db}
}

const tourColumns = `id, title, destination, duration, price_per_person, short_description, description, main_image, category, is_active, created_at, updated_at`

func scanTour(row interface{ Scan(...any) error }) (*models.Tour, error) {
	tour := &models.Tour{}
	err := row.Scan(
		&tour.ID,
		&tour.Title,
		&tour.Destination,
		&tour.Duration,
		&tour.PricePerPerson,
		&tour.ShortDescription,
		&tour.Description,
		&tour.MainImage,
		&tour.Category,
		&tour.IsActive,
		&tour.CreatedAt,
		&tour.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return tour, nil
}

// Create creates a new tour
func (r *TourRepository) Create(req *models.TourCreateRequest) (*models.Tour, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO tours (title, destination, duration, price_per_person, short_description, description, main_image, category, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + tourColumns

	now := time.Now()
	tour, err := scanTour(r.db.QueryRow(
		query,
		req.Title,
		req.Destination,
		req.Duration,
		req.PricePerPerson,
		req.ShortDescription,
		req.Description,
		req.MainImage,
		req.Category,
		req.IsActive,
		now,
		now,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create tour: %w", err)
	}

	return tour, nil
}

// GetByID retrieves a tour by ID
func (r *TourRepository) GetByID(id int) (*models.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours WHERE id = $1`

	tour, err := scanTour(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrTourNotFound
		}
		return nil, fmt.Errorf("failed to get tour: %w", err)
	}

	return tour, nil
}

// ListActive retrieves all active tours, newest first
func (r *TourRepository) ListActive() ([]*models.Tour, error) {
	return r.list(`SELECT ` + tourColumns + ` FROM tours WHERE is_active = TRUE ORDER BY created_at DESC`)
}

// ListAll retrieves every tour for the admin back-office
func (r *TourRepository) ListAll() ([]*models.Tour, error) {
	return r.list(`SELECT ` + tourColumns + ` FROM tours ORDER BY created_at DESC`)
}

func (r *TourRepository) list(query string) ([]*models.Tour, error) {
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tours: %w", err)
	}
	defer rows.Close()

	var tours []*models.Tour
	for rows.Next() {
		tour, err := scanTour(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tour: %w", err)
		}
		tours = append(tours, tour)
	}

	return tours, rows.Err()
}

// Update updates a tour
func (r *TourRepository) Update(id int, req *models.TourUpdateRequest) (*models.Tour, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		UPDATE tours
		SET title = $2, destination = $3, duration = $4, price_per_person = $5, short_description = $6, description = $7, main_image = $8, category = $9, is_active = $10, updated_at = $11
		WHERE id = $1
		RETURNING ` + tourColumns

	tour, err := scanTour(r.db.QueryRow(
		query,
		id,
		req.Title,
		req.Destination,
		req.Duration,
		req.PricePerPerson,
		req.ShortDescription,
		req.Description,
		req.MainImage,
		req.Category,
		req.IsActive,
		time.Now(),
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrTourNotFound
		}
		return nil, fmt.Errorf("failed to update tour: %w", err)
	}

	return tour, nil
}

// Delete deletes a tour by ID
func (r *TourRepository) Delete(id int) error {
	result, err := r.db.Exec("DELETE FROM tours WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete tour: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return models.ErrTourNotFound
	}

	return nil
}
