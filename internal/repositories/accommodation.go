package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"tour-booking-platform/internal/models"
)

// AccommodationRepository handles accommodation data operations
type AccommodationRepository struct {
	db *sql.DB
}

// NewAccommodationRepository creates a new accommodation repository
func NewAccommodationRepository(db *sql.DB) *AccommodationRepository {
	return &AccommodationRepository{db: db}
}

const accommodationColumns = `id, type, name, description, location, rating, images, created_at`

func scanAccommodation(row interface{ Scan(...any) error }) (*models.Accommodation, error) {
	acc := &models.Accommodation{}
	err := row.Scan(
		&acc.ID,
		&acc.Type,
		&acc.Name,
		&acc.Description,
		&acc.Location,
		&acc.Rating,
		&acc.Images,
		&acc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// Create creates a new accommodation listing
func (r *AccommodationRepository) Create(req *models.AccommodationCreateRequest) (*models.Accommodation, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO accommodations (type, name, description, location, rating, images, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + accommodationColumns

	acc, err := scanAccommodation(r.db.QueryRow(
		query,
		req.Type,
		req.Name,
		req.Description,
		req.Location,
		req.Rating,
		pq.StringArray(req.Images),
		time.Now(),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create accommodation: %w", err)
	}

	return acc, nil
}

// GetByID retrieves an accommodation by ID
func (r *AccommodationRepository) GetByID(id int) (*models.Accommodation, error) {
	query := `SELECT ` + accommodationColumns + ` FROM accommodations WHERE id = $1`

	acc, err := scanAccommodation(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrAccommodationNotFound
		}
		return nil, fmt.Errorf("failed to get accommodation: %w", err)
	}

	return acc, nil
}

// List retrieves accommodations, optionally filtered by type, newest first
func (r *AccommodationRepository) List(accType models.AccommodationType) ([]*models.Accommodation, error) {
	query := `SELECT ` + accommodationColumns + ` FROM accommodations ORDER BY created_at DESC`
	args := []any{}

	if accType != "" {
		query = `SELECT ` + accommodationColumns + ` FROM accommodations WHERE type = $1 ORDER BY created_at DESC`
		args = append(args, accType)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list accommodations: %w", err)
	}
	defer rows.Close()

	var accommodations []*models.Accommodation
	for rows.Next() {
		acc, err := scanAccommodation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan accommodation: %w", err)
		}
		accommodations = append(accommodations, acc)
	}

	return accommodations, rows.Err()
}

// Delete deletes an accommodation by ID
func (r *AccommodationRepository) Delete(id int) error {
	result, err := r.db.Exec("DELETE FROM accommodations WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete accommodation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return models.ErrAccommodationNotFound
	}

	return nil
}
