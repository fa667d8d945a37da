package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"tour-booking-platform/internal/models"
)

// CarRepository handles car data operations
type CarRepository struct {
	db *sql.DB
}

// NewCarRepository creates a new car repository
func NewCarRepository(db *sql.DB) *CarRepository {
	return &CarRepository{db: db}
}

const carColumns = `id, name, price_per_day, short_description, main_image, seats, transmission, fuel, drive, is_active, created_at, updated_at`

func scanCar(row interface{ Scan(...any) error }) (*models.Car, error) {
	car := &models.Car{}
	err := row.Scan(
		&car.ID,
		&car.Name,
		&car.PricePerDay,
		&car.ShortDescription,
		&car.MainImage,
		&car.Specifications.Seats,
		&car.Specifications.Transmission,
		&car.Specifications.Fuel,
		&car.Specifications.Drive,
		&car.IsActive,
		&car.CreatedAt,
		&car.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return car, nil
}

// Create creates a new car
func (r *CarRepository) Create(req *models.CarCreateRequest) (*models.Car, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO cars (name, price_per_day, short_description, main_image, seats, transmission, fuel, drive, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + carColumns

	now := time.Now()
	car, err := scanCar(r.db.QueryRow(
		query,
		req.Name,
		req.PricePerDay,
		req.ShortDescription,
		req.MainImage,
		req.Specifications.Seats,
		req.Specifications.Transmission,
		req.Specifications.Fuel,
		req.Specifications.Drive,
		req.IsActive,
		now,
		now,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create car: %w", err)
	}

	return car, nil
}

// GetByID retrieves a car by ID
func (r *CarRepository) GetByID(id int) (*models.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1`

	car, err := scanCar(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrCarNotFound
		}
		return nil, fmt.Errorf("failed to get car: %w", err)
	}

	return car, nil
}

// ListActive retrieves all active cars, newest first
func (r *CarRepository) ListActive() ([]*models.Car, error) {
	return r.list(`SELECT ` + carColumns + ` FROM cars WHERE is_active = TRUE ORDER BY created_at DESC`)
}

// ListAll retrieves every car for the admin back-office
func (r *CarRepository) ListAll() ([]*models.Car, error) {
	return r.list(`SELECT ` + carColumns + ` FROM cars ORDER BY created_at DESC`)
}

func (r *CarRepository) list(query string) ([]*models.Car, error) {
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	defer rows.Close()

	var cars []*models.Car
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan car: %w", err)
		}
		cars = append(cars, car)
	}

	return cars, rows.Err()
}

// Update updates a car
func (r *CarRepository) Update(id int, req *models.CarUpdateRequest) (*models.Car, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		UPDATE cars
		SET name = $2, price_per_day = $3, short_description = $4, main_image = $5, seats = $6, transmission = $7, fuel = $8, drive = $9, is_active = $10, updated_at = $11
		WHERE id = $1
		RETURNING ` + carColumns

	car, err := scanCar(r.db.QueryRow(
		query,
		id,
		req.Name,
		req.PricePerDay,
		req.ShortDescription,
		req.MainImage,
		req.Specifications.Seats,
		req.Specifications.Transmission,
		req.Specifications.Fuel,
		req.Specifications.Drive,
		req.IsActive,
		time.Now(),
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrCarNotFound
		}
		return nil, fmt.Errorf("failed to update car: %w", err)
	}

	return car, nil
}

// Delete deletes a car by ID
func (r *CarRepository) Delete(id int) error {
	result, err := r.db.Exec("DELETE FROM cars WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete car: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return models.ErrCarNotFound
	}

	return nil
}
