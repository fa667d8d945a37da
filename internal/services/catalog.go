package services

import (
	"fmt"

	"tour-booking-platform/internal/models"
)

// TourRepository defines the interface for tour data access
type TourRepository interface {
	Create(req *models.TourCreateRequest) (*models.Tour, error)
	GetByID(id int) (*models.Tour, error)
	ListActive() ([]*models.Tour, error)
	ListAll() ([]*models.Tour, error)
	Update(id int, req *models.TourUpdateRequest) (*models.Tour, error)
	Delete(id int) error
}

// CarRepository defines the interface for car data access
type CarRepository interface {
	Create(req *models.CarCreateRequest) (*models.Car, error)
	GetByID(id int) (*models.Car, error)
	ListActive() ([]*models.Car, error)
	ListAll() ([]*models.Car, error)
	Update(id int, req *models.CarUpdateRequest) (*models.Car, error)
	Delete(id int) error
}

// TourService handles tour catalog business logic
type TourService struct {
	tourRepo TourRepository
}

// NewTourService creates a new tour service
func NewTourService(tourRepo TourRepository) *TourService {
	return &TourService{tourRepo: tourRepo}
}

// CreateTour creates a new tour after validation
func (s *TourService) CreateTour(req *models.TourCreateRequest) (*models.Tour, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return s.tourRepo.Create(req)
}

// GetTour retrieves a tour by ID
func (s *TourService) GetTourByID(id int) (*models.Tour, error) {
	if id <= 0 {
		return nil, models.ErrInvalidInput
	}
	return s.tourRepo.GetByID(id)
}

// ListActiveTours returns the tours shown on the public site
func (s *TourService) GetActiveTours() ([]*models.Tour, error) {
	return s.tourRepo.ListActive()
}

// ListAllTours returns every tour, including inactive ones, for the admin
func (s *TourService) GetAllTours() ([]*models.Tour, error) {
	return s.tourRepo.ListAll()
}

// UpdateTour updates an existing tour
func (s *TourService) UpdateTour(id int, req *models.TourUpdateRequest) (*models.Tour, error) {
	if id <= 0 {
		return nil, models.ErrInvalidInput
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return s.tourRepo.Update(id, req)
}

// DeleteTour removes a tour
func (s *TourService) DeleteTour(id int) error {
	if id <= 0 {
		return models.ErrInvalidInput
	}
	return s.tourRepo.Delete(id)
}

// CarService handles rental car catalog business logic
type CarService struct {
	carRepo CarRepository
}

// NewCarService creates a new car service
func NewCarService(carRepo CarRepository) *CarService {
	return &CarService{carRepo: carRepo}
}

// CreateCar creates a new rental car after validation
func (s *CarService) CreateCar(req *models.CarCreateRequest) (*models.Car, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return s.carRepo.Create(req)
}

// GetCar retrieves a car by ID
func (s *CarService) GetCarByID(id int) (*models.Car, error) {
	if id <= 0 {
		return nil, models.ErrInvalidInput
	}
	return s.carRepo.GetByID(id)
}

// ListActiveCars returns the cars shown on the public site
func (s *CarService) GetActiveCars() ([]*models.Car, error) {
	return s.carRepo.ListActive()
}

// ListAllCars returns every car, including inactive ones, for the admin
func (s *CarService) GetAllCars() ([]*models.Car, error) {
	return s.carRepo.ListAll()
}

// UpdateCar updates an existing car
func (s *CarService) UpdateCar(id int, req *models.CarUpdateRequest) (*models.Car, error) {
	if id <= 0 {
		return nil, models.ErrInvalidInput
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return s.carRepo.Update(id, req)
}

// DeleteCar removes a car
func (s *CarService) DeleteCar(id int) error {
	if id <= 0 {
		return models.ErrInvalidInput
	}
	return s.carRepo.Delete(id)
}
