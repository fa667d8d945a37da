package handlers

import (
	"context"

	"tour-booking-platform/internal/models"
	"tour-booking-platform/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockPaymentService is a mock implementation of PaymentServiceInterface
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreateCheckoutSession(params *services.CheckoutSessionParams) (*services.CheckoutSession, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.CheckoutSession), args.Error(1)
}

func (m *MockPaymentService) ConstructWebhookEvent(payload []byte, sigHeader string) (*services.WebhookEvent, error) {
	args := m.Called(payload, sigHeader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.WebhookEvent), args.Error(1)
}

// MockBookingService is a mock implementation of BookingServiceInterface
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) ProcessCompletedSession(session *services.CheckoutSession) (*models.Booking, bool, error) {
	args := m.Called(session)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Booking), args.Bool(1), args.Error(2)
}

func (m *MockBookingService) GetBySessionID(sessionID string) (*models.Booking, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) ListBookings(limit, offset int) ([]*models.Booking, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Booking), args.Error(1)
}

// MockTourService is a mock implementation of TourServiceInterface
type MockTourService struct {
	mock.Mock
}

func (m *MockTourService) GetActiveTours() ([]*models.Tour, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tour), args.Error(1)
}

func (m *MockTourService) GetAllTours() ([]*models.Tour, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tour), args.Error(1)
}

func (m *MockTourService) GetTourByID(id int) (*models.Tour, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tour), args.Error(1)
}

func (m *MockTourService) CreateTour(req *models.TourCreateRequest) (*models.Tour, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tour), args.Error(1)
}

func (m *MockTourService) UpdateTour(id int, req *models.TourUpdateRequest) (*models.Tour, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tour), args.Error(1)
}

func (m *MockTourService) DeleteTour(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCarService is a mock implementation of CarServiceInterface
type MockCarService struct {
	mock.Mock
}

func (m *MockCarService) GetActiveCars() ([]*models.Car, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Car), args.Error(1)
}

func (m *MockCarService) GetAllCars() ([]*models.Car, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Car), args.Error(1)
}

func (m *MockCarService) GetCarByID(id int) (*models.Car, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}

func (m *MockCarService) CreateCar(req *models.CarCreateRequest) (*models.Car, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}

func (m *MockCarService) UpdateCar(id int, req *models.CarUpdateRequest) (*models.Car, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}

func (m *MockCarService) DeleteCar(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockAccommodationService is a mock implementation of AccommodationServiceInterface
type MockAccommodationService struct {
	mock.Mock
}

func (m *MockAccommodationService) GetAccommodations(accType models.AccommodationType) ([]*models.Accommodation, error) {
	args := m.Called(accType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Accommodation), args.Error(1)
}

func (m *MockAccommodationService) GetAccommodationByID(id int) (*models.Accommodation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Accommodation), args.Error(1)
}

func (m *MockAccommodationService) CreateAccommodation(ctx context.Context, req *models.AccommodationCreateRequest, images []services.ImageUpload) (*models.Accommodation, error) {
	args := m.Called(ctx, req, images)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Accommodation), args.Error(1)
}

func (m *MockAccommodationService) DeleteAccommodation(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockAuthService is a mock implementation of AuthServiceInterface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(email, password string) (*models.AdminUser, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}

func (m *MockAuthService) GetAdminByID(id int) (*models.AdminUser, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}
