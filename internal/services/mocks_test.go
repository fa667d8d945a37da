package services

import (
	"context"
	"io"

	"tour-booking-platform/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockBookingRepository is a mock implementation of BookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(req *models.BookingCreateRequest) (*models.Booking, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetBySessionID(sessionID string) (*models.Booking, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(limit, offset int) ([]*models.Booking, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// MockEmailService is a mock implementation of EmailServiceInterface
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingNotification(booking *models.Booking) error {
	args := m.Called(booking)
	return args.Error(0)
}

func (m *MockEmailService) SendBookingConfirmation(booking *models.Booking) error {
	args := m.Called(booking)
	return args.Error(0)
}

// MockStorageService is a mock implementation of StorageServiceInterface
type MockStorageService struct {
	mock.Mock
}

func (m *MockStorageService) Upload(ctx context.Context, key string, reader io.Reader, contentType string, size int64) (string, error) {
	args := m.Called(ctx, key, reader, contentType, size)
	return args.String(0), args.Error(1)
}

func (m *MockStorageService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockStorageService) GetURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}

func (m *MockStorageService) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// MockImageService is a mock implementation of ImageServiceInterface
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) UploadImage(ctx context.Context, reader io.Reader, filename, folder string) (*ImageUploadResult, error) {
	args := m.Called(ctx, reader, filename, folder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ImageUploadResult), args.Error(1)
}

func (m *MockImageService) DeleteImage(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockAccommodationRepository is a mock implementation of AccommodationRepository
type MockAccommodationRepository struct {
	mock.Mock
}

func (m *MockAccommodationRepository) Create(req *models.AccommodationCreateRequest) (*models.Accommodation, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Accommodation), args.Error(1)
}

func (m *MockAccommodationRepository) GetByID(id int) (*models.Accommodation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Accommodation), args.Error(1)
}

func (m *MockAccommodationRepository) List(accType models.AccommodationType) ([]*models.Accommodation, error) {
	args := m.Called(accType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Accommodation), args.Error(1)
}

func (m *MockAccommodationRepository) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockAdminUserRepository is a mock implementation of AdminUserRepository
type MockAdminUserRepository struct {
	mock.Mock
}

func (m *MockAdminUserRepository) GetByEmail(email string) (*models.AdminUser, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepository) GetByID(id int) (*models.AdminUser, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepository) Create(email, passwordHash string) (*models.AdminUser, error) {
	args := m.Called(email, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}
