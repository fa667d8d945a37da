package services

import (
	"context"
	"io"

	"tour-booking-platform/internal/models"
)

// PaymentServiceInterface defines the interface for the payment processor
type PaymentServiceInterface interface {
	CreateCheckoutSession(params *CheckoutSessionParams) (*CheckoutSession, error)
	ConstructWebhookEvent(payload []byte, sigHeader string) (*WebhookEvent, error)
}

// EmailServiceInterface defines the interface for transactional email
type EmailServiceInterface interface {
	SendBookingNotification(booking *models.Booking) error
	SendBookingConfirmation(booking *models.Booking) error
}

// StorageServiceInterface defines the interface for object storage operations
type StorageServiceInterface interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string, size int64) (string, error)
	Delete(ctx context.Context, key string) error
	GetURL(key string) string
	Exists(ctx context.Context, key string) (bool, error)
}

// ImageServiceInterface defines the interface for image processing and upload
type ImageServiceInterface interface {
	UploadImage(ctx context.Context, reader io.Reader, filename, folder string) (*ImageUploadResult, error)
	DeleteImage(ctx context.Context, key string) error
}

// BookingServiceInterface defines the interface for booking persistence and
// notification
type BookingServiceInterface interface {
	ProcessCompletedSession(session *CheckoutSession) (*models.Booking, bool, error)
	GetBySessionID(sessionID string) (*models.Booking, error)
	ListBookings(limit, offset int) ([]*models.Booking, error)
}

// TourServiceInterface defines the interface for tour catalog operations
type TourServiceInterface interface {
	GetActiveTours() ([]*models.Tour, error)
	GetAllTours() ([]*models.Tour, error)
	GetTourByID(id int) (*models.Tour, error)
	CreateTour(req *models.TourCreateRequest) (*models.Tour, error)
	UpdateTour(id int, req *models.TourUpdateRequest) (*models.Tour, error)
	DeleteTour(id int) error
}

// CarServiceInterface defines the interface for car catalog operations
type CarServiceInterface interface {
	GetActiveCars() ([]*models.Car, error)
	GetAllCars() ([]*models.Car, error)
	GetCarByID(id int) (*models.Car, error)
	CreateCar(req *models.CarCreateRequest) (*models.Car, error)
	UpdateCar(id int, req *models.CarUpdateRequest) (*models.Car, error)
	DeleteCar(id int) error
}

// AccommodationServiceInterface defines the interface for accommodation
// listings, including the image upload path
type AccommodationServiceInterface interface {
	GetAccommodations(accType models.AccommodationType) ([]*models.Accommodation, error)
	GetAccommodationByID(id int) (*models.Accommodation, error)
	CreateAccommodation(ctx context.Context, req *models.AccommodationCreateRequest, images []ImageUpload) (*models.Accommodation, error)
	DeleteAccommodation(id int) error
}

// AuthServiceInterface defines the interface for admin authentication
type AuthServiceInterface interface {
	Login(email, password string) (*models.AdminUser, error)
	GetAdminByID(id int) (*models.AdminUser, error)
}

// ImageUpload is one file selected in the admin accommodation form
type ImageUpload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// ImageUploadResult describes a stored image
type ImageUploadResult struct {
	Key    string `json:"key"`
	URL    string `json:"url"`
	Size   int64  `json:"size"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
