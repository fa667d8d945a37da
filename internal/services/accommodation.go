package services

import (
	"context"
	"fmt"
	"log"

	"tour-booking-platform/internal/models"
)

// AccommodationRepository defines the interface for accommodation data access
type AccommodationRepository interface {
	Create(req *models.AccommodationCreateRequest) (*models.Accommodation, error)
	GetByID(id int) (*models.Accommodation, error)
	List(accType models.AccommodationType) ([]*models.Accommodation, error)
	Delete(id int) error
}

// AccommodationService handles accommodation listings and their images
type AccommodationService struct {
	accommodationRepo AccommodationRepository
	imageService      ImageServiceInterface
}

// NewAccommodationService creates a new accommodation service
func NewAccommodationService(accommodationRepo AccommodationRepository, imageService ImageServiceInterface) *AccommodationService {
	return &AccommodationService{
		accommodationRepo: accommodationRepo,
		imageService:      imageService,
	}
}

// GetAccommodations returns listings, optionally filtered by type
func (s *AccommodationService) GetAccommodations(accType models.AccommodationType) ([]*models.Accommodation, error) {
	return s.accommodationRepo.List(accType)
}

// GetAccommodationByID retrieves a single listing
func (s *AccommodationService) GetAccommodationByID(id int) (*models.Accommodation, error) {
	if id <= 0 {
		return nil, models.ErrInvalidInput
	}
	return s.accommodationRepo.GetByID(id)
}

// CreateAccommodation uploads the submitted images and then persists the
// listing with the resulting public URLs. Images are uploaded one at a
// time; if any upload fails the listing is not created and the images
// already stored are removed on a best-effort basis.
func (s *AccommodationService) CreateAccommodation(ctx context.Context, req *models.AccommodationCreateRequest, images []ImageUpload) (*models.Accommodation, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var uploadedKeys []string
	for _, img := range images {
		result, err := s.imageService.UploadImage(ctx, img.Reader, img.Filename, "accommodations")
		if err != nil {
			s.cleanupImages(ctx, uploadedKeys)
			return nil, fmt.Errorf("failed to upload image %s: %w", img.Filename, err)
		}
		uploadedKeys = append(uploadedKeys, result.Key)
		req.Images = append(req.Images, result.URL)
	}

	accommodation, err := s.accommodationRepo.Create(req)
	if err != nil {
		s.cleanupImages(ctx, uploadedKeys)
		return nil, err
	}

	return accommodation, nil
}

// DeleteAccommodation removes a listing. Stored images are left in place;
// they are cheap to keep and may still be referenced by cached pages.
func (s *AccommodationService) DeleteAccommodation(id int) error {
	if id <= 0 {
		return models.ErrInvalidInput
	}
	return s.accommodationRepo.Delete(id)
}

func (s *AccommodationService) cleanupImages(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.imageService.DeleteImage(ctx, key); err != nil {
			log.Printf("Failed to clean up uploaded image %s: %v", key, err)
		}
	}
}
