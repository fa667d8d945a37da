package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tour-booking-platform/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func hotelCreateRequest() *models.AccommodationCreateRequest {
	return &models.AccommodationCreateRequest{
		Type:     models.AccommodationHotel,
		Name:     "Kigali Serena",
		Location: "Kigali",
		Rating:   5,
	}
}

func TestCreateAccommodationUploadsImagesInOrder(t *testing.T) {
	mockRepo := &MockAccommodationRepository{}
	mockImages := &MockImageService{}
	service := NewAccommodationService(mockRepo, mockImages)

	mockImages.On("UploadImage", mock.Anything, mock.Anything, "lobby.jpg", "accommodations").
		Return(&ImageUploadResult{Key: "accommodations/lobby-1.jpg", URL: "https://cdn.example.com/lobby-1.jpg"}, nil).Once()
	mockImages.On("UploadImage", mock.Anything, mock.Anything, "pool.jpg", "accommodations").
		Return(&ImageUploadResult{Key: "accommodations/pool-2.jpg", URL: "https://cdn.example.com/pool-2.jpg"}, nil).Once()

	mockRepo.On("Create", mock.MatchedBy(func(req *models.AccommodationCreateRequest) bool {
		return len(req.Images) == 2 &&
			req.Images[0] == "https://cdn.example.com/lobby-1.jpg" &&
			req.Images[1] == "https://cdn.example.com/pool-2.jpg"
	})).Return(&models.Accommodation{ID: 1, Name: "Kigali Serena"}, nil)

	images := []ImageUpload{
		{Filename: "lobby.jpg", Reader: strings.NewReader("jpeg-1")},
		{Filename: "pool.jpg", Reader: strings.NewReader("jpeg-2")},
	}

	accommodation, err := service.CreateAccommodation(context.Background(), hotelCreateRequest(), images)
	require.NoError(t, err)
	assert.Equal(t, 1, accommodation.ID)

	mockRepo.AssertExpectations(t)
	mockImages.AssertExpectations(t)
}

func TestCreateAccommodationAbortsAndCleansUpOnUploadFailure(t *testing.T) {
	mockRepo := &MockAccommodationRepository{}
	mockImages := &MockImageService{}
	service := NewAccommodationService(mockRepo, mockImages)

	mockImages.On("UploadImage", mock.Anything, mock.Anything, "lobby.jpg", "accommodations").
		Return(&ImageUploadResult{Key: "accommodations/lobby-1.jpg", URL: "https://cdn.example.com/lobby-1.jpg"}, nil).Once()
	mockImages.On("UploadImage", mock.Anything, mock.Anything, "pool.jpg", "accommodations").
		Return(nil, errors.New("storage unavailable")).Once()
	mockImages.On("DeleteImage", mock.Anything, "accommodations/lobby-1.jpg").Return(nil).Once()

	images := []ImageUpload{
		{Filename: "lobby.jpg", Reader: strings.NewReader("jpeg-1")},
		{Filename: "pool.jpg", Reader: strings.NewReader("jpeg-2")},
	}

	_, err := service.CreateAccommodation(context.Background(), hotelCreateRequest(), images)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pool.jpg")

	// The listing is never persisted on a failed upload
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockImages.AssertExpectations(t)
}

func TestCreateAccommodationValidationFailureSkipsUploads(t *testing.T) {
	mockRepo := &MockAccommodationRepository{}
	mockImages := &MockImageService{}
	service := NewAccommodationService(mockRepo, mockImages)

	req := &models.AccommodationCreateRequest{Type: "hostel", Name: "Budget Beds"}
	images := []ImageUpload{{Filename: "room.jpg", Reader: strings.NewReader("jpeg")}}

	_, err := service.CreateAccommodation(context.Background(), req, images)
	require.Error(t, err)

	mockImages.AssertNotCalled(t, "UploadImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateAccommodationRepoFailureCleansUpImages(t *testing.T) {
	mockRepo := &MockAccommodationRepository{}
	mockImages := &MockImageService{}
	service := NewAccommodationService(mockRepo, mockImages)

	mockImages.On("UploadImage", mock.Anything, mock.Anything, "lobby.jpg", "accommodations").
		Return(&ImageUploadResult{Key: "accommodations/lobby-1.jpg", URL: "https://cdn.example.com/lobby-1.jpg"}, nil).Once()
	mockRepo.On("Create", mock.Anything).Return(nil, errors.New("connection refused"))
	mockImages.On("DeleteImage", mock.Anything, "accommodations/lobby-1.jpg").Return(nil).Once()

	images := []ImageUpload{{Filename: "lobby.jpg", Reader: strings.NewReader("jpeg-1")}}

	_, err := service.CreateAccommodation(context.Background(), hotelCreateRequest(), images)
	require.Error(t, err)
	mockImages.AssertExpectations(t)
}

func TestDeleteAccommodation(t *testing.T) {
	mockRepo := &MockAccommodationRepository{}
	service := NewAccommodationService(mockRepo, &MockImageService{})

	mockRepo.On("Delete", 7).Return(nil).Once()

	require.NoError(t, service.DeleteAccommodation(7))
	mockRepo.AssertNumberOfCalls(t, "Delete", 1)

	assert.Equal(t, models.ErrInvalidInput, service.DeleteAccommodation(0))
}
