package services

import (
	"testing"

	"tour-booking-platform/internal/models"
	"tour-booking-platform/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoginSuccess(t *testing.T) {
	mockRepo := &MockAdminUserRepository{}
	service := NewAuthService(mockRepo)

	hash, err := utils.HashPassword("hunter2hunter2")
	require.NoError(t, err)

	admin := &models.AdminUser{ID: 1, Email: "admin@rwandavisittours.com", PasswordHash: hash}
	mockRepo.On("GetByEmail", "admin@rwandavisittours.com").Return(admin, nil)

	got, err := service.Login("admin@rwandavisittours.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, got.ID)
}

func TestLoginNormalizesEmail(t *testing.T) {
	mockRepo := &MockAdminUserRepository{}
	service := NewAuthService(mockRepo)

	hash, err := utils.HashPassword("hunter2hunter2")
	require.NoError(t, err)

	admin := &models.AdminUser{ID: 1, Email: "admin@rwandavisittours.com", PasswordHash: hash}
	mockRepo.On("GetByEmail", "admin@rwandavisittours.com").Return(admin, nil)

	_, err = service.Login("  Admin@RwandaVisitTours.com  ", "hunter2hunter2")
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestLoginWrongPassword(t *testing.T) {
	mockRepo := &MockAdminUserRepository{}
	service := NewAuthService(mockRepo)

	hash, err := utils.HashPassword("hunter2hunter2")
	require.NoError(t, err)

	admin := &models.AdminUser{ID: 1, Email: "admin@rwandavisittours.com", PasswordHash: hash}
	mockRepo.On("GetByEmail", "admin@rwandavisittours.com").Return(admin, nil)

	_, err = service.Login("admin@rwandavisittours.com", "wrong")
	assert.Equal(t, models.ErrUnauthorized, err)
}

func TestLoginUnknownEmail(t *testing.T) {
	mockRepo := &MockAdminUserRepository{}
	service := NewAuthService(mockRepo)

	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, models.ErrAdminUserNotFound)

	// Unknown email and wrong password are indistinguishable to the caller
	_, err := service.Login("nobody@example.com", "anything")
	assert.Equal(t, models.ErrUnauthorized, err)
}

func TestLoginEmptyCredentials(t *testing.T) {
	mockRepo := &MockAdminUserRepository{}
	service := NewAuthService(mockRepo)

	_, err := service.Login("", "password")
	assert.Equal(t, models.ErrUnauthorized, err)

	_, err = service.Login("admin@example.com", "")
	assert.Equal(t, models.ErrUnauthorized, err)

	mockRepo.AssertNotCalled(t, "GetByEmail", mock.Anything)
}
