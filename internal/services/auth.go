package services

import (
	"strings"

	"tour-booking-platform/internal/models"
	"tour-booking-platform/internal/utils"
)

// AdminUserRepository defines the interface for admin account data access
type AdminUserRepository interface {
	GetByEmail(email string) (*models.AdminUser, error)
	GetByID(id int) (*models.AdminUser, error)
	Create(email, passwordHash string) (*models.AdminUser, error)
}

// AuthService handles admin authentication
type AuthService struct {
	adminRepo AdminUserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(adminRepo AdminUserRepository) *AuthService {
	return &AuthService{adminRepo: adminRepo}
}

// Login verifies admin credentials. It returns models.ErrUnauthorized for
// both an unknown email and a wrong password so the login form cannot be
// used to probe which admin accounts exist.
func (s *AuthService) Login(email, password string) (*models.AdminUser, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, models.ErrUnauthorized
	}

	admin, err := s.adminRepo.GetByEmail(email)
	if err != nil {
		if err == models.ErrAdminUserNotFound {
			return nil, models.ErrUnauthorized
		}
		return nil, err
	}

	valid, err := utils.VerifyPassword(password, admin.PasswordHash)
	if err != nil || !valid {
		return nil, models.ErrUnauthorized
	}

	return admin, nil
}

// GetAdminByID loads an admin user for an authenticated session
func (s *AuthService) GetAdminByID(id int) (*models.AdminUser, error) {
	return s.adminRepo.GetByID(id)
}
