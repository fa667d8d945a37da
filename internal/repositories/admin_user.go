package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"tour-booking-platform/internal/models"
)

// AdminUserRepository handles back-office account data operations
type AdminUserRepository struct {
	db *sql.DB
}

// NewAdminUserRepository creates a new admin user repository
func NewAdminUserRepository(db *sql.DB) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

// GetByEmail retrieves an admin user by email (case-insensitive)
func (r *AdminUserRepository) GetByEmail(email string) (*models.AdminUser, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM admin_users
		WHERE LOWER(email) = LOWER($1)`

	user := &models.AdminUser{}
	err := r.db.QueryRow(query, strings.TrimSpace(email)).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrAdminUserNotFound
		}
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}

	return user, nil
}

// GetByID retrieves an admin user by ID
func (r *AdminUserRepository) GetByID(id int) (*models.AdminUser, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM admin_users
		WHERE id = $1`

	user := &models.AdminUser{}
	err := r.db.QueryRow(query, id).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrAdminUserNotFound
		}
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}

	return user, nil
}

// Create creates a new admin user with an already-hashed password
func (r *AdminUserRepository) Create(email, passwordHash string) (*models.AdminUser, error) {
	query := `
		INSERT INTO admin_users (email, password_hash, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, email, password_hash, created_at`

	user := &models.AdminUser{}
	err := r.db.QueryRow(query, strings.ToLower(strings.TrimSpace(email)), passwordHash, time.Now()).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	return user, nil
}
