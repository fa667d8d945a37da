package main

import (
	"flag"
	"fmt"
	"log"

	"tour-booking-platform/internal/config"
	"tour-booking-platform/internal/database"
	"tour-booking-platform/internal/repositories"
	"tour-booking-platform/internal/utils"
)

func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("Usage: create-admin -email admin@example.com -password <password>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	adminRepo := repositories.NewAdminUserRepository(db.DB)

	passwordHash, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	// Update the password if the admin already exists
	if existing, err := adminRepo.GetByEmail(*email); err == nil {
		if _, err := db.DB.Exec("UPDATE admin_users SET password_hash = $1 WHERE id = $2", passwordHash, existing.ID); err != nil {
			log.Fatal("Failed to update admin password:", err)
		}
		fmt.Printf("Updated password for existing admin %s (ID %d)\n", *email, existing.ID)
		return
	}

	admin, err := adminRepo.Create(*email, passwordHash)
	if err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	fmt.Printf("Created admin %s (ID %d)\n", admin.Email, admin.ID)
}
