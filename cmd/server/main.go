package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"tour-booking-platform/internal/config"
	"tour-booking-platform/internal/database"
	"tour-booking-platform/internal/handlers"
	"tour-booking-platform/internal/middleware"
	"tour-booking-platform/internal/repositories"
	"tour-booking-platform/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database connection
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
	log.Println("Database connection established")

	// Run migrations
	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create session store for the admin back-office
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}

	// Initialize repositories
	tourRepo := repositories.NewTourRepository(db.DB)
	carRepo := repositories.NewCarRepository(db.DB)
	accommodationRepo := repositories.NewAccommodationRepository(db.DB)
	bookingRepo := repositories.NewBookingRepository(db.DB)
	adminRepo := repositories.NewAdminUserRepository(db.DB)

	// Initialize services
	emailService := services.NewResendEmailService(services.ResendConfig{
		APIKey:     cfg.Resend.APIKey,
		FromEmail:  cfg.Resend.FromEmail,
		FromName:   cfg.Resend.FromName,
		AdminEmail: cfg.Admin.NotifyEmail,
	})

	paymentService := services.NewStripeService(services.StripeConfig{
		SecretKey:     cfg.Stripe.SecretKey,
		WebhookSecret: cfg.Stripe.WebhookSecret,
		Currency:      cfg.Stripe.Currency,
	})

	// Storage: R2 when configured, local disk otherwise
	var storageService services.StorageServiceInterface
	if cfg.R2.AccessKeyID != "" && cfg.R2.SecretAccessKey != "" {
		r2Service, err := services.NewR2Service(cfg.R2)
		if err != nil {
			log.Printf("Failed to initialize R2 storage: %v, using local storage", err)
			storageService = services.NewLocalStorageService("./uploads", cfg.Server.BaseURL+"/uploads")
		} else {
			storageService = r2Service
			log.Println("R2 storage service initialized")
		}
	} else {
		storageService = services.NewLocalStorageService("./uploads", cfg.Server.BaseURL+"/uploads")
		log.Println("Using local storage (R2 credentials not configured)")
	}

	imageService := services.NewImageService(storageService)
	bookingService := services.NewBookingService(bookingRepo, emailService)
	tourService := services.NewTourService(tourRepo)
	carService := services.NewCarService(carRepo)
	accommodationService := services.NewAccommodationService(accommodationRepo, imageService)
	authService := services.NewAuthService(adminRepo)

	if err := emailService.TestConnection(); err != nil {
		log.Printf("Email service connection test failed: %v", err)
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authService, sessionStore)
	csrfMiddleware := middleware.NewCSRFMiddleware(sessionStore)
	loginLimiter := middleware.NewRateLimiter(10, 15*time.Minute)

	// Initialize handlers
	publicHandler := handlers.NewPublicHandler(tourService, carService, accommodationService)
	checkoutHandler := handlers.NewCheckoutHandler(paymentService, cfg.Server.BaseURL)
	webhookHandler := handlers.NewWebhookHandler(paymentService, bookingService)
	confirmationHandler := handlers.NewConfirmationHandler(bookingService)
	adminAuthHandler := handlers.NewAdminAuthHandler(authService, sessionStore)
	adminHandler := handlers.NewAdminHandler(tourService, carService, accommodationService, bookingService, sessionStore)

	// Initialize router
	r := chi.NewRouter()

	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.ErrorHandlingMiddleware)
	r.Use(middleware.SecurityHeadersMiddleware)
	r.Use(middleware.CORSMiddleware(middleware.DefaultCORSConfig(cfg.Server.BaseURL)))

	// Static files and local uploads
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static/"))))
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir("uploads/"))))

	// Marketing pages
	r.Get("/", homePage)
	r.Get("/about", aboutPage)
	r.Get("/services", servicesPage)
	r.Get("/contact", contactPage)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"ok","service":"tour-booking-platform"}`)
	})

	// Public catalog and checkout API
	r.Route("/api", func(r chi.Router) {
		r.Get("/tours", publicHandler.ListTours)
		r.Get("/tours/{id}", publicHandler.GetTour)
		r.Get("/cars", publicHandler.ListCars)
		r.Get("/cars/{id}", publicHandler.GetCar)
		r.Get("/accommodations", publicHandler.ListAccommodations)
		r.Get("/accommodations/{id}", publicHandler.GetAccommodation)
		r.Post("/checkout", checkoutHandler.CreateCheckoutSession)
	})

	// Payment processor webhook. Signature-verified, so no session or CSRF
	// middleware on this route.
	r.Post("/webhooks/stripe", webhookHandler.HandleStripeWebhook)

	// Post-payment pages
	r.Get("/booking-success", confirmationHandler.BookingSuccess)
	r.Get("/booking-cancelled", confirmationHandler.BookingCancelled)

	// Admin back-office
	r.Route("/admin", func(r chi.Router) {
		r.Use(authMiddleware.LoadAdmin)

		r.Group(func(r chi.Router) {
			r.Get("/login", adminAuthHandler.LoginPage)
			r.With(loginLimiter.Middleware).Post("/login", adminAuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAdmin)
			r.Use(csrfMiddleware.CSRFProtection)

			r.Get("/", adminHandler.Dashboard)
			r.Post("/logout", adminAuthHandler.Logout)

			r.Get("/accommodations", adminHandler.AccommodationsPage)
			r.Post("/accommodations", adminHandler.CreateAccommodation)
			r.Delete("/accommodations/{id}", adminHandler.DeleteAccommodation)

			r.Get("/bookings", adminHandler.BookingsPage)

			r.Route("/api", func(r chi.Router) {
				r.Get("/tours", adminHandler.ListTours)
				r.Post("/tours", adminHandler.CreateTour)
				r.Put("/tours/{id}", adminHandler.UpdateTour)
				r.Delete("/tours/{id}", adminHandler.DeleteTour)

				r.Get("/cars", adminHandler.ListCars)
				r.Post("/cars", adminHandler.CreateCar)
				r.Put("/cars/{id}", adminHandler.UpdateCar)
				r.Delete("/cars/{id}", adminHandler.DeleteCar)
			})
		})
	})

	// Start server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on http://%s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
