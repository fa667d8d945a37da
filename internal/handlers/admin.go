package handlers

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"tour-booking-platform/internal/middleware"
	"tour-booking-platform/internal/models"
	"tour-booking-platform/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
)

// maxAccommodationUpload bounds the multipart form size for the
// accommodation create form (fields plus images)
const maxAccommodationUpload = 32 << 20 // 32 MB

// AdminHandler serves the admin back-office
type AdminHandler struct {
	tourService          services.TourServiceInterface
	carService           services.CarServiceInterface
	accommodationService services.AccommodationServiceInterface
	bookingService       services.BookingServiceInterface
	store                sessions.Store
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	tourService services.TourServiceInterface,
	carService services.CarServiceInterface,
	accommodationService services.AccommodationServiceInterface,
	bookingService services.BookingServiceInterface,
	store sessions.Store,
) *AdminHandler {
	return &AdminHandler{
		tourService:          tourService,
		carService:           carService,
		accommodationService: accommodationService,
		bookingService:       bookingService,
		store:                store,
	}
}

// Dashboard handles GET /admin
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	admin := middleware.GetAdminFromContext(r.Context())

	data := struct {
		Email     string
		CSRFToken string
	}{
		Email:     admin.Email,
		CSRFToken: middleware.GetCSRFToken(r, w, h.store),
	}

	renderAdminPage(w, dashboardTemplate, data)
}

// --- Tours ---

// ListTours handles GET /admin/api/tours, including inactive tours
func (h *AdminHandler) ListTours(w http.ResponseWriter, r *http.Request) {
	tours, err := h.tourService.GetAllTours()
	if err != nil {
		log.Printf("Admin: failed to list tours: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to load tours")
		return
	}
	respondJSON(w, http.StatusOK, tours)
}

// CreateTour handles POST /admin/api/tours
func (h *AdminHandler) CreateTour(w http.ResponseWriter, r *http.Request) {
	var req models.TourCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tour, err := h.tourService.CreateTour(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, tour)
}

// UpdateTour handles PUT /admin/api/tours/{id}
func (h *AdminHandler) UpdateTour(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid tour ID")
		return
	}

	var req models.TourUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tour, err := h.tourService.UpdateTour(id, &req)
	if err != nil {
		if err == models.ErrTourNotFound {
			respondError(w, http.StatusNotFound, "Tour not found")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, tour)
}

// DeleteTour handles DELETE /admin/api/tours/{id}
func (h *AdminHandler) DeleteTour(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid tour ID")
		return
	}

	if err := h.tourService.DeleteTour(id); err != nil {
		if err == models.ErrTourNotFound {
			respondError(w, http.StatusNotFound, "Tour not found")
			return
		}
		log.Printf("Admin: failed to delete tour %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to delete tour")
		return
	}
	w.WriteHeader(http.StatusOK)
}

// --- Cars ---

// ListCars handles GET /admin/api/cars, including inactive cars
func (h *AdminHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.carService.GetAllCars()
	if err != nil {
		log.Printf("Admin: failed to list cars: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to load cars")
		return
	}
	respondJSON(w, http.StatusOK, cars)
}

// CreateCar handles POST /admin/api/cars
func (h *AdminHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var req models.CarCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	car, err := h.carService.CreateCar(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, car)
}

// UpdateCar handles PUT /admin/api/cars/{id}
func (h *AdminHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid car ID")
		return
	}

	var req models.CarUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	car, err := h.carService.UpdateCar(id, &req)
	if err != nil {
		if err == models.ErrCarNotFound {
			respondError(w, http.StatusNotFound, "Car not found")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, car)
}

// DeleteCar handles DELETE /admin/api/cars/{id}
func (h *AdminHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid car ID")
		return
	}

	if err := h.carService.DeleteCar(id); err != nil {
		if err == models.ErrCarNotFound {
			respondError(w, http.StatusNotFound, "Car not found")
			return
		}
		log.Printf("Admin: failed to delete car %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to delete car")
		return
	}
	w.WriteHeader(http.StatusOK)
}

// --- Accommodations ---

// AccommodationsPage handles GET /admin/accommodations
func (h *AdminHandler) AccommodationsPage(w http.ResponseWriter, r *http.Request) {
	accommodations, err := h.accommodationService.GetAccommodations("")
	if err != nil {
		log.Printf("Admin: failed to list accommodations: %v", err)
		http.Error(w, "Failed to load accommodations", http.StatusInternalServerError)
		return
	}

	data := struct {
		Accommodations []*models.Accommodation
		CSRFToken      string
		Error          string
	}{
		Accommodations: accommodations,
		CSRFToken:      middleware.GetCSRFToken(r, w, h.store),
		Error:          r.URL.Query().Get("error"),
	}

	renderAdminPage(w, accommodationsTemplate, data)
}

// CreateAccommodation handles POST /admin/accommodations. The form is
// multipart: text fields plus any number of ordered image files under the
// "images" key.
func (h *AdminHandler) CreateAccommodation(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAccommodationUpload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	rating := 0
	if v := r.FormValue("rating"); v != "" {
		rating, _ = strconv.Atoi(v)
	}

	req := &models.AccommodationCreateRequest{
		Type:        models.AccommodationType(r.FormValue("type")),
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Location:    r.FormValue("location"),
		Rating:      rating,
	}

	var images []services.ImageUpload
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["images"] {
			file, err := header.Open()
			if err != nil {
				respondError(w, http.StatusBadRequest, "Failed to read uploaded image")
				return
			}
			defer file.Close()
			images = append(images, services.ImageUpload{
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Reader:      file,
			})
		}
	}

	accommodation, err := h.accommodationService.CreateAccommodation(r.Context(), req, images)
	if err != nil {
		log.Printf("Admin: failed to create accommodation: %v", err)
		if middleware.IsHTMXRequest(r) || wantsJSON(r) {
			respondError(w, http.StatusBadRequest, "Failed to create accommodation")
			return
		}
		http.Redirect(w, r, "/admin/accommodations?error=Failed+to+create+accommodation", http.StatusSeeOther)
		return
	}

	if wantsJSON(r) {
		respondJSON(w, http.StatusCreated, accommodation)
		return
	}
	http.Redirect(w, r, "/admin/accommodations", http.StatusSeeOther)
}

// DeleteAccommodation handles DELETE /admin/accommodations/{id}. A 200
// with an empty body lets the HTMX-driven table remove the row in place.
func (h *AdminHandler) DeleteAccommodation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid accommodation ID")
		return
	}

	if err := h.accommodationService.DeleteAccommodation(id); err != nil {
		if err == models.ErrAccommodationNotFound {
			respondError(w, http.StatusNotFound, "Accommodation not found")
			return
		}
		log.Printf("Admin: failed to delete accommodation %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to delete accommodation")
		return
	}
	w.WriteHeader(http.StatusOK)
}

// --- Bookings ---

// BookingsPage handles GET /admin/bookings, newest bookings first
func (h *AdminHandler) BookingsPage(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	const perPage = 50

	bookings, err := h.bookingService.ListBookings(perPage, (page-1)*perPage)
	if err != nil {
		log.Printf("Admin: failed to list bookings: %v", err)
		http.Error(w, "Failed to load bookings", http.StatusInternalServerError)
		return
	}

	data := struct {
		Bookings []*models.Booking
		Page     int
		NextPage int
		PrevPage int
		HasNext  bool
	}{
		Bookings: bookings,
		Page:     page,
		NextPage: page + 1,
		PrevPage: page - 1,
		HasNext:  len(bookings) == perPage,
	}

	renderAdminPage(w, bookingsTemplate, data)
}

func renderAdminPage(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		log.Printf("Failed to render admin page %s: %v", tmpl.Name(), err)
	}
}
