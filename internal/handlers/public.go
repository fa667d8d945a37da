package handlers

import (
	"log"
	"net/http"
	"strconv"

	"tour-booking-platform/internal/models"
	"tour-booking-platform/internal/services"

	"github.com/go-chi/chi/v5"
)

// PublicHandler serves the public catalog API consumed by the website
type PublicHandler struct {
	tourService          services.TourServiceInterface
	carService           services.CarServiceInterface
	accommodationService services.AccommodationServiceInterface
}

// NewPublicHandler creates a new public catalog handler
func NewPublicHandler(tourService services.TourServiceInterface, carService services.CarServiceInterface, accommodationService services.AccommodationServiceInterface) *PublicHandler {
	return &PublicHandler{
		tourService:          tourService,
		carService:           carService,
		accommodationService: accommodationService,
	}
}

// ListTours handles GET /api/tours
func (h *PublicHandler) ListTours(w http.ResponseWriter, r *http.Request) {
	tours, err := h.tourService.GetActiveTours()
	if err != nil {
		log.Printf("Failed to list tours: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to load tours")
		return
	}
	respondJSON(w, http.StatusOK, tours)
}

// GetTour handles GET /api/tours/{id}
func (h *PublicHandler) GetTour(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid tour ID")
		return
	}

	tour, err := h.tourService.GetTourByID(id)
	if err != nil {
		if err == models.ErrTourNotFound || err == models.ErrInvalidInput {
			respondError(w, http.StatusNotFound, "Tour not found")
			return
		}
		log.Printf("Failed to get tour %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to load tour")
		return
	}
	respondJSON(w, http.StatusOK, tour)
}

// ListCars handles GET /api/cars
func (h *PublicHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.carService.GetActiveCars()
	if err != nil {
		log.Printf("Failed to list cars: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to load cars")
		return
	}
	respondJSON(w, http.StatusOK, cars)
}

// GetCar handles GET /api/cars/{id}
func (h *PublicHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid car ID")
		return
	}

	car, err := h.carService.GetCarByID(id)
	if err != nil {
		if err == models.ErrCarNotFound || err == models.ErrInvalidInput {
			respondError(w, http.StatusNotFound, "Car not found")
			return
		}
		log.Printf("Failed to get car %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to load car")
		return
	}
	respondJSON(w, http.StatusOK, car)
}

// ListAccommodations handles GET /api/accommodations with an optional
// ?type=hotel|apartment filter
func (h *PublicHandler) ListAccommodations(w http.ResponseWriter, r *http.Request) {
	accType := models.AccommodationType(r.URL.Query().Get("type"))
	if accType != "" && accType != models.AccommodationHotel && accType != models.AccommodationApartment {
		respondError(w, http.StatusBadRequest, "Invalid accommodation type")
		return
	}

	accommodations, err := h.accommodationService.GetAccommodations(accType)
	if err != nil {
		log.Printf("Failed to list accommodations: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to load accommodations")
		return
	}
	respondJSON(w, http.StatusOK, accommodations)
}

// GetAccommodation handles GET /api/accommodations/{id}
func (h *PublicHandler) GetAccommodation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid accommodation ID")
		return
	}

	accommodation, err := h.accommodationService.GetAccommodationByID(id)
	if err != nil {
		if err == models.ErrAccommodationNotFound || err == models.ErrInvalidInput {
			respondError(w, http.StatusNotFound, "Accommodation not found")
			return
		}
		log.Printf("Failed to get accommodation %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to load accommodation")
		return
	}
	respondJSON(w, http.StatusOK, accommodation)
}
