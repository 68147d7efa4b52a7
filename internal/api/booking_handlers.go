package api

import (
	"encoding/json"
	"net/http"

	"rentacar/internal/entities"
	httperrors "rentacar/internal/errors"
	"rentacar/internal/service"
)

type BookingHandler struct {
	Service *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func (h *BookingHandler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Welcome to rental car API!"})
}

func (h *BookingHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.Service.ListCars()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CarsResponse{Cars: cars})
}

func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	startDate := query.Get("start_date")
	endDate := query.Get("end_date")
	carModel := query.Get("car_model")

	if startDate == "" || endDate == "" {
		writeError(w, httperrors.ErrValidation("start_date and end_date are required."))
		return
	}

	available, err := h.Service.CheckAvailability(startDate, endDate, carModel)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AvailabilityResponse{AvailableCars: available})
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, httperrors.ErrValidation("Invalid request body."))
		return
	}

	if _, err := h.Service.CreateBooking(req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Booking successfully created!"})
}
