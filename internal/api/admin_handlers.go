package api

import (
	"net/http"
	"strconv"

	"rentacar/internal/entities"
	httperrors "rentacar/internal/errors"
	"rentacar/internal/service"
)

type AdminHandler struct {
	Service *service.BookingService
}

func NewAdminHandler(svc *service.BookingService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// ListBookings returns every booking, or only those for ?car_id=N.
func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	carIDStr := r.URL.Query().Get("car_id")
	if carIDStr == "" {
		list, err := h.Service.ListBookings()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
		return
	}

	carID, err := strconv.Atoi(carIDStr)
	if err != nil {
		writeError(w, httperrors.ErrValidation("Invalid car_id."))
		return
	}
	bookings, err := h.Service.BookingsForCar(carID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.BookingsList{Total: len(bookings), Bookings: bookings})
}
