package api

import (
	"github.com/gorilla/mux"

	"rentacar/internal/auth"
)

// NewRouter wires the public and admin endpoints. It is shared between
// cmd/server and the handler tests.
func NewRouter(bookingHandler *BookingHandler, adminHandler *AdminHandler, authHandler *AdminAuthHandler, jwtSecret string) *mux.Router {
	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/", bookingHandler.Home).Methods("GET")
	r.HandleFunc("/cars/", bookingHandler.ListCars).Methods("GET")
	r.HandleFunc("/check_car_availability", bookingHandler.CheckAvailability).Methods("GET")
	r.HandleFunc("/booking/", bookingHandler.CreateBooking).Methods("POST")

	// Admin endpoints (protected)
	r.HandleFunc("/admin/login", authHandler.Login).Methods("POST")
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware(jwtSecret))
	admin.HandleFunc("/bookings", adminHandler.ListBookings).Methods("GET")

	return r
}
