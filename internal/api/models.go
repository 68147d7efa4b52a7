package api

import "rentacar/internal/db"

// Cars
type CarsResponse struct {
	Cars []db.Car `json:"cars"`
}

// Availability
type AvailabilityResponse struct {
	AvailableCars []db.Car `json:"available_cars"`
}

// Booking
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error body shape for every endpoint.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
