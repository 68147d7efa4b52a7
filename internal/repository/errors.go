// Package repository provides the booking stores. Sentinel errors are
// shared by both implementations so the service layer can translate
// them into HTTP responses without knowing which store is in use.
package repository

import "errors"

// ErrCarNotFound is returned when a car id does not exist in the fleet.
var ErrCarNotFound = errors.New("car not found")

// ErrBookingConflict is returned when a new booking's date range overlaps
// an existing booking for the same car.
var ErrBookingConflict = errors.New("car already booked for the given time range")
