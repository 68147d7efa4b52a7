package repository

import "rentacar/internal/db"

// Store is implemented by both the Postgres-backed repository and the
// in-memory store used when no DATABASE_URL is configured.
type Store interface {
	// SeedCars loads the fleet reference data. Existing cars with the
	// same id are left untouched.
	SeedCars(cars []db.Car) error

	// ListCars returns the fleet in seed order.
	ListCars() ([]db.Car, error)

	// GetCar returns ErrCarNotFound when the id is unknown.
	GetCar(id int) (*db.Car, error)

	// CreateBooking assigns a new id, persists the booking and makes it
	// visible to subsequent queries. It returns ErrCarNotFound for an
	// unknown car and ErrBookingConflict when the date range overlaps an
	// existing booking for the same car. The overlap check and the
	// insert are atomic per car.
	CreateBooking(b *db.Booking) error

	// BookingsForCar returns all bookings for the given car.
	BookingsForCar(carID int) ([]db.Booking, error)

	// ListBookings returns all bookings in creation order.
	ListBookings() ([]db.Booking, error)
}
