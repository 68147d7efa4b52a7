package db

import "time"

// Car is immutable fleet reference data, seeded at startup.
type Car struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Booking covers an inclusive date range [StartDate, EndDate].
// Pickup and dropoff times are kept as "HH:MM" strings; they do not
// take part in the overlap check.
type Booking struct {
	ID          int       `json:"id"`
	CarID       int       `json:"car_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	PickupTime  string    `json:"pickup_time"`
	DropoffTime string    `json:"dropoff_time"`
	CreatedAt   time.Time `json:"created_at"`
}
