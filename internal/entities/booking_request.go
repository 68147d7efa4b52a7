package entities

// BookingRequest mirrors the POST /booking/ body. Dates are "YYYY-MM-DD"
// and times "HH:MM"; parsing and validation happen in the service layer.
type BookingRequest struct {
	CarID       int    `json:"car_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	PickupTime  string `json:"pickup_time"`
	DropoffTime string `json:"dropoff_time"`
}
