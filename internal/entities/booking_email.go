package entities

type BookingEmailData struct {
	BookingID    int
	CarName      string
	StartDate    string
	EndDate      string
	PickupTime   string
	DropoffTime  string
	CreatedAtUTC string
}
