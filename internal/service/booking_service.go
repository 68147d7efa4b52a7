package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"rentacar/internal/db"
	"rentacar/internal/entities"
	httperrors "rentacar/internal/errors"
	"rentacar/internal/repository"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	msgNoAvailableCars = "No available cars found for the given dates and model."
	msgCarNotFound     = "Car not found."
	msgAlreadyBooked   = "Car already booked for the given time range."
)

type BookingService struct {
	Store         repository.Store
	notifyService *NotifyService
}

func NewBookingService(store repository.Store, notifyService *NotifyService) *BookingService {
	return &BookingService{Store: store,
		notifyService: notifyService}
}

func (s *BookingService) ListCars() ([]db.Car, error) {
	return s.Store.ListCars()
}

// CheckAvailability returns the cars with no booking overlapping the
// inclusive range [startDate, endDate], in fleet order. The optional
// carModel filters by name, case-insensitively.
func (s *BookingService) CheckAvailability(startDate, endDate, carModel string) ([]db.Car, error) {
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	cars, err := s.Store.ListCars()
	if err != nil {
		return nil, fmt.Errorf("error listing cars: %w", err)
	}

	candidates := cars
	if carModel != "" {
		candidates = nil
		for _, car := range cars {
			if strings.EqualFold(car.Name, carModel) {
				candidates = append(candidates, car)
			}
		}
		if len(candidates) == 0 {
			return nil, httperrors.ErrNotFound(msgNoAvailableCars)
		}
	}

	var available []db.Car
	for _, car := range candidates {
		bookings, err := s.Store.BookingsForCar(car.ID)
		if err != nil {
			return nil, fmt.Errorf("error loading bookings for car %d: %w", car.ID, err)
		}
		if !hasOverlap(bookings, start, end) {
			available = append(available, car)
		}
	}

	if len(available) == 0 {
		return nil, httperrors.ErrNotFound(msgNoAvailableCars)
	}
	return available, nil
}

// CreateBooking validates the request and appends the booking. Creation is
// rejected when the range overlaps an existing booking for the same car,
// so the no-overlap invariant holds for stored data.
func (s *BookingService) CreateBooking(req entities.BookingRequest) (*db.Booking, error) {
	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if _, err := time.Parse(timeLayout, req.PickupTime); err != nil {
		return nil, httperrors.ErrValidation("Invalid pickup_time, expected HH:MM.")
	}
	if _, err := time.Parse(timeLayout, req.DropoffTime); err != nil {
		return nil, httperrors.ErrValidation("Invalid dropoff_time, expected HH:MM.")
	}

	booking := &db.Booking{
		CarID:       req.CarID,
		StartDate:   start,
		EndDate:     end,
		PickupTime:  req.PickupTime,
		DropoffTime: req.DropoffTime,
	}

	if err := s.Store.CreateBooking(booking); err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return nil, httperrors.ErrNotFound(msgCarNotFound)
		}
		if errors.Is(err, repository.ErrBookingConflict) {
			return nil, httperrors.ErrConflict(msgAlreadyBooked)
		}
		log.Printf("Error creating booking in store: %v", err)
		return nil, err
	}

	if s.notifyService != nil {
		car, err := s.Store.GetCar(booking.CarID)
		if err == nil {
			s.notifyService.NotifyBookingCreated(*booking, car.Name)
		}
	}

	return booking, nil
}

func (s *BookingService) BookingsForCar(carID int) ([]db.Booking, error) {
	if _, err := s.Store.GetCar(carID); err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return nil, httperrors.ErrNotFound(msgCarNotFound)
		}
		return nil, err
	}
	return s.Store.BookingsForCar(carID)
}

func (s *BookingService) ListBookings() (*entities.BookingsList, error) {
	bookings, err := s.Store.ListBookings()
	if err != nil {
		return nil, err
	}
	return &entities.BookingsList{Total: len(bookings), Bookings: bookings}, nil
}

func parseDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, httperrors.ErrValidation("Invalid start_date, expected YYYY-MM-DD.")
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, httperrors.ErrValidation("Invalid end_date, expected YYYY-MM-DD.")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, httperrors.ErrValidation("end_date must be on or after start_date.")
	}
	return start, end, nil
}

// hasOverlap reports whether any booking's inclusive date interval
// intersects [start, end]: existing.start <= end && existing.end >= start.
func hasOverlap(bookings []db.Booking, start, end time.Time) bool {
	for _, b := range bookings {
		if !b.StartDate.After(end) && !b.EndDate.Before(start) {
			return true
		}
	}
	return false
}
