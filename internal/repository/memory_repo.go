package repository

import (
	"sort"
	"sync"
	"time"

	"rentacar/internal/db"
)

// MemoryStore keeps the fleet and bookings in process memory. It is used
// when no DATABASE_URL is configured, and in tests. The single write lock
// serializes booking creation, so the overlap check and the append are
// atomic.
type MemoryStore struct {
	mu       sync.RWMutex
	cars     []db.Car
	bookings []db.Booking
	nextID   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) SeedCars(cars []db.Car) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, car := range cars {
		if s.findCar(car.ID) == nil {
			s.cars = append(s.cars, car)
		}
	}
	sort.Slice(s.cars, func(i, j int) bool { return s.cars[i].ID < s.cars[j].ID })
	return nil
}

func (s *MemoryStore) ListCars() ([]db.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cars := make([]db.Car, len(s.cars))
	copy(cars, s.cars)
	return cars, nil
}

func (s *MemoryStore) GetCar(id int) (*db.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if car := s.findCar(id); car != nil {
		c := *car
		return &c, nil
	}
	return nil, ErrCarNotFound
}

func (s *MemoryStore) CreateBooking(b *db.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findCar(b.CarID) == nil {
		return ErrCarNotFound
	}
	for _, existing := range s.bookings {
		if existing.CarID != b.CarID {
			continue
		}
		if !existing.StartDate.After(b.EndDate) && !existing.EndDate.Before(b.StartDate) {
			return ErrBookingConflict
		}
	}

	b.ID = s.nextID
	s.nextID++
	b.CreatedAt = time.Now().UTC()
	s.bookings = append(s.bookings, *b)
	return nil
}

func (s *MemoryStore) BookingsForCar(carID int) ([]db.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var bookings []db.Booking
	for _, b := range s.bookings {
		if b.CarID == carID {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (s *MemoryStore) ListBookings() ([]db.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bookings := make([]db.Booking, len(s.bookings))
	copy(bookings, s.bookings)
	return bookings, nil
}

// findCar must be called with the lock held.
func (s *MemoryStore) findCar(id int) *db.Car {
	for i := range s.cars {
		if s.cars[i].ID == id {
			return &s.cars[i]
		}
	}
	return nil
}
