package repository

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentacar/internal/db"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func seededStore(t *testing.T) *MemoryStore {
	t.Helper()
	store := NewMemoryStore()
	err := store.SeedCars([]db.Car{
		{ID: 1, Name: "SEAT Ibiza"},
		{ID: 2, Name: "Volkswagen Polo"},
	})
	require.NoError(t, err)
	return store
}

func TestSeedCarsIsIdempotent(t *testing.T) {
	store := seededStore(t)
	err := store.SeedCars([]db.Car{{ID: 1, Name: "SEAT Ibiza"}, {ID: 3, Name: "Renault Clio"}})
	require.NoError(t, err)

	cars, err := store.ListCars()
	require.NoError(t, err)
	assert.Equal(t, []db.Car{
		{ID: 1, Name: "SEAT Ibiza"},
		{ID: 2, Name: "Volkswagen Polo"},
		{ID: 3, Name: "Renault Clio"},
	}, cars)
}

func TestGetCarUnknownID(t *testing.T) {
	store := seededStore(t)
	_, err := store.GetCar(99)
	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestCreateBookingAssignsSequentialIDs(t *testing.T) {
	store := seededStore(t)

	first := &db.Booking{CarID: 1, StartDate: date("2024-12-01"), EndDate: date("2024-12-05")}
	require.NoError(t, store.CreateBooking(first))
	second := &db.Booking{CarID: 2, StartDate: date("2024-12-01"), EndDate: date("2024-12-05")}
	require.NoError(t, store.CreateBooking(second))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestCreateBookingUnknownCar(t *testing.T) {
	store := seededStore(t)
	b := &db.Booking{CarID: 99, StartDate: date("2024-12-01"), EndDate: date("2024-12-05")}
	assert.ErrorIs(t, store.CreateBooking(b), ErrCarNotFound)

	bookings, err := store.ListBookings()
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestCreateBookingRejectsInclusiveOverlap(t *testing.T) {
	store := seededStore(t)
	require.NoError(t, store.CreateBooking(&db.Booking{
		CarID: 1, StartDate: date("2024-12-10"), EndDate: date("2024-12-20"),
	}))

	overlapping := [][2]string{
		{"2024-12-05", "2024-12-10"},
		{"2024-12-20", "2024-12-25"},
		{"2024-12-12", "2024-12-15"},
	}
	for _, dates := range overlapping {
		err := store.CreateBooking(&db.Booking{
			CarID: 1, StartDate: date(dates[0]), EndDate: date(dates[1]),
		})
		assert.ErrorIs(t, err, ErrBookingConflict, "range %v", dates)
	}

	// Adjacent but disjoint ranges are fine.
	require.NoError(t, store.CreateBooking(&db.Booking{
		CarID: 1, StartDate: date("2024-12-21"), EndDate: date("2024-12-25"),
	}))

	// The same range on another car is fine.
	require.NoError(t, store.CreateBooking(&db.Booking{
		CarID: 2, StartDate: date("2024-12-10"), EndDate: date("2024-12-20"),
	}))
}

// Concurrent creates for the same car and overlapping dates: exactly one
// may win, the rest must see the conflict.
func TestConcurrentOverlappingCreates(t *testing.T) {
	store := seededStore(t)

	const workers = 20
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = store.CreateBooking(&db.Booking{
				CarID: 1, StartDate: date("2024-12-01"), EndDate: date("2024-12-10"),
			})
		}(i)
	}
	wg.Wait()

	var created int
	for _, err := range errs {
		if err == nil {
			created++
		} else {
			assert.ErrorIs(t, err, ErrBookingConflict)
		}
	}
	assert.Equal(t, 1, created)

	bookings, err := store.BookingsForCar(1)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestBookingsForCarFiltersByCar(t *testing.T) {
	store := seededStore(t)
	require.NoError(t, store.CreateBooking(&db.Booking{CarID: 1, StartDate: date("2024-12-01"), EndDate: date("2024-12-05")}))
	require.NoError(t, store.CreateBooking(&db.Booking{CarID: 2, StartDate: date("2024-12-01"), EndDate: date("2024-12-05")}))

	bookings, err := store.BookingsForCar(2)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, 2, bookings[0].CarID)

	bookings, err = store.BookingsForCar(99)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}
