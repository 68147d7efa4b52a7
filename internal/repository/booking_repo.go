package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rentacar/internal/db"
)

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(database *sql.DB) *BookingRepository {
	return &BookingRepository{DB: database}
}

// Init creates the schema if it does not exist yet.
func (r *BookingRepository) Init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS cars (
		id   INTEGER PRIMARY KEY,
		name TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS bookings (
		id           SERIAL PRIMARY KEY,
		car_id       INTEGER NOT NULL REFERENCES cars(id),
		start_date   DATE NOT NULL,
		end_date     DATE NOT NULL,
		pickup_time  TEXT NOT NULL,
		dropoff_time TEXT NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_bookings_car_dates ON bookings (car_id, start_date, end_date);
	`
	if _, err := r.DB.Exec(schema); err != nil {
		return fmt.Errorf("error creating schema: %w", err)
	}
	return nil
}

func (r *BookingRepository) SeedCars(cars []db.Car) error {
	for _, car := range cars {
		_, err := r.DB.Exec(
			`INSERT INTO cars (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
			car.ID, car.Name,
		)
		if err != nil {
			return fmt.Errorf("error seeding car %d: %w", car.ID, err)
		}
	}
	return nil
}

func (r *BookingRepository) ListCars() ([]db.Car, error) {
	rows, err := r.DB.Query(`SELECT id, name FROM cars ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error querying cars: %w", err)
	}
	defer rows.Close()

	var cars []db.Car
	for rows.Next() {
		var c db.Car
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("error scanning car: %w", err)
		}
		cars = append(cars, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating car rows: %w", err)
	}
	return cars, nil
}

func (r *BookingRepository) GetCar(id int) (*db.Car, error) {
	var c db.Car
	err := r.DB.QueryRow(`SELECT id, name FROM cars WHERE id = $1`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCarNotFound
		}
		return nil, fmt.Errorf("error querying car %d: %w", id, err)
	}
	return &c, nil
}

// CreateBooking locks the car row so two concurrent creates for the same
// car cannot both pass the overlap check.
func (r *BookingRepository) CreateBooking(b *db.Booking) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	var carID int
	err = tx.QueryRow(`SELECT id FROM cars WHERE id = $1 FOR UPDATE`, b.CarID).Scan(&carID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCarNotFound
		}
		return fmt.Errorf("error locking car %d: %w", b.CarID, err)
	}

	var conflicts int
	err = tx.QueryRow(
		`SELECT COUNT(*) FROM bookings WHERE car_id = $1 AND start_date <= $2 AND end_date >= $3`,
		b.CarID, b.EndDate, b.StartDate,
	).Scan(&conflicts)
	if err != nil {
		return fmt.Errorf("error checking booking overlap: %w", err)
	}
	if conflicts > 0 {
		return ErrBookingConflict
	}

	b.CreatedAt = time.Now().UTC()
	err = tx.QueryRow(
		`INSERT INTO bookings (car_id, start_date, end_date, pickup_time, dropoff_time, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		b.CarID, b.StartDate, b.EndDate, b.PickupTime, b.DropoffTime, b.CreatedAt,
	).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("error inserting booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) BookingsForCar(carID int) ([]db.Booking, error) {
	return r.queryBookings(
		`SELECT id, car_id, start_date, end_date, pickup_time, dropoff_time, created_at
		 FROM bookings WHERE car_id = $1 ORDER BY id`, carID)
}

func (r *BookingRepository) ListBookings() ([]db.Booking, error) {
	return r.queryBookings(
		`SELECT id, car_id, start_date, end_date, pickup_time, dropoff_time, created_at
		 FROM bookings ORDER BY id`)
}

func (r *BookingRepository) queryBookings(query string, args ...interface{}) ([]db.Booking, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		var b db.Booking
		err := rows.Scan(&b.ID, &b.CarID, &b.StartDate, &b.EndDate, &b.PickupTime, &b.DropoffTime, &b.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating booking rows: %w", err)
	}
	return bookings, nil
}
