package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"space-booking-service/internal/domain"
	"space-booking-service/internal/platform/obs"
	"time"
)

// SQLite-backed implementation of the BookingRepository port.
// Bookings are append-only; passengers are stored one row per seat.
type SqliteBookingRepository struct{ DB *sql.DB }

func NewSqliteBookingRepository(db *sql.DB) *SqliteBookingRepository {
	return &SqliteBookingRepository{DB: db}
}

// Append one booking and its passenger rows in a single transaction.
func (s *SqliteBookingRepository) SaveBooking(ctx context.Context, booking *domain.Booking) (err error) {
	defer obs.Time(ctx, "bookings.Save")(&err)

	if s.DB == nil {
		return errors.New("sqlite booking repository: DB is nil")
	}
	if booking == nil {
		return errors.New("save booking: booking must be non-nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save booking: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insertBookingQuery := `
	INSERT INTO bookings (
		id,
		destination_id,
		accommodation_id,
		departure_date,
		total_passengers,
		insurance_enabled,
		total_price,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	insured := 0
	if booking.InsuranceEnabled {
		insured = 1
	}

	_, err = tx.ExecContext(
		ctx,
		insertBookingQuery,
		booking.ID,
		booking.DestinationID,
		booking.AccommodationID,
		booking.DepartureDate,
		booking.TotalPassengers,
		insured,
		booking.TotalPrice,
		booking.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save booking: insert booking id=%q: %w", booking.ID, err)
	}

	insertPassengerQuery := `
	INSERT INTO booking_passengers (
		booking_id,
		position,
		first_name,
		last_name,
		email,
		phone
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.PrepareContext(ctx, insertPassengerQuery)
	if err != nil {
		return fmt.Errorf("save booking: prepare passenger insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range booking.Passengers {
		if _, err := stmt.ExecContext(ctx, booking.ID, i+1, p.FirstName, p.LastName, p.Email, p.Phone); err != nil {
			return fmt.Errorf("save booking: insert passenger #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save booking: commit tx: %w", err)
	}

	return nil
}

// Return all saved bookings with their passengers, oldest first.
func (s *SqliteBookingRepository) ListBookings(ctx context.Context) (_ []*domain.Booking, err error) {
	defer obs.Time(ctx, "bookings.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite booking repository: DB is nil")
	}

	query := `
	SELECT
		id,
		destination_id,
		accommodation_id,
		departure_date,
		total_passengers,
		insurance_enabled,
		total_price,
		created_at
	FROM bookings
	ORDER BY created_at, id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list bookings: query bookings table: %w", err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0, 16)
	for rows.Next() {
		var b domain.Booking
		var insured int
		var createdAt string
		err := rows.Scan(
			&b.ID,
			&b.DestinationID,
			&b.AccommodationID,
			&b.DepartureDate,
			&b.TotalPassengers,
			&insured,
			&b.TotalPrice,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("list bookings: scan row: %w", err)
		}

		b.InsuranceEnabled = insured != 0
		b.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("list bookings: parse created_at for %q: %w", b.ID, err)
		}

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookings: row iteration: %w", err)
	}

	for _, b := range bookings {
		if err := s.loadPassengers(ctx, b); err != nil {
			return nil, err
		}
	}

	return bookings, nil
}

func (s *SqliteBookingRepository) loadPassengers(ctx context.Context, booking *domain.Booking) error {
	query := `
	SELECT
		first_name,
		last_name,
		email,
		phone
	FROM booking_passengers
	WHERE booking_id = ?
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query, booking.ID)
	if err != nil {
		return fmt.Errorf("list bookings: query passengers for %q: %w", booking.ID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Passenger
		if err := rows.Scan(&p.FirstName, &p.LastName, &p.Email, &p.Phone); err != nil {
			return fmt.Errorf("list bookings: scan passenger row: %w", err)
		}
		booking.Passengers = append(booking.Passengers, p)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("list bookings: passenger row iteration: %w", err)
	}

	return nil
}
