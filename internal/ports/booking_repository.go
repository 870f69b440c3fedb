package ports

import (
	"context"
	"space-booking-service/internal/domain"
)

// Port: a boundary for persisting confirmed bookings.
// The store is append-only; there are no update or delete operations.
type BookingRepository interface {
	// Append one booking record.
	SaveBooking(ctx context.Context, booking *domain.Booking) error
	// Retrieve all saved bookings, oldest first.
	ListBookings(ctx context.Context) ([]*domain.Booking, error)
}
