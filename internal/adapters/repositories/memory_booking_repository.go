package repositories

import (
	"context"
	"space-booking-service/internal/domain"
	"sync"
)

// In-memory implementation of the BookingRepository port, used in tests
// and when the server runs without a database file.
type MemoryBookingRepository struct {
	mu       sync.Mutex
	bookings []*domain.Booking
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{}
}

func (m *MemoryBookingRepository) SaveBooking(ctx context.Context, booking *domain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings = append(m.bookings, booking)
	return nil
}

func (m *MemoryBookingRepository) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Booking, len(m.bookings))
	copy(out, m.bookings)
	return out, nil
}
