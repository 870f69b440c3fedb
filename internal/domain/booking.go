package domain

import "time"

// Booking is the persisted record of a confirmed submission.
// Records are append-only: no update or delete operations exist.
type Booking struct {
	ID               string
	DestinationID    string
	AccommodationID  string
	Passengers       []Passenger
	DepartureDate    string
	TotalPassengers  int
	InsuranceEnabled bool
	TotalPrice       int
	CreatedAt        time.Time
}
