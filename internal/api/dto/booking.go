package dto

import "time"

type CreateBookingRequest struct {
	DestinationID   string             `json:"destination_id"`
	AccommodationID string             `json:"accommodation_id"`
	Band            string             `json:"band"`
	Insurance       *bool              `json:"insurance"`
	DepartureDate   string             `json:"departure_date"`
	Passengers      []PassengerPayload `json:"passengers"`
}

type BookingResponse struct {
	ID               string             `json:"id"`
	DestinationID    string             `json:"destination_id"`
	AccommodationID  string             `json:"accommodation_id"`
	Passengers       []PassengerPayload `json:"passengers"`
	DepartureDate    string             `json:"departure_date"`
	TotalPassengers  int                `json:"total_passengers"`
	InsuranceEnabled bool               `json:"insurance_enabled"`
	TotalPrice       int                `json:"total_price"`
	CreatedAt        time.Time          `json:"created_at"`
}

type ListBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}
