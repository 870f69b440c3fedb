package handlers

import (
	"errors"
	"log"
	"net/http"
	"space-booking-service/internal/api/dto"
	"space-booking-service/internal/domain"
	"space-booking-service/internal/ports"
	"space-booking-service/internal/services"
	"time"
)

// BookingsHandler accepts full submissions and lists the append-only
// booking records.
type BookingsHandler struct {
	Catalog *domain.Catalog
	Repo    ports.BookingRepository
	Now     func() time.Time
}

func (h *BookingsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *BookingsHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sel, ok := selectionFromRequest(w, r, req.DestinationID, req.AccommodationID, req.Band, req.Insurance)
	if !ok {
		return
	}

	now := time.Now()
	if h.Now != nil {
		now = h.Now()
	}

	svcReq := services.CreateBookingRequest{
		Selection:     sel,
		Passengers:    passengersFromPayload(req.Passengers),
		DepartureDate: req.DepartureDate,
	}

	booking, err := services.CreateBooking(r.Context(), svcReq, h.Catalog, h.Repo, now)
	if errors.Is(err, services.ErrSubmissionBlocked) {
		writeError(w, r, http.StatusUnprocessableEntity, "not all booking requirements are met")
		return
	}
	if err != nil {
		log.Printf("create booking failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, bookingResponse(booking))
}

func (h *BookingsHandler) list(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Repo.ListBookings(r.Context())
	if err != nil {
		log.Printf("list bookings failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListBookingsResponse{
		Bookings: make([]dto.BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		res.Bookings = append(res.Bookings, bookingResponse(b))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func passengersFromPayload(payload []dto.PassengerPayload) []domain.Passenger {
	passengers := make([]domain.Passenger, 0, len(payload))
	for _, p := range payload {
		passengers = append(passengers, domain.Passenger{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Email:     p.Email,
			Phone:     p.Phone,
		})
	}
	return passengers
}

func bookingResponse(b *domain.Booking) dto.BookingResponse {
	passengers := make([]dto.PassengerPayload, 0, len(b.Passengers))
	for _, p := range b.Passengers {
		passengers = append(passengers, dto.PassengerPayload{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Email:     p.Email,
			Phone:     p.Phone,
		})
	}

	return dto.BookingResponse{
		ID:               b.ID,
		DestinationID:    b.DestinationID,
		AccommodationID:  b.AccommodationID,
		Passengers:       passengers,
		DepartureDate:    b.DepartureDate,
		TotalPassengers:  b.TotalPassengers,
		InsuranceEnabled: b.InsuranceEnabled,
		TotalPrice:       b.TotalPrice,
		CreatedAt:        b.CreatedAt,
	}
}
