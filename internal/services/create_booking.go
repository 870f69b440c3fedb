package services

import (
	"context"
	"errors"
	"fmt"
	"space-booking-service/internal/domain"
	"space-booking-service/internal/ports"
	"time"

	"github.com/google/uuid"
)

// ErrSubmissionBlocked is returned when a submission does not meet every
// requirement. The response is a single blocking verdict; individual rules
// stay queryable through the validator for callers that need detail.
var ErrSubmissionBlocked = errors.New("create booking: not all booking requirements are met")

type CreateBookingRequest struct {
	Selection     domain.Selection
	Passengers    []domain.Passenger
	DepartureDate string
}

// CreateBooking validates a full submission and appends the booking record.
//
// The quote is computed exactly once and its total reused for the saved
// record, so the displayed and persisted prices cannot diverge.
func CreateBooking(
	ctx context.Context,
	req CreateBookingRequest,
	catalog *domain.Catalog,
	repo ports.BookingRepository,
	now time.Time,
) (*domain.Booking, error) {
	if catalog == nil {
		return nil, errors.New("create booking: catalog must be non-nil")
	}

	passengers := ReconcilePassengers(req.Passengers, req.Selection.Band)

	fields := make([]FieldResult, 0, len(passengers)*4+1)
	for _, p := range passengers {
		for _, r := range ValidatePassenger(p) {
			fields = append(fields, r)
		}
	}

	dateResult := ValidateDepartureDate(req.DepartureDate, now)
	fields = append(fields, dateResult)

	ready := SubmitReady(ReadinessInput{
		Fields:                fields,
		DestinationSelected:   req.Selection.DestinationID != "",
		DepartureDateSet:      dateResult.State == FieldValid,
		BandSelected:          req.Selection.Band.Count() > 0,
		AccommodationRequired: len(catalog.AccommodationsFor(req.Selection.DestinationID)) > 0,
		AccommodationSelected: req.Selection.AccommodationID != "",
	})
	if !ready {
		return nil, ErrSubmissionBlocked
	}

	quote, ok := ComputeQuote(req.Selection, catalog)
	if !ok {
		return nil, ErrSubmissionBlocked
	}

	booking := &domain.Booking{
		ID:               uuid.NewString(),
		DestinationID:    req.Selection.DestinationID,
		AccommodationID:  req.Selection.AccommodationID,
		Passengers:       passengers,
		DepartureDate:    req.DepartureDate,
		TotalPassengers:  quote.PassengerCount,
		InsuranceEnabled: req.Selection.InsuranceEnabled,
		TotalPrice:       quote.TotalPrice,
		CreatedAt:        now.UTC(),
	}

	if err := repo.SaveBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: save: %w", err)
	}

	return booking, nil
}
