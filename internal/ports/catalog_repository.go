package ports

import (
	"context"
	"space-booking-service/internal/domain"
)

// Port: a boundary for retrieving the immutable reference data the form
// is built from.
type CatalogRepository interface {
	// Retrieve all destinations on offer.
	ListDestinations(ctx context.Context) ([]*domain.Destination, error)
	// Retrieve all accommodations on offer.
	ListAccommodations(ctx context.Context) ([]*domain.Accommodation, error)
}
