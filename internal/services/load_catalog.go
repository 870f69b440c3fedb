package services

import (
	"context"
	"errors"
	"fmt"
	"space-booking-service/internal/domain"
	"space-booking-service/internal/ports"
)

// LoadCatalog assembles the immutable catalog from the repository.
//
// A failure here is fatal to session startup: the form cannot initialize
// without its reference data, so the caller surfaces one notice and stops
// rather than retrying.
func LoadCatalog(ctx context.Context, repo ports.CatalogRepository) (*domain.Catalog, error) {
	dests, err := repo.ListDestinations(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: list destinations: %w", err)
	}

	accs, err := repo.ListAccommodations(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: list accommodations: %w", err)
	}

	if len(dests) == 0 {
		return nil, errors.New("load catalog: no destinations available")
	}

	return &domain.Catalog{Destinations: dests, Accommodations: accs}, nil
}
