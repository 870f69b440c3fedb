package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"space-booking-service/internal/domain"
)

// SQLite-backed implementation of the CatalogRepository port.
type SqliteCatalogRepository struct{ DB *sql.DB }

func NewSqliteCatalogRepository(db *sql.DB) *SqliteCatalogRepository {
	return &SqliteCatalogRepository{DB: db}
}

// Return all destinations stored in the database.
func (s *SqliteCatalogRepository) ListDestinations(ctx context.Context) ([]*domain.Destination, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite catalog repository: DB is nil")
	}

	query := `
	SELECT
		id,
		name,
		price,
		travel_duration,
		activities
	FROM destinations
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list destinations: query destinations table: %w", err)
	}
	defer rows.Close()

	destinations := make([]*domain.Destination, 0, 16)
	for rows.Next() {
		var d domain.Destination
		var activities string
		if err := rows.Scan(&d.ID, &d.Name, &d.Price, &d.TravelDuration, &activities); err != nil {
			return nil, fmt.Errorf("list destinations: scan row: %w", err)
		}
		if err := json.Unmarshal([]byte(activities), &d.Activities); err != nil {
			return nil, fmt.Errorf("list destinations: decode activities for %q: %w", d.ID, err)
		}
		destinations = append(destinations, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list destinations: row iteration: %w", err)
	}

	return destinations, nil
}

// Return all accommodations stored in the database.
func (s *SqliteCatalogRepository) ListAccommodations(ctx context.Context) ([]*domain.Accommodation, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite catalog repository: DB is nil")
	}

	query := `
	SELECT
		id,
		name,
		price_per_day,
		description,
		available_on
	FROM accommodations
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list accommodations: query accommodations table: %w", err)
	}
	defer rows.Close()

	accommodations := make([]*domain.Accommodation, 0, 16)
	for rows.Next() {
		var a domain.Accommodation
		var availableOn string
		if err := rows.Scan(&a.ID, &a.Name, &a.PricePerDay, &a.Description, &availableOn); err != nil {
			return nil, fmt.Errorf("list accommodations: scan row: %w", err)
		}
		if err := json.Unmarshal([]byte(availableOn), &a.AvailableOn); err != nil {
			return nil, fmt.Errorf("list accommodations: decode availableOn for %q: %w", a.ID, err)
		}
		accommodations = append(accommodations, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list accommodations: row iteration: %w", err)
	}

	return accommodations, nil
}
