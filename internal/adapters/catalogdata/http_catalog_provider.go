package catalogdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"space-booking-service/internal/domain"
	"space-booking-service/internal/platform/obs"
	"time"
)

// HTTPCatalogProvider implements CatalogRepository against a remote host
// serving the two static catalog documents the booking form was built on
// (destinations and accommodations JSON).
//
// The provider is read-only and safe for concurrent use. A failed fetch is
// surfaced to the caller; the catalog loader treats it as fatal and does
// not retry beyond the transient-failure backoff here.
type HTTPCatalogProvider struct {
	session *http.Client
	baseURL string
}

func NewHTTPCatalogProvider(baseURL string) (*HTTPCatalogProvider, error) {
	if baseURL == "" {
		return nil, errors.New("catalog base URL is empty")
	}

	return &HTTPCatalogProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}, nil
}

type destinationDoc struct {
	Destinations []struct {
		ID             string   `json:"id"`
		Name           string   `json:"name"`
		Price          int      `json:"price"`
		TravelDuration string   `json:"travelDuration"`
		Activities     []string `json:"activities"`
	} `json:"destinations"`
}

type accommodationDoc struct {
	Accommodations []struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		PricePerDay int      `json:"pricePerDay"`
		Description string   `json:"description"`
		AvailableOn []string `json:"availableOn"`
	} `json:"accommodations"`
}

// Fetch the destinations document.
func (p *HTTPCatalogProvider) ListDestinations(ctx context.Context) (_ []*domain.Destination, err error) {
	defer obs.Time(ctx, "catalog.http.ListDestinations")(&err)

	var doc destinationDoc
	if err := p.fetchJSON(ctx, "/data/destinations.json", &doc); err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}

	out := make([]*domain.Destination, 0, len(doc.Destinations))
	for _, d := range doc.Destinations {
		out = append(out, &domain.Destination{
			ID:             d.ID,
			Name:           d.Name,
			Price:          d.Price,
			TravelDuration: d.TravelDuration,
			Activities:     d.Activities,
		})
	}
	return out, nil
}

// Fetch the accommodations document.
func (p *HTTPCatalogProvider) ListAccommodations(ctx context.Context) (_ []*domain.Accommodation, err error) {
	defer obs.Time(ctx, "catalog.http.ListAccommodations")(&err)

	var doc accommodationDoc
	if err := p.fetchJSON(ctx, "/data/accommodations.json", &doc); err != nil {
		return nil, fmt.Errorf("list accommodations: %w", err)
	}

	out := make([]*domain.Accommodation, 0, len(doc.Accommodations))
	for _, a := range doc.Accommodations {
		out = append(out, &domain.Accommodation{
			ID:          a.ID,
			Name:        a.Name,
			PricePerDay: a.PricePerDay,
			Description: a.Description,
			AvailableOn: a.AvailableOn,
		})
	}
	return out, nil
}

func (p *HTTPCatalogProvider) fetchJSON(ctx context.Context, path string, v any) error {
	resp, err := p.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return fmt.Errorf("fetch %q: %w", path, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %q: %w", path, err)
	}

	return nil
}
