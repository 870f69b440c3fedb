package handlers

import (
	"net/http"
	"space-booking-service/internal/api/dto"
	"space-booking-service/internal/domain"
)

// CatalogHandler exposes the read-only reference data the form is built from.
type CatalogHandler struct {
	Catalog *domain.Catalog
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	res := dto.CatalogResponse{
		Destinations:   make([]dto.DestinationResponse, 0, len(h.Catalog.Destinations)),
		Accommodations: make([]dto.AccommodationResponse, 0, len(h.Catalog.Accommodations)),
	}
	for _, d := range h.Catalog.Destinations {
		res.Destinations = append(res.Destinations, dto.DestinationResponse{
			ID:             d.ID,
			Name:           d.Name,
			Price:          d.Price,
			TravelDuration: d.TravelDuration,
			Activities:     d.Activities,
		})
	}
	for _, a := range h.Catalog.Accommodations {
		res.Accommodations = append(res.Accommodations, dto.AccommodationResponse{
			ID:          a.ID,
			Name:        a.Name,
			PricePerDay: a.PricePerDay,
			Description: a.Description,
			AvailableOn: a.AvailableOn,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
