package handlers

import (
	"log"
	"net/http"
	"space-booking-service/internal/api/dto"
	"space-booking-service/internal/domain"
	"space-booking-service/internal/ports"
	"space-booking-service/internal/services"
)

// QuoteHandler prices the current selection. The engine is pure, so the
// handler may be called on every input change; an optional cache fronts it.
type QuoteHandler struct {
	Catalog *domain.Catalog
	Quotes  ports.QuoteCache
}

func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.QuoteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sel, ok := selectionFromRequest(w, r, req.DestinationID, req.AccommodationID, req.Band, req.Insurance)
	if !ok {
		return
	}

	if h.Quotes != nil {
		cached, hit, err := h.Quotes.Get(r.Context(), sel.Key())
		if err != nil {
			// Cache failures never block a quote; the engine recomputes.
			log.Printf("quote cache get failed: key=%s err=%v", sel.Key(), err)
		}
		if hit {
			writeJSON(w, r, http.StatusOK, quoteResponse(cached))
			return
		}
	}

	quote, complete := services.ComputeQuote(sel, h.Catalog)
	if !complete {
		writeJSON(w, r, http.StatusOK, dto.QuoteResponse{Complete: false})
		return
	}

	if h.Quotes != nil {
		if err := h.Quotes.Put(r.Context(), sel.Key(), quote); err != nil {
			log.Printf("quote cache put failed: key=%s err=%v", sel.Key(), err)
		}
	}

	writeJSON(w, r, http.StatusOK, quoteResponse(quote))
}

// selectionFromRequest builds the domain selection shared by the quote and
// booking handlers. An unknown non-empty band is a client error; an empty
// band is simply an incomplete selection.
func selectionFromRequest(
	w http.ResponseWriter,
	r *http.Request,
	destinationID string,
	accommodationID string,
	band string,
	insurance *bool,
) (domain.Selection, bool) {
	sel := domain.Selection{
		DestinationID:    destinationID,
		AccommodationID:  accommodationID,
		InsuranceEnabled: insurance == nil || *insurance,
	}

	if band != "" {
		parsed, err := domain.ParseBand(band)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "band must be one of 1, 2, 3-6")
			return domain.Selection{}, false
		}
		sel.Band = parsed
	}

	return sel, true
}

func quoteResponse(q *domain.Quote) dto.QuoteResponse {
	return dto.QuoteResponse{
		Complete:           true,
		TravelPrice:        q.TravelPrice,
		StayPrice:          q.StayPrice,
		PerPersonPrice:     q.PerPersonPrice,
		PassengerCount:     q.PassengerCount,
		InsuranceSurcharge: q.InsuranceSurcharge,
		TotalPrice:         q.TotalPrice,
	}
}
