package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"space-booking-service/internal/api/dto"
	"space-booking-service/internal/domain"
)

func handlerTestCatalog() *domain.Catalog {
	return &domain.Catalog{
		Destinations: []*domain.Destination{
			{ID: "mars", Name: "Mars", Price: 50000, TravelDuration: "6 months (180 days)"},
			{ID: "europa", Name: "Europa", Price: 80000, TravelDuration: "10 days"},
			{ID: "vacuum-reef", Name: "Vacuum Reef", Price: 30000, TravelDuration: "2 days"},
		},
		Accommodations: []*domain.Accommodation{
			{ID: "orbital-pod", Name: "Orbital Pod", PricePerDay: 200, AvailableOn: []string{"mars"}},
			{ID: "ice-dome", Name: "Ice Dome", PricePerDay: 500, AvailableOn: []string{"europa"}},
		},
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestQuoteHandlerCompleteSelection(t *testing.T) {
	h := &QuoteHandler{Catalog: handlerTestCatalog()}

	rec := postJSON(t, h.Quote, "/quote", `{
		"destination_id": "mars",
		"accommodation_id": "orbital-pod",
		"band": "2",
		"insurance": false
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.QuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !res.Complete {
		t.Fatal("selection should be complete")
	}
	if res.TotalPrice != 202400 {
		t.Errorf("TotalPrice = %d, want 202400", res.TotalPrice)
	}
}

func TestQuoteHandlerIncompleteSelection(t *testing.T) {
	h := &QuoteHandler{Catalog: handlerTestCatalog()}

	rec := postJSON(t, h.Quote, "/quote", `{"destination_id": "mars"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.QuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Complete {
		t.Fatal("partial selection must not price")
	}
	if res.TotalPrice != 0 {
		t.Errorf("TotalPrice = %d, want 0", res.TotalPrice)
	}
}

func TestQuoteHandlerRejectsUnknownBand(t *testing.T) {
	h := &QuoteHandler{Catalog: handlerTestCatalog()}

	rec := postJSON(t, h.Quote, "/quote", `{
		"destination_id": "mars",
		"accommodation_id": "orbital-pod",
		"band": "7"
	}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestQuoteHandlerRejectsUnknownFields(t *testing.T) {
	h := &QuoteHandler{Catalog: handlerTestCatalog()}

	rec := postJSON(t, h.Quote, "/quote", `{"destination_id": "mars", "warp_speed": true}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestQuoteHandlerMethodNotAllowed(t *testing.T) {
	h := &QuoteHandler{Catalog: handlerTestCatalog()}

	req := httptest.NewRequest(http.MethodGet, "/quote", nil)
	rec := httptest.NewRecorder()
	h.Quote(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
