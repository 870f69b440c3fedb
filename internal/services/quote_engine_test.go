package services

import (
	"testing"

	"space-booking-service/internal/domain"
)

func testCatalog() *domain.Catalog {
	return &domain.Catalog{
		Destinations: []*domain.Destination{
			{ID: "moon", Name: "The Moon", Price: 25000, TravelDuration: "3 days"},
			{ID: "mars", Name: "Mars", Price: 50000, TravelDuration: "6 months (180 days)"},
			{ID: "europa", Name: "Europa", Price: 80000, TravelDuration: "10 days"},
			{ID: "titan", Name: "Titan", Price: 95000, TravelDuration: "about a fortnight"},
		},
		Accommodations: []*domain.Accommodation{
			{ID: "orbital-pod", Name: "Orbital Pod", PricePerDay: 200, AvailableOn: []string{"moon", "mars"}},
			{ID: "ice-dome", Name: "Ice Dome", PricePerDay: 500, AvailableOn: []string{"europa", "titan"}},
			{ID: "luxury-suite", Name: "Luxury Suite", PricePerDay: 1200, AvailableOn: []string{"moon"}},
		},
	}
}

func TestComputeQuoteMarsExample(t *testing.T) {
	cat := testCatalog()
	sel := domain.Selection{
		DestinationID:   "mars",
		AccommodationID: "orbital-pod",
		Band:            domain.BandPair,
	}

	quote, ok := ComputeQuote(sel, cat)
	if !ok {
		t.Fatal("expected a complete quote")
	}

	// First digit run in "6 months (180 days)" is 6, not 180.
	if quote.TravelPrice != 100000 {
		t.Errorf("TravelPrice = %d, want 100000", quote.TravelPrice)
	}
	if quote.StayPrice != 1200 {
		t.Errorf("StayPrice = %d, want 1200", quote.StayPrice)
	}
	if quote.PerPersonPrice != 101200 {
		t.Errorf("PerPersonPrice = %d, want 101200", quote.PerPersonPrice)
	}
	if quote.PassengerCount != 2 {
		t.Errorf("PassengerCount = %d, want 2", quote.PassengerCount)
	}
	if quote.InsuranceSurcharge != 0 {
		t.Errorf("InsuranceSurcharge = %d, want 0", quote.InsuranceSurcharge)
	}
	if quote.TotalPrice != 202400 {
		t.Errorf("TotalPrice = %d, want 202400", quote.TotalPrice)
	}
}

func TestComputeQuoteEuropaGroupWithInsurance(t *testing.T) {
	cat := testCatalog()
	sel := domain.Selection{
		DestinationID:    "europa",
		AccommodationID:  "ice-dome",
		Band:             domain.BandGroup,
		InsuranceEnabled: true,
	}

	quote, ok := ComputeQuote(sel, cat)
	if !ok {
		t.Fatal("expected a complete quote")
	}

	if quote.PassengerCount != 3 {
		t.Errorf("PassengerCount = %d, want 3 (band 3-6 prices at its lower bound)", quote.PassengerCount)
	}
	if quote.TravelPrice != 160000 {
		t.Errorf("TravelPrice = %d, want 160000", quote.TravelPrice)
	}
	if quote.StayPrice != 5000 {
		t.Errorf("StayPrice = %d, want 5000", quote.StayPrice)
	}
	if quote.PerPersonPrice != 165000 {
		t.Errorf("PerPersonPrice = %d, want 165000", quote.PerPersonPrice)
	}
	if quote.InsuranceSurcharge != 10000 {
		t.Errorf("InsuranceSurcharge = %d, want 10000", quote.InsuranceSurcharge)
	}
	if quote.TotalPrice != 505000 {
		t.Errorf("TotalPrice = %d, want 505000", quote.TotalPrice)
	}
}

func TestComputeQuoteIsPure(t *testing.T) {
	cat := testCatalog()
	sel := domain.Selection{
		DestinationID:    "europa",
		AccommodationID:  "ice-dome",
		Band:             domain.BandGroup,
		InsuranceEnabled: true,
	}

	first, ok := ComputeQuote(sel, cat)
	if !ok {
		t.Fatal("expected a complete quote")
	}
	second, ok := ComputeQuote(sel, cat)
	if !ok {
		t.Fatal("expected a complete quote on the second call")
	}

	if *first != *second {
		t.Fatalf("identical inputs produced different quotes: %+v vs %+v", first, second)
	}
}

func TestComputeQuoteTotalMonotonicInPassengerCount(t *testing.T) {
	cat := testCatalog()
	bands := []domain.Band{domain.BandSolo, domain.BandPair, domain.BandGroup}

	prev := 0
	for _, band := range bands {
		sel := domain.Selection{
			DestinationID:   "moon",
			AccommodationID: "luxury-suite",
			Band:            band,
		}
		quote, ok := ComputeQuote(sel, cat)
		if !ok {
			t.Fatalf("band %q: expected a complete quote", band)
		}
		if quote.TotalPrice < prev {
			t.Fatalf("band %q: total %d decreased below %d", band, quote.TotalPrice, prev)
		}
		prev = quote.TotalPrice
	}
}

func TestComputeQuoteInsuranceDelta(t *testing.T) {
	cat := testCatalog()

	// Hazardous destination: toggling insurance moves the total by exactly
	// the surcharge.
	on := domain.Selection{DestinationID: "europa", AccommodationID: "ice-dome", Band: domain.BandSolo, InsuranceEnabled: true}
	off := on
	off.InsuranceEnabled = false

	qOn, ok := ComputeQuote(on, cat)
	if !ok {
		t.Fatal("expected a complete quote with insurance on")
	}
	qOff, ok := ComputeQuote(off, cat)
	if !ok {
		t.Fatal("expected a complete quote with insurance off")
	}
	if diff := qOn.TotalPrice - qOff.TotalPrice; diff != InsuranceSurcharge {
		t.Fatalf("insurance delta = %d, want %d", diff, InsuranceSurcharge)
	}

	// Non-hazardous destination: the toggle has no effect.
	on = domain.Selection{DestinationID: "mars", AccommodationID: "orbital-pod", Band: domain.BandSolo, InsuranceEnabled: true}
	off = on
	off.InsuranceEnabled = false

	qOn, _ = ComputeQuote(on, cat)
	qOff, _ = ComputeQuote(off, cat)
	if qOn.TotalPrice != qOff.TotalPrice {
		t.Fatalf("insurance changed a non-hazardous total: %d vs %d", qOn.TotalPrice, qOff.TotalPrice)
	}
}

func TestComputeQuoteDurationWithoutDigitsDefaultsToOneDay(t *testing.T) {
	cat := testCatalog()
	sel := domain.Selection{
		DestinationID:   "titan",
		AccommodationID: "ice-dome",
		Band:            domain.BandSolo,
	}

	quote, ok := ComputeQuote(sel, cat)
	if !ok {
		t.Fatal("expected a complete quote")
	}

	// "about a fortnight" has no digit run, so the stay is one day.
	if quote.StayPrice != 500 {
		t.Fatalf("StayPrice = %d, want 500", quote.StayPrice)
	}
}

func TestComputeQuoteIncompleteSelections(t *testing.T) {
	cat := testCatalog()
	complete := domain.Selection{
		DestinationID:   "mars",
		AccommodationID: "orbital-pod",
		Band:            domain.BandPair,
	}

	cases := []struct {
		name   string
		mutate func(*domain.Selection)
	}{
		{"missing destination", func(s *domain.Selection) { s.DestinationID = "" }},
		{"unknown destination", func(s *domain.Selection) { s.DestinationID = "pluto" }},
		{"missing accommodation", func(s *domain.Selection) { s.AccommodationID = "" }},
		{"accommodation not available on destination", func(s *domain.Selection) { s.AccommodationID = "ice-dome" }},
		{"missing band", func(s *domain.Selection) { s.Band = "" }},
	}

	for _, tc := range cases {
		sel := complete
		tc.mutate(&sel)
		if quote, ok := ComputeQuote(sel, cat); ok {
			t.Errorf("%s: expected incomplete, got %+v", tc.name, quote)
		}
	}

	// Sanity: the base selection itself is complete.
	if _, ok := ComputeQuote(complete, cat); !ok {
		t.Fatal("base selection should produce a quote")
	}
}
