package services

import (
	"space-booking-service/internal/domain"
)

// Flat surcharge applied when insurance is enabled on a hazardous destination.
const InsuranceSurcharge = 10000

// ComputeQuote derives a price breakdown from the current selection.
//
// It is a pure function of its inputs: no clock, no randomness, no side
// effects, so it is safe to call on every input change. The second return
// value is false while the selection is incomplete — a destination, an
// accommodation available on that destination, and a passenger band must
// all be present before any price is shown. Partial state never yields a
// partial price.
func ComputeQuote(sel domain.Selection, catalog *domain.Catalog) (*domain.Quote, bool) {
	if catalog == nil {
		return nil, false
	}

	dest := catalog.DestinationByID(sel.DestinationID)
	if dest == nil {
		return nil, false
	}

	acc := catalog.AccommodationByID(sel.AccommodationID)
	if acc == nil || !acc.AvailableAt(dest.ID) {
		return nil, false
	}

	count := sel.Band.Count()
	if count == 0 {
		return nil, false
	}

	days := dest.DurationDays()

	// Round trip fare plus the stay for the embedded day count.
	travelPrice := dest.Price * 2
	stayPrice := acc.PricePerDay * days
	perPerson := travelPrice + stayPrice

	surcharge := 0
	if dest.Hazardous() && sel.InsuranceEnabled {
		surcharge = InsuranceSurcharge
	}

	return &domain.Quote{
		TravelPrice:        travelPrice,
		StayPrice:          stayPrice,
		PerPersonPrice:     perPerson,
		PassengerCount:     count,
		InsuranceSurcharge: surcharge,
		TotalPrice:         perPerson*count + surcharge,
	}, true
}
