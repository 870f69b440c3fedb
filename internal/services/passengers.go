package services

import "space-booking-service/internal/domain"

// ReconcilePassengers resizes the passenger list to the band's resolved
// count: extra slots are dropped from the end, missing slots are appended
// empty. The passenger record count must always equal the band's count.
func ReconcilePassengers(passengers []domain.Passenger, band domain.Band) []domain.Passenger {
	target := band.Count()
	if target == 0 {
		return passengers
	}

	if len(passengers) > target {
		return passengers[:target]
	}
	for len(passengers) < target {
		passengers = append(passengers, domain.Passenger{})
	}
	return passengers
}
