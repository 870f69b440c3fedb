package domain

// Represents a stay option that can be paired with specific destinations.
// PricePerDay is the nightly rate in whole currency units.
// Accommodations are immutable reference data loaded once per session.
type Accommodation struct {
	ID          string
	Name        string
	PricePerDay int
	Description string
	AvailableOn []string
}

// AvailableAt reports whether the accommodation may be booked for the
// given destination.
func (a *Accommodation) AvailableAt(destinationID string) bool {
	for _, id := range a.AvailableOn {
		if id == destinationID {
			return true
		}
	}
	return false
}
