package domain

// Catalog holds the reference data the booking form is built from.
// It is assembled once at startup and only read afterwards, so it is safe
// for concurrent use without locking.
type Catalog struct {
	Destinations   []*Destination
	Accommodations []*Accommodation
}

// DestinationByID returns the destination with the given id, or nil.
func (c *Catalog) DestinationByID(id string) *Destination {
	for _, d := range c.Destinations {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// AccommodationByID returns the accommodation with the given id, or nil.
func (c *Catalog) AccommodationByID(id string) *Accommodation {
	for _, a := range c.Accommodations {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// AccommodationsFor returns every accommodation available at the destination.
// An empty result means the accommodation section does not apply.
func (c *Catalog) AccommodationsFor(destinationID string) []*Accommodation {
	out := make([]*Accommodation, 0, len(c.Accommodations))
	for _, a := range c.Accommodations {
		if a.AvailableAt(destinationID) {
			out = append(out, a)
		}
	}
	return out
}
