package services

// ReadinessInput is everything the submit decision depends on. The
// aggregator holds no state of its own; callers pass what the validator
// and the current selection report.
type ReadinessInput struct {
	Fields                []FieldResult
	DestinationSelected   bool
	DepartureDateSet      bool
	BandSelected          bool
	AccommodationRequired bool
	AccommodationSelected bool
}

// SubmitReady decides whether the submit action is currently enabled.
//
// Enabled iff no field is invalid, destination, departure date and band are
// all set, and an accommodation is selected whenever the destination offers
// any.
func SubmitReady(in ReadinessInput) bool {
	for _, f := range in.Fields {
		if f.State == FieldInvalid {
			return false
		}
	}

	if !in.DestinationSelected || !in.DepartureDateSet || !in.BandSelected {
		return false
	}

	if in.AccommodationRequired && !in.AccommodationSelected {
		return false
	}

	return true
}
