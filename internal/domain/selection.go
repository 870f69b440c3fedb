package domain

import "fmt"

// Selection is the current state of the booking form inputs that drive
// pricing. Zero-value string fields and an empty Band mean "not chosen yet".
// InsuranceEnabled defaults to true on hazardous destinations; it has no
// effect elsewhere.
type Selection struct {
	DestinationID    string
	AccommodationID  string
	Band             Band
	InsuranceEnabled bool
}

// Key returns a canonical cache key for the selection.
func (s Selection) Key() string {
	return fmt.Sprintf("quote:%s|%s|%s|%t", s.DestinationID, s.AccommodationID, s.Band, s.InsuranceEnabled)
}
