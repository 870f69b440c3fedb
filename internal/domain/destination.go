package domain

import "regexp"

// Represents a travel destination offered by the agency.
// Price is the one-way base fare in whole currency units.
// TravelDuration is free text with an embedded day count (e.g. "10 days").
// Destinations are immutable reference data loaded once per session.
type Destination struct {
	ID             string
	Name           string
	Price          int
	TravelDuration string
	Activities     []string
}

var digitRun = regexp.MustCompile(`\d+`)

// DurationDays extracts the stay length from TravelDuration.
//
// The first run of digits wins: "6 months (180 days)" yields 6, not 180.
// Text without digits defaults to a single day. Downstream pricing depends
// on this literal behavior.
func (d *Destination) DurationDays() int {
	m := digitRun.FindString(d.TravelDuration)
	if m == "" {
		return 1
	}

	days := 0
	for _, c := range m {
		days = days*10 + int(c-'0')
	}
	return days
}

// Destinations requiring radiation protection insurance by default.
var hazardousDestinations = map[string]struct{}{
	"europa": {},
	"titan":  {},
}

// Hazardous reports whether the destination carries the mandatory-by-default
// insurance surcharge.
func (d *Destination) Hazardous() bool {
	_, ok := hazardousDestinations[d.ID]
	return ok
}
