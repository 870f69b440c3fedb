package domain

import "fmt"

// Band is a discrete passenger-count selection option.
//
// The "3-6" band collapses to a priced count of 3, the lower bound of the
// range. The source form never asked for the true group size, so a band is
// priced at its representative count rather than expanded.
type Band string

const (
	BandSolo  Band = "1"
	BandPair  Band = "2"
	BandGroup Band = "3-6"
)

// ParseBand converts a raw form value into a Band.
func ParseBand(s string) (Band, error) {
	switch Band(s) {
	case BandSolo, BandPair, BandGroup:
		return Band(s), nil
	}
	return "", fmt.Errorf("parse band: unknown passenger band %q", s)
}

// Count resolves the band to the passenger count used for pricing and
// passenger-slot reconciliation.
func (b Band) Count() int {
	switch b {
	case BandSolo:
		return 1
	case BandPair:
		return 2
	case BandGroup:
		return 3
	}
	return 0
}
