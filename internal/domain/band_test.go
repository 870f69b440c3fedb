package domain

import "testing"

func TestBandCount(t *testing.T) {
	cases := []struct {
		band Band
		want int
	}{
		{BandSolo, 1},
		{BandPair, 2},
		// The range band prices at its lower bound, never the true group size.
		{BandGroup, 3},
		{"", 0},
	}

	for _, tc := range cases {
		if got := tc.band.Count(); got != tc.want {
			t.Errorf("Count(%q) = %d, want %d", tc.band, got, tc.want)
		}
	}
}

func TestParseBand(t *testing.T) {
	for _, raw := range []string{"1", "2", "3-6"} {
		band, err := ParseBand(raw)
		if err != nil {
			t.Errorf("ParseBand(%q): unexpected error: %v", raw, err)
		}
		if string(band) != raw {
			t.Errorf("ParseBand(%q) = %q", raw, band)
		}
	}

	for _, raw := range []string{"", "3", "4", "7", "3-5"} {
		if _, err := ParseBand(raw); err == nil {
			t.Errorf("ParseBand(%q) should fail", raw)
		}
	}
}
