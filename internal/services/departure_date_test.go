package services

import (
	"testing"
	"time"
)

func TestValidateDepartureDateWindow(t *testing.T) {
	// Mid-afternoon clock: the comparison must zero the time of day.
	now := time.Date(2026, 3, 15, 15, 42, 7, 0, time.UTC)

	cases := []struct {
		name  string
		value string
		state FieldState
		msg   string
	}{
		{"today", "2026-03-15", FieldValid, ""},
		{"yesterday", "2026-03-14", FieldInvalid, "Date must be in the future"},
		{"exactly 30 days out", "2026-04-14", FieldValid, ""},
		{"exactly 31 days out", "2026-04-15", FieldInvalid, "Booking max 30 days in advance"},
		{"missing", "", FieldInvalid, "Please select a departure date"},
		{"unparseable", "not-a-date", FieldInvalid, "Please select a departure date"},
	}

	for _, tc := range cases {
		got := ValidateDepartureDate(tc.value, now)
		if got.State != tc.state {
			t.Errorf("%s: state = %v, want %v", tc.name, got.State, tc.state)
		}
		if got.Message != tc.msg {
			t.Errorf("%s: message = %q, want %q", tc.name, got.Message, tc.msg)
		}
	}
}
