package services

import (
	"strings"
	"time"
)

// Wire format of the departure date field (HTML date input).
const departureDateLayout = "2006-01-02"

// ValidateDepartureDate checks the departure date against the booking
// window. The date must be present, must not be before today (time of day
// zeroed for the comparison), and must not be more than 30 days out.
// Exactly one of three messages is reported; now is injected so tests can
// pin the boundary days.
func ValidateDepartureDate(value string, now time.Time) FieldResult {
	value = strings.TrimSpace(value)
	if value == "" {
		return FieldResult{State: FieldInvalid, Message: "Please select a departure date"}
	}

	date, err := time.ParseInLocation(departureDateLayout, value, now.Location())
	if err != nil {
		return FieldResult{State: FieldInvalid, Message: "Please select a departure date"}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	max := today.AddDate(0, 0, 30)

	if date.Before(today) {
		return FieldResult{State: FieldInvalid, Message: "Date must be in the future"}
	}
	if date.After(max) {
		return FieldResult{State: FieldInvalid, Message: "Booking max 30 days in advance"}
	}

	return FieldResult{State: FieldValid}
}
