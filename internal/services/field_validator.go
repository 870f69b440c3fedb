package services

import (
	"regexp"
	"strings"

	"space-booking-service/internal/domain"
)

// FieldState is the display state of a single text field.
type FieldState int

const (
	// FieldEmpty means the field is empty and not required (no feedback shown).
	FieldEmpty FieldState = iota
	// FieldValid means the field passed its rule.
	FieldValid
	// FieldInvalid means the field failed its rule or a required field is empty.
	FieldInvalid
)

func (s FieldState) String() string {
	switch s {
	case FieldValid:
		return "valid"
	case FieldInvalid:
		return "invalid"
	}
	return "empty"
}

// FieldResult is the verdict for one field: a tri-state plus the exact
// user-facing message. Results are independently queryable per field so the
// readiness aggregator can combine them.
type FieldResult struct {
	State   FieldState
	Message string
}

// Passenger field names as used by the form.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldPhone     = "phone"
)

var (
	// At least 3 characters drawn from letters (accented Latin included),
	// spaces, apostrophes and hyphens. Digits and other symbols fail.
	namePattern = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ\s'-]{3,}$`)
	// local-part@domain with at least one dot after the @, no whitespace.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Optional leading "+", then 10-15 digits, spaces, hyphens or parentheses.
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]{10,15}$`)
)

var requiredMessages = map[string]string{
	FieldFirstName: "First name is required",
	FieldLastName:  "Last name is required",
	FieldEmail:     "Email is required",
}

// ValidateField evaluates one passenger field independently of all others.
// The first failing rule wins; phone is the only optional field.
func ValidateField(field, value string) FieldResult {
	value = strings.TrimSpace(value)

	if value == "" {
		if msg, required := requiredMessages[field]; required {
			return FieldResult{State: FieldInvalid, Message: msg}
		}
		return FieldResult{State: FieldEmpty}
	}

	switch field {
	case FieldFirstName, FieldLastName:
		if namePattern.MatchString(value) {
			return FieldResult{State: FieldValid, Message: "Looks good"}
		}
		return FieldResult{State: FieldInvalid, Message: "Looks bad"}
	case FieldEmail:
		if emailPattern.MatchString(value) {
			return FieldResult{State: FieldValid, Message: "Valid email"}
		}
		return FieldResult{State: FieldInvalid, Message: "Invalid email format"}
	case FieldPhone:
		if phonePattern.MatchString(value) {
			return FieldResult{State: FieldValid, Message: "Looks good"}
		}
		return FieldResult{State: FieldInvalid, Message: "Invalid phone format"}
	}

	return FieldResult{State: FieldValid, Message: "Looks good"}
}

// ValidatePassenger evaluates every field of one passenger.
func ValidatePassenger(p domain.Passenger) map[string]FieldResult {
	return map[string]FieldResult{
		FieldFirstName: ValidateField(FieldFirstName, p.FirstName),
		FieldLastName:  ValidateField(FieldLastName, p.LastName),
		FieldEmail:     ValidateField(FieldEmail, p.Email),
		FieldPhone:     ValidateField(FieldPhone, p.Phone),
	}
}
