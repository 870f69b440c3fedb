package dto

type PassengerPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type ValidateRequest struct {
	DestinationID   string             `json:"destination_id"`
	AccommodationID string             `json:"accommodation_id"`
	Band            string             `json:"band"`
	DepartureDate   string             `json:"departure_date"`
	Passengers      []PassengerPayload `json:"passengers"`
}

// FieldVerdict is the tri-state display result for one field.
// State is one of "empty", "valid" or "invalid".
type FieldVerdict struct {
	State   string `json:"state"`
	Message string `json:"message,omitempty"`
}

type PassengerVerdicts struct {
	FirstName FieldVerdict `json:"first_name"`
	LastName  FieldVerdict `json:"last_name"`
	Email     FieldVerdict `json:"email"`
	Phone     FieldVerdict `json:"phone"`
}

type ValidateResponse struct {
	Passengers    []PassengerVerdicts `json:"passengers"`
	DepartureDate FieldVerdict        `json:"departure_date"`
	Ready         bool                `json:"ready"`
}
