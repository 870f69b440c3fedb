package dto

// LoginRequest carries the typed credentials plus an optional booking
// captured before the user logged in.
type LoginRequest struct {
	Email          string                `json:"email"`
	Password       string                `json:"password"`
	PendingBooking *CreateBookingRequest `json:"pending_booking"`
}

type LoginResponse struct {
	OK               bool   `json:"ok"`
	Username         string `json:"username,omitempty"`
	EmailFeedback    string `json:"email_feedback,omitempty"`
	PasswordFeedback string `json:"password_feedback,omitempty"`
	PendingSaved     bool   `json:"pending_booking_saved,omitempty"`
}
