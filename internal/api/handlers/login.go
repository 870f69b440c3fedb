package handlers

import (
	"errors"
	"log"
	"net/http"
	"space-booking-service/internal/api/dto"
	"space-booking-service/internal/domain"
	"space-booking-service/internal/ports"
	"space-booking-service/internal/services"
	"time"
)

// LoginHandler checks credentials against the static user record and, on
// success, saves any booking the user drafted before logging in.
type LoginHandler struct {
	Users   ports.UserRepository
	Catalog *domain.Catalog
	Repo    ports.BookingRepository
	Now     func() time.Time
}

func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.Users.GetUser(r.Context())
	if err != nil {
		log.Printf("load user failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	result := services.CheckLogin(req.Email, req.Password, user)

	res := dto.LoginResponse{
		OK:               result.OK,
		EmailFeedback:    result.EmailFeedback,
		PasswordFeedback: result.PasswordFeedback,
	}

	if result.OK {
		res.Username = user.Username
		if req.PendingBooking != nil {
			res.PendingSaved = h.savePending(r, req.PendingBooking)
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}

// savePending tries to persist the booking drafted before login. A blocked
// or malformed submission is reported as not saved rather than failing the
// login itself.
func (h *LoginHandler) savePending(r *http.Request, pending *dto.CreateBookingRequest) bool {
	sel := domain.Selection{
		DestinationID:    pending.DestinationID,
		AccommodationID:  pending.AccommodationID,
		InsuranceEnabled: pending.Insurance == nil || *pending.Insurance,
	}
	if pending.Band != "" {
		band, err := domain.ParseBand(pending.Band)
		if err != nil {
			return false
		}
		sel.Band = band
	}

	now := time.Now()
	if h.Now != nil {
		now = h.Now()
	}

	svcReq := services.CreateBookingRequest{
		Selection:     sel,
		Passengers:    passengersFromPayload(pending.Passengers),
		DepartureDate: pending.DepartureDate,
	}

	_, err := services.CreateBooking(r.Context(), svcReq, h.Catalog, h.Repo, now)
	if errors.Is(err, services.ErrSubmissionBlocked) {
		return false
	}
	if err != nil {
		log.Printf("save pending booking failed: %v", err)
		return false
	}

	return true
}
