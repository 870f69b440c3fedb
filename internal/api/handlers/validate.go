package handlers

import (
	"net/http"
	"space-booking-service/internal/api/dto"
	"space-booking-service/internal/domain"
	"space-booking-service/internal/services"
	"time"
)

// ValidateHandler reports per-field verdicts and overall submit readiness
// without persisting anything. The client calls it as the user edits.
type ValidateHandler struct {
	Catalog *domain.Catalog
	Now     func() time.Time
}

func (h *ValidateHandler) Validate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.ValidateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	now := time.Now()
	if h.Now != nil {
		now = h.Now()
	}

	res := dto.ValidateResponse{
		Passengers: make([]dto.PassengerVerdicts, 0, len(req.Passengers)),
	}

	fields := make([]services.FieldResult, 0, len(req.Passengers)*4+1)
	for _, p := range req.Passengers {
		results := services.ValidatePassenger(domain.Passenger{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Email:     p.Email,
			Phone:     p.Phone,
		})
		for _, fr := range results {
			fields = append(fields, fr)
		}
		res.Passengers = append(res.Passengers, dto.PassengerVerdicts{
			FirstName: verdict(results[services.FieldFirstName]),
			LastName:  verdict(results[services.FieldLastName]),
			Email:     verdict(results[services.FieldEmail]),
			Phone:     verdict(results[services.FieldPhone]),
		})
	}

	dateResult := services.ValidateDepartureDate(req.DepartureDate, now)
	res.DepartureDate = verdict(dateResult)
	fields = append(fields, dateResult)

	band, _ := domain.ParseBand(req.Band)

	res.Ready = services.SubmitReady(services.ReadinessInput{
		Fields:                fields,
		DestinationSelected:   req.DestinationID != "",
		DepartureDateSet:      dateResult.State == services.FieldValid,
		BandSelected:          band.Count() > 0,
		AccommodationRequired: len(h.Catalog.AccommodationsFor(req.DestinationID)) > 0,
		AccommodationSelected: req.AccommodationID != "",
	})

	writeJSON(w, r, http.StatusOK, res)
}

func verdict(fr services.FieldResult) dto.FieldVerdict {
	return dto.FieldVerdict{State: fr.State.String(), Message: fr.Message}
}
