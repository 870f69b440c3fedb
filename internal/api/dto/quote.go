package dto

// QuoteRequest mirrors the form selection. Insurance defaults to enabled
// when omitted (the checkbox starts checked on hazardous destinations).
type QuoteRequest struct {
	DestinationID   string `json:"destination_id"`
	AccommodationID string `json:"accommodation_id"`
	Band            string `json:"band"`
	Insurance       *bool  `json:"insurance"`
}

type QuoteResponse struct {
	Complete           bool `json:"complete"`
	TravelPrice        int  `json:"travel_price,omitempty"`
	StayPrice          int  `json:"stay_price,omitempty"`
	PerPersonPrice     int  `json:"per_person_price,omitempty"`
	PassengerCount     int  `json:"passenger_count,omitempty"`
	InsuranceSurcharge int  `json:"insurance_surcharge,omitempty"`
	TotalPrice         int  `json:"total_price,omitempty"`
}
