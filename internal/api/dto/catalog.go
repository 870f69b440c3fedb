package dto

type DestinationResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Price          int      `json:"price"`
	TravelDuration string   `json:"travel_duration"`
	Activities     []string `json:"activities"`
}

type AccommodationResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	PricePerDay int      `json:"price_per_day"`
	Description string   `json:"description"`
	AvailableOn []string `json:"available_on"`
}

type CatalogResponse struct {
	Destinations   []DestinationResponse   `json:"destinations"`
	Accommodations []AccommodationResponse `json:"accommodations"`
}
