package domain

// Quote is the derived price breakdown for a complete selection.
//
// A Quote is recomputed from scratch on every relevant input change and is
// never mutated incrementally. All amounts are whole currency units.
type Quote struct {
	TravelPrice        int
	StayPrice          int
	PerPersonPrice     int
	PassengerCount     int
	InsuranceSurcharge int
	TotalPrice         int
}
