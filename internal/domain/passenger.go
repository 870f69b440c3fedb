package domain

// Passenger holds the free-text fields entered for one seat.
// Phone is optional; the other fields are required at validation time.
type Passenger struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}
