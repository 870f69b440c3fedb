package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"space-booking-service/internal/domain"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A single connection keeps every statement on the same in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	return db
}

func TestSqliteBookingRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewSqliteBookingRepository(db)
	ctx := context.Background()

	created := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)
	booking := &domain.Booking{
		ID:              "b-1",
		DestinationID:   "europa",
		AccommodationID: "ice-dome",
		Passengers: []domain.Passenger{
			{FirstName: "Nova", LastName: "Vega", Email: "nova@station.io", Phone: "+1 (555) 123-4567"},
			{FirstName: "Rex", LastName: "Orion", Email: "rex@station.io"},
		},
		DepartureDate:    "2026-03-20",
		TotalPassengers:  2,
		InsuranceEnabled: true,
		TotalPrice:       340000,
		CreatedAt:        created,
	}

	if err := repo.SaveBooking(ctx, booking); err != nil {
		t.Fatalf("save booking: %v", err)
	}

	saved, err := repo.ListBookings(ctx)
	if err != nil {
		t.Fatalf("list bookings: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("got %d bookings, want 1", len(saved))
	}

	got := saved[0]
	if got.ID != booking.ID {
		t.Errorf("ID = %q, want %q", got.ID, booking.ID)
	}
	if got.TotalPrice != booking.TotalPrice {
		t.Errorf("TotalPrice = %d, want %d", got.TotalPrice, booking.TotalPrice)
	}
	if !got.InsuranceEnabled {
		t.Error("InsuranceEnabled should round-trip as true")
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created)
	}
	if len(got.Passengers) != 2 {
		t.Fatalf("got %d passengers, want 2", len(got.Passengers))
	}
	if got.Passengers[0].FirstName != "Nova" || got.Passengers[1].FirstName != "Rex" {
		t.Errorf("passenger order not preserved: %+v", got.Passengers)
	}
	if got.Passengers[1].Phone != "" {
		t.Errorf("optional phone should stay empty, got %q", got.Passengers[1].Phone)
	}
}

func TestSqliteCatalogRepositoryListsSeededRows(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.Exec(`
	INSERT INTO destinations (id, name, price, travel_duration, activities)
	VALUES ('mars', 'Mars', 50000, '6 months (180 days)', '["dune hiking"]');
	`)
	if err != nil {
		t.Fatalf("insert destination: %v", err)
	}
	_, err = db.Exec(`
	INSERT INTO accommodations (id, name, price_per_day, description, available_on)
	VALUES ('orbital-pod', 'Orbital Pod', 200, 'Compact pod', '["moon","mars"]');
	`)
	if err != nil {
		t.Fatalf("insert accommodation: %v", err)
	}

	repo := NewSqliteCatalogRepository(db)

	dests, err := repo.ListDestinations(ctx)
	if err != nil {
		t.Fatalf("list destinations: %v", err)
	}
	if len(dests) != 1 || dests[0].ID != "mars" {
		t.Fatalf("unexpected destinations: %+v", dests)
	}
	if len(dests[0].Activities) != 1 || dests[0].Activities[0] != "dune hiking" {
		t.Errorf("activities did not decode: %+v", dests[0].Activities)
	}

	accs, err := repo.ListAccommodations(ctx)
	if err != nil {
		t.Fatalf("list accommodations: %v", err)
	}
	if len(accs) != 1 || !accs[0].AvailableAt("mars") {
		t.Fatalf("unexpected accommodations: %+v", accs)
	}
}

func TestSqliteUserRepositoryReturnsSeededUser(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.Exec(`
	INSERT INTO users (username, email, password)
	VALUES ('Adnane', 'adnane@orbitra.space', 'gravity-well');
	`)
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}

	repo := NewSqliteUserRepository(db)
	user, err := repo.GetUser(ctx)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if user.Email != "adnane@orbitra.space" {
		t.Errorf("email = %q, want adnane@orbitra.space", user.Email)
	}
}
