package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createDestinationsQuery := `
	CREATE TABLE IF NOT EXISTS destinations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		price INTEGER NOT NULL,
		travel_duration TEXT NOT NULL,
		activities TEXT NOT NULL DEFAULT '[]'
	);
	`

	createAccommodationsQuery := `
	CREATE TABLE IF NOT EXISTS accommodations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		price_per_day INTEGER NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		available_on TEXT NOT NULL DEFAULT '[]'
	);
	`

	createUsersQuery := `
	CREATE TABLE IF NOT EXISTS users (
		username TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		password TEXT NOT NULL
	);
	`

	createBookingsQuery := `
	CREATE TABLE IF NOT EXISTS bookings (
		id TEXT PRIMARY KEY,
		destination_id TEXT NOT NULL,
		accommodation_id TEXT NOT NULL,
		departure_date TEXT NOT NULL,
		total_passengers INTEGER NOT NULL,
		insurance_enabled INTEGER NOT NULL,
		total_price INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	createBookingPassengersQuery := `
	CREATE TABLE IF NOT EXISTS booking_passengers (
		booking_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (booking_id, position)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_bookings_created_at
    ON bookings(created_at);
	`

	statements := []string{
		createDestinationsQuery,
		createAccommodationsQuery,
		createUsersQuery,
		createBookingsQuery,
		createBookingPassengersQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type destinationSeed struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Price          int      `json:"price"`
	TravelDuration string   `json:"travelDuration"`
	Activities     []string `json:"activities"`
}

type destinationsDoc struct {
	Destinations []destinationSeed `json:"destinations"`
}

type accommodationSeed struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	PricePerDay int      `json:"pricePerDay"`
	Description string   `json:"description"`
	AvailableOn []string `json:"availableOn"`
}

type accommodationsDoc struct {
	Accommodations []accommodationSeed `json:"accommodations"`
}

type userSeed struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Populate the destinations table from the catalog JSON document.
func SeedDestinationsFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed destinations: read %q: %w", jsonPath, err)
	}

	var doc destinationsDoc
	if err := json.Unmarshal(bytes, &doc); err != nil {
		return fmt.Errorf("seed destinations: parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed destinations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO destinations (
		id,
		name,
		price,
		travel_duration,
		activities
	)
	VALUES (?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed destinations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, d := range doc.Destinations {
		id := strings.TrimSpace(d.ID)
		if id == "" {
			return fmt.Errorf("seed destinations: item at index %d: id cannot be empty", i+1)
		}
		if d.Price < 0 {
			return fmt.Errorf("seed destinations: invalid price for %q: %d", id, d.Price)
		}

		activities, err := json.Marshal(d.Activities)
		if err != nil {
			return fmt.Errorf("seed destinations: encode activities for %q: %w", id, err)
		}

		if _, err := stmt.Exec(id, d.Name, d.Price, d.TravelDuration, string(activities)); err != nil {
			return fmt.Errorf("seed destinations: insert id=%q: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed destinations: commit tx: %w", err)
	}

	return nil
}

// Populate the accommodations table from the catalog JSON document.
func SeedAccommodationsFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed accommodations: read %q: %w", jsonPath, err)
	}

	var doc accommodationsDoc
	if err := json.Unmarshal(bytes, &doc); err != nil {
		return fmt.Errorf("seed accommodations: parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed accommodations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO accommodations (
		id,
		name,
		price_per_day,
		description,
		available_on
	)
	VALUES (?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed accommodations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, a := range doc.Accommodations {
		id := strings.TrimSpace(a.ID)
		if id == "" {
			return fmt.Errorf("seed accommodations: item at index %d: id cannot be empty", i+1)
		}
		if a.PricePerDay < 0 {
			return fmt.Errorf("seed accommodations: invalid pricePerDay for %q: %d", id, a.PricePerDay)
		}

		availableOn, err := json.Marshal(a.AvailableOn)
		if err != nil {
			return fmt.Errorf("seed accommodations: encode availableOn for %q: %w", id, err)
		}

		if _, err := stmt.Exec(id, a.Name, a.PricePerDay, a.Description, string(availableOn)); err != nil {
			return fmt.Errorf("seed accommodations: insert id=%q: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed accommodations: commit tx: %w", err)
	}

	return nil
}

// Populate the users table from the user JSON document (a list of records;
// the login check uses the first one).
func SeedUsersFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed users: read %q: %w", jsonPath, err)
	}

	var users []userSeed
	if err := json.Unmarshal(bytes, &users); err != nil {
		return fmt.Errorf("seed users: parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed users: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO users (
		username,
		email,
		password
	)
	VALUES (?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed users: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, u := range users {
		if strings.TrimSpace(u.Email) == "" {
			return fmt.Errorf("seed users: item at index %d: email cannot be empty", i+1)
		}
		if _, err := stmt.Exec(u.Username, u.Email, u.Password); err != nil {
			return fmt.Errorf("seed users: insert %q: %w", u.Email, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed users: commit tx: %w", err)
	}

	return nil
}
