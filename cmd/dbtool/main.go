package main

import (
	"database/sql"
	"log"
	"os"
	"space-booking-service/internal/adapters/repositories"
	"space-booking-service/internal/config"
	"space-booking-service/internal/platform/db"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbtool initializes the schema and seeds catalog reference data into a
// shared Postgres database instead of the local SQLite file.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	destSeedPath := config.Get("DESTINATIONS_SEED_PATH", "data/seeds/destinations.json")
	accSeedPath := config.Get("ACCOMMODATIONS_SEED_PATH", "data/seeds/accommodations.json")
	userSeedPath := config.Get("USERS_SEED_PATH", "data/seeds/users.json")

	if err := initAndSeed(db, destSeedPath, accSeedPath, userSeedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(db *sql.DB, destPath, accPath, userPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedDestinationsFromJSON(db, destPath); err != nil {
		log.Fatalf("seeding destinations failed: %v", err)
	}
	if err := repositories.SeedAccommodationsFromJSON(db, accPath); err != nil {
		log.Fatalf("seeding accommodations failed: %v", err)
	}
	if err := repositories.SeedUsersFromJSON(db, userPath); err != nil {
		log.Fatalf("seeding users failed: %v", err)
	}
	log.Println("Seeding complete.")

	return nil
}
