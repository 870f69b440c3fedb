package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"space-booking-service/internal/adapters/cache"
	"space-booking-service/internal/adapters/catalogdata"
	"space-booking-service/internal/adapters/repositories"
	"space-booking-service/internal/api"
	"space-booking-service/internal/config"
	"space-booking-service/internal/ports"
	"space-booking-service/internal/services"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis, remote catalog host) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	destSeedPath := config.Get("DESTINATIONS_SEED_PATH", "data/seeds/destinations.json")
	accSeedPath := config.Get("ACCOMMODATIONS_SEED_PATH", "data/seeds/accommodations.json")
	userSeedPath := config.Get("USERS_SEED_PATH", "data/seeds/users.json")
	port := config.Get("PORT", "8080")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed reference data on startup for local runs.
	if err := initAndSeed(db, destSeedPath, accSeedPath, userSeedPath); err != nil {
		log.Fatal(err)
	}

	// The catalog normally comes from the seeded SQLite tables; CATALOG_URL
	// switches to fetching the two static JSON documents from a remote host.
	var catalogRepo ports.CatalogRepository = repositories.NewSqliteCatalogRepository(db)
	if baseURL := os.Getenv("CATALOG_URL"); baseURL != "" {
		provider, err := catalogdata.NewHTTPCatalogProvider(baseURL)
		if err != nil {
			log.Fatal(err)
		}
		catalogRepo = provider
	}

	// A catalog load failure is fatal: the form cannot initialize without
	// its reference data, and the load is not retried.
	loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	catalog, err := services.LoadCatalog(loadCtx, catalogRepo)
	cancel()
	if err != nil {
		log.Fatalf("Unable to load booking data: %v", err)
	}
	log.Printf("catalog loaded destinations=%d accommodations=%d",
		len(catalog.Destinations), len(catalog.Accommodations))

	bookingRepo := repositories.NewSqliteBookingRepository(db)
	userRepo := repositories.NewSqliteUserRepository(db)

	// Quote caching is optional; without REDIS_ADDR every quote is computed
	// fresh (the engine is pure and cheap, the cache only sheds load).
	var quoteCache ports.QuoteCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		quoteCache = cache.NewRedisQuoteCache(client, 5*time.Minute)
		log.Printf("quote cache enabled addr=%s", addr)
	}

	router := api.NewRouter(catalog, bookingRepo, userRepo, quoteCache)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, destPath, accPath, userPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedDestinationsFromJSON(db, destPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedAccommodationsFromJSON(db, accPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedUsersFromJSON(db, userPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
