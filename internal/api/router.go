package api

import (
	"net/http"
	"space-booking-service/internal/api/handlers"
	"space-booking-service/internal/domain"
	"space-booking-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	catalog *domain.Catalog,
	bookings ports.BookingRepository,
	users ports.UserRepository,
	quotes ports.QuoteCache,
) http.Handler {
	mux := http.NewServeMux()

	catalogHandler := &handlers.CatalogHandler{Catalog: catalog}
	quoteHandler := &handlers.QuoteHandler{Catalog: catalog, Quotes: quotes}
	validateHandler := &handlers.ValidateHandler{Catalog: catalog}
	bookingsHandler := &handlers.BookingsHandler{Catalog: catalog, Repo: bookings}
	loginHandler := &handlers.LoginHandler{Users: users, Catalog: catalog, Repo: bookings}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/catalog", catalogHandler.Get)
	mux.HandleFunc("/quote", quoteHandler.Quote)
	mux.HandleFunc("/validate", validateHandler.Validate)
	mux.HandleFunc("/bookings", bookingsHandler.Handle)
	mux.HandleFunc("/login", loginHandler.Login)

	return loggingMiddleware(mux)
}
