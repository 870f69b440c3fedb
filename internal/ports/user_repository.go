package ports

import (
	"context"
	"space-booking-service/internal/domain"
)

// Port: a boundary for retrieving the static account record used by the
// login check.
type UserRepository interface {
	// Retrieve the configured user record.
	GetUser(ctx context.Context) (*domain.User, error)
}
