package ports

import (
	"context"
	"space-booking-service/internal/domain"
)

// Port: an optional cache for computed quotes, keyed by canonical
// selection key. Implementations must treat misses and errors as
// recoverable; the quote engine is always the source of truth.
type QuoteCache interface {
	// Look up a cached quote. The bool reports whether the key was present.
	Get(ctx context.Context, key string) (*domain.Quote, bool, error)
	// Store a quote under the given key.
	Put(ctx context.Context, key string, quote *domain.Quote) error
}
