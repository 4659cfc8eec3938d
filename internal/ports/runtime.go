package ports

import (
	"context"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

// Randomizer is the source of randomness for quote and background selection.
// Tests pass a fixed sequence to make picks reproducible.
type Randomizer interface {
	// Float64 returns a number in [0, 1).
	Float64() float64

	// IntN returns a number in [0, n). n must be positive.
	IntN(n int) int
}

// EventPublisher defines the contract for publishing domain events.
// Implementations may use websockets, message queues or event buses.
type EventPublisher interface {
	// Publish sends an event to the configured destination.
	// It must not block on slow consumers.
	Publish(ctx context.Context, event Event) error
}

// Event represents a domain event that can be published.
type Event interface {
	// EventType returns the type identifier for routing.
	EventType() string

	// Payload returns the event data for serialization.
	Payload() any
}

// RemoteQuote is a quote fetched from an external catalog.
type RemoteQuote struct {
	Text   string
	Author string
}

// QuoteSource fetches quotes from an external catalog for import.
// Returns domain.ErrUnavailable if the catalog is unreachable.
type QuoteSource interface {
	RandomQuote(ctx context.Context) (*RemoteQuote, error)
}

// QuoteMetrics records domain counters. Implementations must be safe for
// concurrent use.
type QuoteMetrics interface {
	QuoteViewed()
	QuoteReacted(kind domain.Reaction)
	QuoteSubmitted(outcome string)
	QuoteImported(outcome string)
}
