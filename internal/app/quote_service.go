// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

// maxPickAttempts bounds how often RandomQuote redraws when the picked quote
// is deactivated between listing and counting the view.
const maxPickAttempts = 3

// QuoteService orchestrates the public quote use cases: the weighted pick,
// reactions, the leaderboard and capacity-checked creation.
// It depends on port interfaces, not concrete implementations.
type QuoteService struct {
	store   ports.Store
	random  ports.Randomizer
	events  ports.EventPublisher
	metrics ports.QuoteMetrics
	logger  *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Store  ports.Store
	Random ports.Randomizer

	// Events receives a ReactionEvent after every stored reaction. Optional.
	Events ports.EventPublisher

	// Metrics is optional.
	Metrics ports.QuoteMetrics
	Logger  *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
// It panics when no store is given.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Store == nil {
		panic("app: QuoteService requires a store")
	}

	if cfg.Random == nil {
		cfg.Random = NewRandomizer()
	}

	if cfg.Events == nil {
		cfg.Events = discardEvents{}
	}

	if cfg.Metrics == nil {
		cfg.Metrics = discardMetrics{}
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &QuoteService{
		store:   cfg.Store,
		random:  cfg.Random,
		events:  cfg.Events,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
	}
}

// RandomQuote draws an active quote with probability proportional to its
// weight and counts one view on it. The returned quote carries the new view
// count. It returns nil without error when there is nothing to show.
func (s *QuoteService) RandomQuote(ctx context.Context) (*domain.Quote, error) {
	for attempt := 1; ; attempt++ {
		candidates, err := s.store.Quotes().ListActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing active quotes: %w", err)
		}

		if len(candidates) == 0 {
			return nil, nil
		}

		picked := domain.PickWeighted(candidates, s.random.Float64())
		if picked == nil {
			return nil, nil
		}

		quote, err := s.store.Quotes().Increment(ctx, picked.ID, domain.CounterViews)
		if err == nil {
			s.metrics.QuoteViewed()
			return quote, nil
		}

		if !domain.IsNotFound(err) || attempt == maxPickAttempts {
			return nil, fmt.Errorf("counting view: %w", err)
		}

		s.logger.DebugContext(ctx, "picked quote disappeared, drawing again",
			slog.String("quote_id", picked.ID.String()),
			slog.Int("attempt", attempt),
		)
	}
}

// HomePage holds what the landing page renders.
type HomePage struct {
	// Quote is nil when the catalog is empty.
	Quote       *domain.Quote
	SourceTypes []*domain.SourceType
}

// Home loads the random quote and the submission form choices concurrently.
func (s *QuoteService) Home(ctx context.Context) (*HomePage, error) {
	quote, types, err := loadBoth(ctx,
		s.RandomQuote,
		s.store.SourceTypes().ListActive,
	)
	if err != nil {
		return nil, fmt.Errorf("loading home page: %w", err)
	}

	return &HomePage{Quote: quote, SourceTypes: types}, nil
}

// GetQuote returns one active quote.
func (s *QuoteService) GetQuote(ctx context.Context, id uuid.UUID) (*domain.Quote, error) {
	return s.store.Quotes().GetActive(ctx, id)
}

// TopQuotes returns the leaderboard: the most liked active quotes, newer
// first on ties.
func (s *QuoteService) TopQuotes(ctx context.Context) ([]*domain.Quote, error) {
	quotes, err := s.store.Quotes().Top(ctx, domain.TopQuotesLimit)
	if err != nil {
		return nil, fmt.Errorf("loading top quotes: %w", err)
	}

	return quotes, nil
}

// ListSourceTypes returns the active source types offered by the forms.
func (s *QuoteService) ListSourceTypes(ctx context.Context) ([]*domain.SourceType, error) {
	return s.store.SourceTypes().ListActive(ctx)
}

// React records a like or dislike from user and returns the quote with its
// updated counters. The live feed is notified after the update is stored;
// a failed publish is logged and does not fail the reaction.
func (s *QuoteService) React(
	ctx context.Context,
	user *domain.User,
	id uuid.UUID,
	kind domain.Reaction,
) (*domain.Quote, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}

	if !kind.Valid() {
		return nil, domain.NewValidationError("kind", fmt.Sprintf("unknown reaction %q", kind))
	}

	quote, err := s.store.Quotes().Increment(ctx, id, kind.Counter())
	if err != nil {
		return nil, err
	}

	s.metrics.QuoteReacted(kind)

	s.logger.InfoContext(ctx, "reaction recorded",
		slog.String("quote_id", quote.ID.String()),
		slog.String("kind", string(kind)),
		slog.String("user_id", user.ID.String()),
	)

	event := domain.ReactionEvent{
		QuoteID:  quote.ID,
		Kind:     kind,
		Likes:    quote.Likes,
		Dislikes: quote.Dislikes,
	}

	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish reaction",
			slog.String("quote_id", quote.ID.String()),
			slog.Any("error", err),
		)
	}

	return quote, nil
}

// CreateQuote saves q under its source. The source row is locked and its
// active quotes counted in the same transaction as the insert, so the
// per-source cap holds under concurrent creation.
func (s *QuoteService) CreateQuote(ctx context.Context, q *domain.Quote) error {
	if err := validateQuote(q); err != nil {
		return err
	}

	err := s.store.Atomically(ctx, func(tx ports.Store) error {
		return createWithinCapacity(ctx, tx, q)
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "quote created",
		slog.String("quote_id", q.ID.String()),
		slog.String("source_id", q.SourceID.String()),
	)

	return nil
}

// validateQuote collects text and weight errors.
func validateQuote(q *domain.Quote) error {
	errs := domain.ValidationErrors{}
	_ = errs.Merge(domain.ValidateText(q.Text))
	_ = errs.Merge(domain.ValidateWeight(q.Weight))

	return errs.Err()
}

// createWithinCapacity must run inside a transaction.
func createWithinCapacity(ctx context.Context, tx ports.Store, q *domain.Quote) error {
	source, err := tx.Sources().Lock(ctx, q.SourceID)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.NewValidationError("source", "select a valid source")
		}

		return err
	}

	count, err := tx.Quotes().CountActiveBySource(ctx, source.ID)
	if err != nil {
		return fmt.Errorf("counting quotes of source: %w", err)
	}

	if count >= domain.MaxActiveQuotesPerSource {
		return domain.NewSourceCapacityError(source.Name)
	}

	return tx.Quotes().Create(ctx, q)
}

type discardEvents struct{}

func (discardEvents) Publish(context.Context, ports.Event) error { return nil }

type discardMetrics struct{}

func (discardMetrics) QuoteViewed()                 {}
func (discardMetrics) QuoteReacted(domain.Reaction) {}
func (discardMetrics) QuoteSubmitted(string)        {}
func (discardMetrics) QuoteImported(string)         {}
