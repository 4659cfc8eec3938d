package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

// maxSourceNameLength matches the add-quote form input limit.
const maxSourceNameLength = 500

// Submission outcomes reported to metrics.
const (
	outcomeCreated  = "created"
	outcomeInvalid  = "invalid"
	outcomeFailed   = "failed"
	outcomeSkipped  = "skipped"
	outcomeDisabled = "disabled"
)

// QuoteSubmission is the add-quote form after parsing.
type QuoteSubmission struct {
	Text         string
	SourceName   string
	SourceTypeID uuid.UUID
	Weight       int
}

// SubmissionService handles quotes submitted by logged-in users.
type SubmissionService struct {
	store   ports.Store
	flags   ports.FeatureFlags
	metrics ports.QuoteMetrics
	logger  *slog.Logger
}

// SubmissionServiceConfig contains configuration for the submission service.
type SubmissionServiceConfig struct {
	Store ports.Store

	// Flags gates the form with ports.FlagQuoteSubmissions. Optional.
	Flags   ports.FeatureFlags
	Metrics ports.QuoteMetrics
	Logger  *slog.Logger
}

// NewSubmissionService creates a submission service. It panics when no store is given.
func NewSubmissionService(cfg SubmissionServiceConfig) *SubmissionService {
	if cfg.Store == nil {
		panic("app: SubmissionService requires a store")
	}

	if cfg.Metrics == nil {
		cfg.Metrics = discardMetrics{}
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &SubmissionService{
		store:   cfg.Store,
		flags:   cfg.Flags,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
	}
}

// Enabled reports whether the add-quote form is open.
func (s *SubmissionService) Enabled(ctx context.Context) bool {
	return s.flags == nil || s.flags.IsEnabled(ctx, ports.FlagQuoteSubmissions, true)
}

// Submit validates the form, resolves or creates the source and saves the
// quote under the per-source cap. Field problems come back together as
// domain.ValidationErrors; a full source is reported as a form-level error.
func (s *SubmissionService) Submit(
	ctx context.Context,
	user *domain.User,
	form QuoteSubmission,
) (*domain.Quote, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}

	if !s.Enabled(ctx) {
		s.metrics.QuoteSubmitted(outcomeDisabled)
		return nil, domain.NewForbiddenError("submit quote", "submissions are closed")
	}

	sourceType, err := s.validate(ctx, form)
	if err != nil {
		s.record(ctx, err)
		return nil, err
	}

	quote := domain.NewQuote(form.Text, uuid.Nil, form.Weight)

	if err := placeQuote(ctx, s.store, quote, form.SourceName, &sourceType.ID); err != nil {
		s.record(ctx, err)
		return nil, asFormErrors(err)
	}

	s.record(ctx, nil)
	s.logger.InfoContext(ctx, "quote submitted",
		slog.String("quote_id", quote.ID.String()),
		slog.String("user_id", user.ID.String()),
	)

	return quote, nil
}

// Check runs the field checks of Submit without saving anything. Callers use
// it to report every problem when part of the form could not be parsed.
func (s *SubmissionService) Check(ctx context.Context, form QuoteSubmission) error {
	_, err := s.validate(ctx, form)
	return err
}

// validate checks every field before touching the source table.
func (s *SubmissionService) validate(ctx context.Context, form QuoteSubmission) (*domain.SourceType, error) {
	errs := domain.ValidationErrors{}
	_ = errs.Merge(domain.ValidateText(form.Text))
	_ = errs.Merge(domain.ValidateWeight(form.Weight))

	name := strings.TrimSpace(form.SourceName)

	switch {
	case name == "":
		errs.Add("source_name", "this field is required")
	case utf8.RuneCountInString(name) > maxSourceNameLength:
		errs.Add("source_name", fmt.Sprintf("must be at most %d characters", maxSourceNameLength))
	}

	if text := strings.TrimSpace(form.Text); text != "" {
		exists, err := s.store.Quotes().TextExists(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("checking quote text: %w", err)
		}

		if exists {
			errs.Add("text", "a quote with this text already exists")
		}
	}

	var sourceType *domain.SourceType

	if form.SourceTypeID == uuid.Nil {
		errs.Add("source_type", "this field is required")
	} else {
		st, err := s.store.SourceTypes().GetActive(ctx, form.SourceTypeID)
		switch {
		case domain.IsNotFound(err):
			errs.Add("source_type", "select a valid choice")
		case err != nil:
			return nil, fmt.Errorf("loading source type: %w", err)
		default:
			sourceType = st
		}
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}

	return sourceType, nil
}

func (s *SubmissionService) record(ctx context.Context, err error) {
	switch {
	case err == nil:
		s.metrics.QuoteSubmitted(outcomeCreated)
	case domain.IsValidation(err):
		s.metrics.QuoteSubmitted(outcomeInvalid)
	default:
		s.metrics.QuoteSubmitted(outcomeFailed)
		s.logger.ErrorContext(ctx, "quote submission failed", slog.Any("error", err))
	}
}

// errSourceRaced means another writer inserted the same source between the
// lookup and the insert.
var errSourceRaced = errors.New("source created concurrently")

// placeQuote attaches quote to the named source, creating the source when
// needed, and saves it under the per-source cap in one transaction. A lost
// race on the source insert reruns the transaction once so the second pass
// finds the winner's row.
func placeQuote(ctx context.Context, store ports.Store, quote *domain.Quote, sourceName string, typeID *uuid.UUID) error {
	run := func(tx ports.Store) error {
		source, err := findOrCreateSource(ctx, tx, sourceName, typeID)
		if err != nil {
			return err
		}

		quote.SourceID = source.ID

		return createWithinCapacity(ctx, tx, quote)
	}

	err := store.Atomically(ctx, run)
	if errors.Is(err, errSourceRaced) {
		err = store.Atomically(ctx, run)
	}

	if errors.Is(err, errSourceRaced) {
		return domain.NewValidationError(domain.NonFieldErrors,
			"the source was changed by someone else, please submit again")
	}

	return err
}

// findOrCreateSource matches the name case-insensitively within the type and
// creates the source when it does not exist yet. Run it inside a transaction.
func findOrCreateSource(ctx context.Context, tx ports.Store, name string, typeID *uuid.UUID) (*domain.Source, error) {
	name = strings.TrimSpace(name)

	source, err := tx.Sources().FindByNameAndType(ctx, name, typeID)
	if err == nil {
		return source, nil
	}

	if !domain.IsNotFound(err) {
		return nil, fmt.Errorf("finding source: %w", err)
	}

	source = &domain.Source{
		Record:       domain.Record{ID: uuid.New(), IsActive: true},
		Name:         name,
		SourceTypeID: typeID,
	}

	err = tx.Sources().Create(ctx, source)
	if domain.IsConflict(err) {
		return nil, errSourceRaced
	}

	if err != nil {
		return nil, fmt.Errorf("creating source: %w", err)
	}

	return source, nil
}

// asFormErrors turns single validation errors into the field map the form renders.
func asFormErrors(err error) error {
	var many domain.ValidationErrors
	if errors.As(err, &many) {
		return many
	}

	errs := domain.ValidationErrors{}
	if rest := errs.Merge(err); rest != nil {
		return rest
	}

	return errs
}
