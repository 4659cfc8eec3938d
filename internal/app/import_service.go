package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

const (
	defaultImportConcurrency = 4
	defaultImportSourceType  = "person"
)

// ImportResult summarizes one import run.
type ImportResult struct {
	Imported int
	// Skipped counts duplicates, blank quotes and full sources.
	Skipped int
	// Failed counts fetches the remote catalog did not answer.
	Failed int
}

// ImportService copies quotes from a remote catalog into the store. Each
// author becomes a source of the configured type and every quote goes
// through the same capacity-checked path as the forms.
type ImportService struct {
	store       ports.Store
	remote      ports.QuoteSource
	sourceType  string
	concurrency int
	metrics     ports.QuoteMetrics
	logger      *slog.Logger
}

// ImportServiceConfig contains configuration for the import service.
type ImportServiceConfig struct {
	Store  ports.Store
	Remote ports.QuoteSource

	// SourceType names the type given to imported authors; it is created
	// when missing. Defaults to "person".
	SourceType string

	// Concurrency bounds parallel remote fetches.
	Concurrency int
	Metrics     ports.QuoteMetrics
	Logger      *slog.Logger
}

// NewImportService creates an import service. It panics without a store or remote.
func NewImportService(cfg ImportServiceConfig) *ImportService {
	if cfg.Store == nil || cfg.Remote == nil {
		panic("app: ImportService requires a store and a remote quote source")
	}

	if cfg.SourceType == "" {
		cfg.SourceType = defaultImportSourceType
	}

	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultImportConcurrency
	}

	if cfg.Metrics == nil {
		cfg.Metrics = discardMetrics{}
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &ImportService{
		store:       cfg.Store,
		remote:      cfg.Remote,
		sourceType:  cfg.SourceType,
		concurrency: cfg.Concurrency,
		metrics:     cfg.Metrics,
		logger:      cfg.Logger,
	}
}

// Import fetches count quotes and stores the ones that fit. It fails only
// when the store itself fails; remote errors and rejected quotes are counted.
func (s *ImportService) Import(ctx context.Context, count int) (*ImportResult, error) {
	if count <= 0 {
		return &ImportResult{}, nil
	}

	sourceType, err := s.ensureSourceType(ctx)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}

	for _, fetched := range repeat(ctx, count, s.concurrency, s.remote.RandomQuote) {
		if fetched.err != nil {
			result.Failed++
			s.metrics.QuoteImported(outcomeFailed)
			s.logger.WarnContext(ctx, "fetching remote quote failed", slog.Any("error", fetched.err))

			continue
		}

		err := s.save(ctx, fetched.value, sourceType.ID)

		switch {
		case err == nil:
			result.Imported++
			s.metrics.QuoteImported(outcomeCreated)
		case domain.IsValidation(err):
			result.Skipped++
			s.metrics.QuoteImported(outcomeSkipped)
			s.logger.DebugContext(ctx, "remote quote skipped", slog.Any("reason", err))
		default:
			return result, fmt.Errorf("saving imported quote: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "import finished",
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

func (s *ImportService) ensureSourceType(ctx context.Context) (*domain.SourceType, error) {
	st, err := s.store.SourceTypes().FindByName(ctx, s.sourceType)
	if err == nil {
		return st, nil
	}

	if !domain.IsNotFound(err) {
		return nil, fmt.Errorf("finding source type %q: %w", s.sourceType, err)
	}

	st = &domain.SourceType{
		Record: domain.Record{ID: uuid.New(), IsActive: true},
		Name:   s.sourceType,
	}

	if err := s.store.SourceTypes().Create(ctx, st); err != nil {
		return nil, fmt.Errorf("creating source type %q: %w", s.sourceType, err)
	}

	return st, nil
}

func (s *ImportService) save(ctx context.Context, remote *ports.RemoteQuote, typeID uuid.UUID) error {
	text := strings.TrimSpace(remote.Text)
	if err := domain.ValidateText(text); err != nil {
		return err
	}

	author := strings.TrimSpace(remote.Author)
	if author == "" {
		return domain.NewValidationError("source", "remote quote has no author")
	}

	exists, err := s.store.Quotes().TextExists(ctx, text)
	if err != nil {
		return err
	}

	if exists {
		return domain.NewValidationError("text", "a quote with this text already exists")
	}

	quote := domain.NewQuote(text, uuid.Nil, domain.DefaultWeight)

	return placeQuote(ctx, s.store, quote, author, &typeID)
}
