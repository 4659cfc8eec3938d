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

// AdminService backs the staff API. Reads see every row, deletes only flip
// is_active and restores flip it back.
type AdminService struct {
	store  ports.Store
	quotes *QuoteService
	logger *slog.Logger
}

// AdminServiceConfig contains configuration for the admin service.
type AdminServiceConfig struct {
	Store ports.Store

	// Quotes performs capacity-checked creation.
	Quotes *QuoteService
	Logger *slog.Logger
}

// NewAdminService creates an admin service. It panics without a store or quote service.
func NewAdminService(cfg AdminServiceConfig) *AdminService {
	if cfg.Store == nil || cfg.Quotes == nil {
		panic("app: AdminService requires a store and a quote service")
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &AdminService{
		store:  cfg.Store,
		quotes: cfg.Quotes,
		logger: cfg.Logger,
	}
}

// Source types.

// ListSourceTypes returns every source type, or only those matching active when set.
func (s *AdminService) ListSourceTypes(ctx context.Context, active *bool) ([]*domain.SourceType, error) {
	types, err := s.store.SourceTypes().ListAny(ctx)
	if err != nil {
		return nil, err
	}

	if active == nil {
		return types, nil
	}

	filtered := make([]*domain.SourceType, 0, len(types))
	for _, st := range types {
		if st.IsActive == *active {
			filtered = append(filtered, st)
		}
	}

	return filtered, nil
}

// CreateSourceType adds a new active source type.
func (s *AdminService) CreateSourceType(ctx context.Context, actor *domain.User, name string) (*domain.SourceType, error) {
	if err := authorize(actor, "create source type"); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "this field is required")
	}

	st := &domain.SourceType{
		Record: domain.Record{ID: uuid.New(), IsActive: true},
		Name:   name,
	}

	if err := s.store.SourceTypes().Create(ctx, st); err != nil {
		return nil, err
	}

	s.audit(ctx, actor, "source type created", st.ID)

	return st, nil
}

// RenameSourceType changes the name of a source type, active or not.
func (s *AdminService) RenameSourceType(ctx context.Context, actor *domain.User, id uuid.UUID, name string) (*domain.SourceType, error) {
	if err := authorize(actor, "rename source type"); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "this field is required")
	}

	if err := s.store.SourceTypes().Rename(ctx, id, name); err != nil {
		return nil, err
	}

	s.audit(ctx, actor, "source type renamed", id)

	return s.store.SourceTypes().GetAny(ctx, id)
}

// SetSourceTypeActive soft deletes (false) or restores (true) a source type.
func (s *AdminService) SetSourceTypeActive(ctx context.Context, actor *domain.User, id uuid.UUID, active bool) error {
	if err := authorize(actor, "delete source type"); err != nil {
		return err
	}

	if err := s.store.SourceTypes().SetActive(ctx, id, active); err != nil {
		return err
	}

	s.audit(ctx, actor, activityLabel("source type", active), id)

	return nil
}

// Sources.

// SourceInput is the writable part of a source.
type SourceInput struct {
	Name         string
	SourceTypeID *uuid.UUID
}

// ListSources returns every source with its type, newest first.
func (s *AdminService) ListSources(ctx context.Context) ([]*domain.Source, error) {
	return s.store.Sources().ListAny(ctx)
}

// GetSource returns a source whether or not it is active.
func (s *AdminService) GetSource(ctx context.Context, id uuid.UUID) (*domain.Source, error) {
	return s.store.Sources().GetAny(ctx, id)
}

// CreateSource adds a source. The name must be unique within the type.
func (s *AdminService) CreateSource(ctx context.Context, actor *domain.User, in SourceInput) (*domain.Source, error) {
	if err := authorize(actor, "create source"); err != nil {
		return nil, err
	}

	if err := s.validateSource(ctx, in); err != nil {
		return nil, err
	}

	source := &domain.Source{
		Record:       domain.Record{ID: uuid.New(), IsActive: true},
		Name:         strings.TrimSpace(in.Name),
		SourceTypeID: in.SourceTypeID,
	}

	if err := s.store.Sources().Create(ctx, source); err != nil {
		return nil, err
	}

	s.audit(ctx, actor, "source created", source.ID)

	return s.store.Sources().GetAny(ctx, source.ID)
}

// UpdateSource renames a source or moves it to another type.
func (s *AdminService) UpdateSource(ctx context.Context, actor *domain.User, id uuid.UUID, in SourceInput) (*domain.Source, error) {
	if err := authorize(actor, "update source"); err != nil {
		return nil, err
	}

	if err := s.validateSource(ctx, in); err != nil {
		return nil, err
	}

	source, err := s.store.Sources().GetAny(ctx, id)
	if err != nil {
		return nil, err
	}

	source.Name = strings.TrimSpace(in.Name)
	source.SourceTypeID = in.SourceTypeID

	if err := s.store.Sources().Update(ctx, source); err != nil {
		return nil, err
	}

	s.audit(ctx, actor, "source updated", id)

	return s.store.Sources().GetAny(ctx, id)
}

// SetSourceActive soft deletes (false) or restores (true) a source.
func (s *AdminService) SetSourceActive(ctx context.Context, actor *domain.User, id uuid.UUID, active bool) error {
	if err := authorize(actor, "delete source"); err != nil {
		return err
	}

	if err := s.store.Sources().SetActive(ctx, id, active); err != nil {
		return err
	}

	s.audit(ctx, actor, activityLabel("source", active), id)

	return nil
}

func (s *AdminService) validateSource(ctx context.Context, in SourceInput) error {
	errs := domain.ValidationErrors{}

	if strings.TrimSpace(in.Name) == "" {
		errs.Add("name", "this field is required")
	}

	if in.SourceTypeID != nil {
		_, err := s.store.SourceTypes().GetAny(ctx, *in.SourceTypeID)
		switch {
		case domain.IsNotFound(err):
			errs.Add("source_type_id", "select a valid choice")
		case err != nil:
			return err
		}
	}

	return errs.Err()
}

// Quotes.

// NewQuoteInput is what the admin may set when adding a quote. Counters
// always start at zero.
type NewQuoteInput struct {
	Text     string
	SourceID uuid.UUID
	Weight   int
}

// QuoteUpdate lists the fields to change; nil fields are left alone.
// Views, Likes and Dislikes may only be set by superusers.
type QuoteUpdate ports.QuoteChanges

func (u QuoteUpdate) touchesCounters() bool {
	return u.Views != nil || u.Likes != nil || u.Dislikes != nil
}

// ListQuotes pages over every quote, newest first.
func (s *AdminService) ListQuotes(ctx context.Context, filter ports.QuoteFilter, page ports.Page) ([]*domain.Quote, error) {
	return s.store.Quotes().ListAny(ctx, filter, page)
}

// GetQuote returns a quote whether or not it is active.
func (s *AdminService) GetQuote(ctx context.Context, id uuid.UUID) (*domain.Quote, error) {
	return s.store.Quotes().GetAny(ctx, id)
}

// CreateQuote saves a quote through the capacity-checked path.
func (s *AdminService) CreateQuote(ctx context.Context, actor *domain.User, in NewQuoteInput) (*domain.Quote, error) {
	if err := authorize(actor, "create quote"); err != nil {
		return nil, err
	}

	weight := in.Weight
	if weight == 0 {
		weight = domain.DefaultWeight
	}

	quote := domain.NewQuote(in.Text, in.SourceID, weight)
	quote.Weight = weight

	if err := s.quotes.CreateQuote(ctx, quote); err != nil {
		return nil, err
	}

	s.audit(ctx, actor, "quote created", quote.ID)

	return s.store.Quotes().GetAny(ctx, quote.ID)
}

// UpdateQuote applies upd to a quote. The per-source cap is not checked on
// update.
func (s *AdminService) UpdateQuote(ctx context.Context, actor *domain.User, id uuid.UUID, upd QuoteUpdate) (*domain.Quote, error) {
	if err := authorize(actor, "update quote"); err != nil {
		return nil, err
	}

	if upd.touchesCounters() && !actor.CanEditCounters() {
		return nil, domain.NewForbiddenError("edit counters", "only superusers may change views, likes and dislikes")
	}

	err := s.store.Atomically(ctx, func(tx ports.Store) error {
		if _, err := tx.Quotes().GetAny(ctx, id); err != nil {
			return err
		}

		changes, err := upd.validate(ctx, tx)
		if err != nil {
			return err
		}

		return tx.Quotes().Update(ctx, id, changes)
	})
	if err != nil {
		return nil, err
	}

	s.audit(ctx, actor, "quote updated", id)

	return s.store.Quotes().GetAny(ctx, id)
}

// SetQuoteActive soft deletes (false) or restores (true) a quote. Restoring
// does not check the per-source cap.
func (s *AdminService) SetQuoteActive(ctx context.Context, actor *domain.User, id uuid.UUID, active bool) error {
	if err := authorize(actor, "delete quote"); err != nil {
		return err
	}

	if err := s.store.Quotes().SetActive(ctx, id, active); err != nil {
		return err
	}

	s.audit(ctx, actor, activityLabel("quote", active), id)

	return nil
}

// validate checks every set field and returns the columns to write.
func (u QuoteUpdate) validate(ctx context.Context, store ports.Store) (ports.QuoteChanges, error) {
	errs := domain.ValidationErrors{}
	changes := ports.QuoteChanges(u)

	if u.Text != nil {
		if err := errs.Merge(domain.ValidateText(*u.Text)); err != nil {
			return changes, err
		}

		text := strings.TrimSpace(*u.Text)
		changes.Text = &text
	}

	if u.Weight != nil {
		_ = errs.Merge(domain.ValidateWeight(*u.Weight))
	}

	if u.SourceID != nil {
		_, err := store.Sources().GetAny(ctx, *u.SourceID)
		switch {
		case domain.IsNotFound(err):
			errs.Add("source_id", "select a valid choice")
		case err != nil:
			return changes, err
		}
	}

	counters := []struct {
		field string
		value *int64
	}{
		{"views", u.Views},
		{"likes", u.Likes},
		{"dislikes", u.Dislikes},
	}

	for _, c := range counters {
		if c.value != nil && *c.value < 0 {
			errs.Add(c.field, "must be greater than or equal to 0")
		}
	}

	return changes, errs.Err()
}

// authorize checks the staff flag again behind the HTTP middleware.
func authorize(actor *domain.User, operation string) error {
	if actor == nil {
		return domain.ErrUnauthenticated
	}

	if !actor.CanAdminister() {
		return domain.NewForbiddenError(operation, "staff only")
	}

	return nil
}

func (s *AdminService) audit(ctx context.Context, actor *domain.User, msg string, id uuid.UUID) {
	s.logger.InfoContext(ctx, msg,
		slog.String("id", id.String()),
		slog.String("actor", actor.Username),
	)
}

func activityLabel(entity string, active bool) string {
	if active {
		return fmt.Sprintf("%s restored", entity)
	}

	return fmt.Sprintf("%s deleted", entity)
}
