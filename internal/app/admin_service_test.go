package app

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

func newAdminService(t *testing.T) (*AdminService, *storeMocks) {
	t.Helper()

	store := newStoreMocks(t)
	quotes := NewQuoteService(QuoteServiceConfig{Store: store.store, Logger: discardLogger()})

	return NewAdminService(AdminServiceConfig{Store: store.store, Quotes: quotes, Logger: discardLogger()}), store
}

func ptr[T any](v T) *T { return &v }

func TestAdminService_RequiresStaff(t *testing.T) {
	svc, _ := newAdminService(t)
	ctx := context.Background()
	reader := domain.NewUser("reader", "hash", false, false)

	_, err := svc.CreateSourceType(ctx, nil, "film")
	require.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = svc.CreateSourceType(ctx, reader, "film")
	require.True(t, domain.IsForbidden(err))

	err = svc.SetQuoteActive(ctx, reader, uuid.New(), false)
	require.True(t, domain.IsForbidden(err))
}

func TestAdminService_ListSourceTypes_FiltersOnActive(t *testing.T) {
	svc, store := newAdminService(t)

	active := &domain.SourceType{Record: domain.Record{ID: uuid.New(), IsActive: true}, Name: "book"}
	deleted := &domain.SourceType{Record: domain.Record{ID: uuid.New()}, Name: "film"}
	store.types.EXPECT().ListAny(mock.Anything).Return([]*domain.SourceType{active, deleted}, nil)

	all, err := svc.ListSourceTypes(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyDeleted, err := svc.ListSourceTypes(context.Background(), ptr(false))
	require.NoError(t, err)
	require.Len(t, onlyDeleted, 1)
	assert.Equal(t, "film", onlyDeleted[0].Name)
}

func TestAdminService_SoftDeleteAndRestore(t *testing.T) {
	svc, store := newAdminService(t)
	staff := domain.NewUser("editor", "hash", true, false)
	id := uuid.New()

	store.quotes.EXPECT().SetActive(mock.Anything, id, false).Return(nil).Once()
	store.quotes.EXPECT().SetActive(mock.Anything, id, true).Return(nil).Once()
	store.sources.EXPECT().SetActive(mock.Anything, id, false).Return(nil).Once()
	store.types.EXPECT().SetActive(mock.Anything, id, true).Return(nil).Once()

	ctx := context.Background()
	require.NoError(t, svc.SetQuoteActive(ctx, staff, id, false))
	require.NoError(t, svc.SetQuoteActive(ctx, staff, id, true))
	require.NoError(t, svc.SetSourceActive(ctx, staff, id, false))
	require.NoError(t, svc.SetSourceTypeActive(ctx, staff, id, true))
}

func TestAdminService_CreateQuote_EnforcesCapacity(t *testing.T) {
	svc, store := newAdminService(t)
	staff := domain.NewUser("editor", "hash", true, false)
	src := &domain.Source{Record: domain.Record{ID: uuid.New(), IsActive: true}, Name: "Dune"}

	store.sources.EXPECT().Lock(mock.Anything, src.ID).Return(src, nil)
	store.quotes.EXPECT().CountActiveBySource(mock.Anything, src.ID).Return(int64(domain.MaxActiveQuotesPerSource), nil)

	_, err := svc.CreateQuote(context.Background(), staff, NewQuoteInput{Text: "One more", SourceID: src.ID})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestAdminService_CreateQuote_StartsWithZeroCounters(t *testing.T) {
	svc, store := newAdminService(t)
	staff := domain.NewUser("editor", "hash", true, false)
	src := &domain.Source{Record: domain.Record{ID: uuid.New(), IsActive: true}, Name: "Dune"}

	var saved *domain.Quote

	store.sources.EXPECT().Lock(mock.Anything, src.ID).Return(src, nil)
	store.quotes.EXPECT().CountActiveBySource(mock.Anything, src.ID).Return(int64(0), nil)
	store.quotes.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Quote")).
		Run(func(_ context.Context, q *domain.Quote) { saved = q }).
		Return(nil)
	store.quotes.EXPECT().GetAny(mock.Anything, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(context.Context, uuid.UUID) (*domain.Quote, error) { return saved, nil })

	got, err := svc.CreateQuote(context.Background(), staff, NewQuoteInput{Text: "Fresh", SourceID: src.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultWeight, got.Weight)
	assert.Zero(t, got.Views)
	assert.Zero(t, got.Likes)
	assert.Zero(t, got.Dislikes)
}

func TestAdminService_UpdateQuote(t *testing.T) {
	staff := domain.NewUser("editor", "hash", true, false)
	super := domain.NewUser("root", "hash", false, true)

	tests := []struct {
		name      string
		actor     *domain.User
		update    QuoteUpdate
		setup     func(*storeMocks, *domain.Quote)
		wantErrIs error
	}{
		{
			name:   "staff can change weight",
			actor:  staff,
			update: QuoteUpdate{Weight: ptr(50)},
			setup: func(s *storeMocks, q *domain.Quote) {
				s.quotes.EXPECT().GetAny(mock.Anything, q.ID).Return(q, nil)
				s.quotes.EXPECT().Update(mock.Anything, q.ID, ports.QuoteChanges{Weight: ptr(50)}).Return(nil)
			},
		},
		{
			name:   "text is trimmed before it is written",
			actor:  staff,
			update: QuoteUpdate{Text: ptr("  New words  ")},
			setup: func(s *storeMocks, q *domain.Quote) {
				s.quotes.EXPECT().GetAny(mock.Anything, q.ID).Return(q, nil)
				s.quotes.EXPECT().Update(mock.Anything, q.ID, ports.QuoteChanges{Text: ptr("New words")}).Return(nil)
			},
		},
		{
			name:      "staff cannot change counters",
			actor:     staff,
			update:    QuoteUpdate{Likes: ptr(int64(1000))},
			setup:     func(*storeMocks, *domain.Quote) {},
			wantErrIs: domain.ErrForbidden,
		},
		{
			name:   "superuser can change counters",
			actor:  super,
			update: QuoteUpdate{Views: ptr(int64(7)), Likes: ptr(int64(3)), Dislikes: ptr(int64(0))},
			setup: func(s *storeMocks, q *domain.Quote) {
				s.quotes.EXPECT().GetAny(mock.Anything, q.ID).Return(q, nil)
				s.quotes.EXPECT().Update(mock.Anything, q.ID, ports.QuoteChanges{
					Views: ptr(int64(7)), Likes: ptr(int64(3)), Dislikes: ptr(int64(0)),
				}).Return(nil)
			},
		},
		{
			name:   "negative counters are invalid",
			actor:  super,
			update: QuoteUpdate{Likes: ptr(int64(-1))},
			setup: func(s *storeMocks, q *domain.Quote) {
				s.quotes.EXPECT().GetAny(mock.Anything, q.ID).Return(q, nil)
			},
			wantErrIs: domain.ErrValidation,
		},
		{
			name:   "moving to an unknown source is invalid",
			actor:  staff,
			update: QuoteUpdate{SourceID: ptr(uuid.New())},
			setup: func(s *storeMocks, q *domain.Quote) {
				s.quotes.EXPECT().GetAny(mock.Anything, q.ID).Return(q, nil)
				s.sources.EXPECT().GetAny(mock.Anything, mock.AnythingOfType("uuid.UUID")).
					Return(nil, domain.NewNotFoundError("source", ""))
			},
			wantErrIs: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newAdminService(t)
			quote := &domain.Quote{Record: domain.Record{ID: uuid.New(), IsActive: true}, Text: "Old", Weight: 1, Likes: 4}
			tt.setup(store, quote)

			got, err := svc.UpdateQuote(context.Background(), tt.actor, quote.ID, tt.update)
			if tt.wantErrIs != nil {
				require.ErrorIs(t, err, tt.wantErrIs)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, quote.ID, got.ID)
		})
	}
}

func TestAdminService_Sources(t *testing.T) {
	svc, store := newAdminService(t)
	staff := domain.NewUser("editor", "hash", true, false)
	typeID := uuid.New()

	t.Run("create validates the type", func(t *testing.T) {
		store.types.EXPECT().GetAny(mock.Anything, typeID).
			Return(nil, domain.NewNotFoundError("source type", typeID.String())).Once()

		_, err := svc.CreateSource(context.Background(), staff, SourceInput{Name: "", SourceTypeID: &typeID})

		var errs domain.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.NotEmpty(t, errs["name"])
		assert.NotEmpty(t, errs["source_type_id"])
	})

	t.Run("create without a type", func(t *testing.T) {
		var created *domain.Source

		store.sources.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Source")).
			Run(func(_ context.Context, s *domain.Source) { created = s }).
			Return(nil).Once()
		store.sources.EXPECT().GetAny(mock.Anything, mock.AnythingOfType("uuid.UUID")).
			RunAndReturn(func(context.Context, uuid.UUID) (*domain.Source, error) { return created, nil }).Once()

		got, err := svc.CreateSource(context.Background(), staff, SourceInput{Name: " Anonymous "})
		require.NoError(t, err)
		assert.Equal(t, "Anonymous", got.Name)
		assert.Nil(t, got.SourceTypeID)
	})
}

func TestAdminService_ListQuotes_PassesFilterAndPage(t *testing.T) {
	svc, store := newAdminService(t)

	filter := ports.QuoteFilter{Active: ptr(true)}
	page := ports.Page{Limit: 10}
	store.quotes.EXPECT().ListAny(mock.Anything, filter, page).Return([]*domain.Quote{}, nil)

	got, err := svc.ListQuotes(context.Background(), filter, page)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNewAdminService_RequiresQuoteService(t *testing.T) {
	store := newStoreMocks(t)

	assert.Panics(t, func() {
		NewAdminService(AdminServiceConfig{Store: store.store})
	})
	assert.NotPanics(t, func() {
		quotes := NewQuoteService(QuoteServiceConfig{Store: store.store})
		NewAdminService(AdminServiceConfig{Store: store.store, Quotes: quotes})
	})
}
