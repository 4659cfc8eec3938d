// Package ports defines the interfaces the application layer depends on.
// Adapters implement them; services never see gorm, HTTP or websocket types.
//
// Every repository exposes two explicit kinds of reads:
//   - ...Active methods see only rows with is_active = true (the public view)
//   - ...Any methods see every row (administrative recovery)
//
// Soft delete and restore only flip is_active; nothing removes rows.
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

// Page describes a keyset page over rows ordered by created_at DESC, id DESC.
type Page struct {
	// After is the last row of the previous page; nil for the first page.
	After *PageCursor
	Limit int
}

// PageCursor is the keyset position of a row.
type PageCursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// QuoteFilter narrows administrative quote listings.
type QuoteFilter struct {
	// Active filters on is_active when set.
	Active   *bool
	SourceID *uuid.UUID
}

// SourceTypeRepository persists source types.
type SourceTypeRepository interface {
	ListActive(ctx context.Context) ([]*domain.SourceType, error)
	ListAny(ctx context.Context) ([]*domain.SourceType, error)

	// GetActive returns domain.ErrNotFound for unknown or inactive ids.
	GetActive(ctx context.Context, id uuid.UUID) (*domain.SourceType, error)
	GetAny(ctx context.Context, id uuid.UUID) (*domain.SourceType, error)

	// FindByName matches case-insensitively over every row.
	FindByName(ctx context.Context, name string) (*domain.SourceType, error)

	// Create returns domain.ErrConflict when the name is taken.
	Create(ctx context.Context, st *domain.SourceType) error
	Rename(ctx context.Context, id uuid.UUID, name string) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// SourceRepository persists sources.
type SourceRepository interface {
	ListAny(ctx context.Context) ([]*domain.Source, error)
	GetAny(ctx context.Context, id uuid.UUID) (*domain.Source, error)

	// FindByNameAndType matches the name case-insensitively over every row.
	FindByNameAndType(ctx context.Context, name string, typeID *uuid.UUID) (*domain.Source, error)

	// Lock takes a row lock on the source for the rest of the transaction.
	Lock(ctx context.Context, id uuid.UUID) (*domain.Source, error)

	// Create returns domain.ErrConflict when (name, type) is taken.
	Create(ctx context.Context, s *domain.Source) error
	Update(ctx context.Context, s *domain.Source) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// QuoteRepository persists quotes.
type QuoteRepository interface {
	// ListActive returns every active quote ordered by ascending id.
	ListActive(ctx context.Context) ([]*domain.Quote, error)

	// GetActive returns domain.ErrNotFound for unknown or inactive ids.
	GetActive(ctx context.Context, id uuid.UUID) (*domain.Quote, error)

	// Top returns up to limit active quotes by likes DESC, created_at DESC.
	Top(ctx context.Context, limit int) ([]*domain.Quote, error)

	// Increment atomically adds one to counter on an active quote and
	// returns the quote as stored after the update.
	Increment(ctx context.Context, id uuid.UUID, counter domain.Counter) (*domain.Quote, error)

	// TextExists compares case-insensitively over every row.
	TextExists(ctx context.Context, text string) (bool, error)

	CountActiveBySource(ctx context.Context, sourceID uuid.UUID) (int64, error)

	// ListAny pages over every row, newest first.
	ListAny(ctx context.Context, filter QuoteFilter, page Page) ([]*domain.Quote, error)
	GetAny(ctx context.Context, id uuid.UUID) (*domain.Quote, error)

	// Create inserts the quote. A duplicate text is reported as a text
	// validation error. Capacity is the caller's job.
	Create(ctx context.Context, q *domain.Quote) error

	// Update writes only the columns set in changes. Counters a caller did
	// not set keep whatever concurrent increments have made of them.
	Update(ctx context.Context, id uuid.UUID, changes QuoteChanges) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// QuoteChanges names the quote columns an update writes. Nil fields are
// left as stored.
type QuoteChanges struct {
	Text     *string
	SourceID *uuid.UUID
	Weight   *int
	Views    *int64
	Likes    *int64
	Dislikes *int64
}

// UserRepository persists accounts.
type UserRepository interface {
	// FindByUsername matches case-insensitively and returns ErrNotFound when absent.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	GetActive(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// Create returns domain.ErrConflict when the username is taken.
	Create(ctx context.Context, u *domain.User) error
	SetPassword(ctx context.Context, id uuid.UUID, hash string) error
}

// Store groups the repositories and runs work atomically.
type Store interface {
	SourceTypes() SourceTypeRepository
	Sources() SourceRepository
	Quotes() QuoteRepository
	Users() UserRepository

	// Atomically runs fn in one transaction. The Store handed to fn is bound
	// to that transaction and must be used for every call inside it.
	Atomically(ctx context.Context, fn func(tx Store) error) error
}
