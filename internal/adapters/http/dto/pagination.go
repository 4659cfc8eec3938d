package dto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen/quotebook/internal/ports"
)

// Page sizes of the admin listings.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ErrInvalidCursor is returned for a cursor this API did not issue.
var ErrInvalidCursor = errors.New("invalid cursor")

// PageRequest is the ?cursor=&limit= query of a keyset-paginated listing.
type PageRequest struct {
	// Cursor is the opaque NextCursor of the previous page; empty for the first.
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit"  validate:"omitempty,gte=1,lte=100"`
}

// Size returns the page size with defaults and bounds applied.
func (p *PageRequest) Size() int {
	switch {
	case p.Limit <= 0:
		return DefaultPageSize
	case p.Limit > MaxPageSize:
		return MaxPageSize
	default:
		return p.Limit
	}
}

// StorePage converts the request into a store query. It asks for one row
// more than the page size so the response can tell whether another page exists.
func (p *PageRequest) StorePage() (ports.Page, error) {
	page := ports.Page{Limit: p.Size() + 1}

	if p.Cursor == "" {
		return page, nil
	}

	after, err := DecodeCursor(p.Cursor)
	if err != nil {
		return ports.Page{}, err
	}

	page.After = after

	return page, nil
}

// PageResponse is one page of a listing ordered newest first.
type PageResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
	HasMore    bool   `json:"hasMore"`
}

// NewPageResponse trims the extra row fetched by StorePage and, when it was
// present, points NextCursor at the last item kept.
func NewPageResponse[T any](items []T, size int, position func(T) ports.PageCursor) *PageResponse[T] {
	resp := &PageResponse[T]{Items: items}
	if resp.Items == nil {
		resp.Items = []T{}
	}

	if len(items) > size {
		resp.Items = items[:size]
		resp.HasMore = true
	}

	if resp.HasMore && size > 0 {
		resp.NextCursor = EncodeCursor(position(resp.Items[len(resp.Items)-1]))
	}

	return resp
}

// MapPage converts the items of a page, keeping its cursor.
func MapPage[T, U any](page *PageResponse[T], convert func(T) U) *PageResponse[U] {
	items := make([]U, len(page.Items))
	for i, item := range page.Items {
		items[i] = convert(item)
	}

	return &PageResponse[U]{Items: items, NextCursor: page.NextCursor, HasMore: page.HasMore}
}

type cursorJSON struct {
	CreatedAt time.Time `json:"t"`
	ID        uuid.UUID `json:"id"`
}

// EncodeCursor serializes a keyset position as URL-safe base64 JSON.
func EncodeCursor(pos ports.PageCursor) string {
	raw, err := json.Marshal(cursorJSON{CreatedAt: pos.CreatedAt.UTC(), ID: pos.ID})
	if err != nil {
		return ""
	}

	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeCursor parses a cursor produced by EncodeCursor.
func DecodeCursor(encoded string) (*ports.PageCursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	var c cursorJSON
	if err := json.Unmarshal(raw, &c); err != nil || c.ID == uuid.Nil || c.CreatedAt.IsZero() {
		return nil, ErrInvalidCursor
	}

	return &ports.PageCursor{CreatedAt: c.CreatedAt, ID: c.ID}, nil
}
