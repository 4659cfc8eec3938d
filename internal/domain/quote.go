package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Catalog limits.
const (
	// MaxActiveQuotesPerSource caps how many active quotes may reference one source.
	MaxActiveQuotesPerSource = 3

	// TopQuotesLimit is the size of the leaderboard.
	TopQuotesLimit = 20

	// DefaultWeight is used when a quote is created without an explicit weight.
	DefaultWeight = 1

	// MinWeight and MaxWeight bound the weights accepted from forms and the admin API.
	MinWeight = 1
	MaxWeight = 100

	// truncateAfter is the rune count above which TruncatedText shortens the text.
	truncateAfter = 50
	truncateKeep  = 47
)

// Record carries the bookkeeping fields shared by every catalog entity.
type Record struct {
	ID        uuid.UUID
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SourceType is a category of sources such as "film" or "book".
type SourceType struct {
	Record

	Name string
}

// Source is the attributed origin of a quote.
type Source struct {
	Record

	Name string

	// SourceTypeID is nil when the type was removed.
	SourceTypeID *uuid.UUID

	// SourceType is populated by read paths that join the type.
	SourceType *SourceType
}

// TypeName returns the source type name or an empty string.
func (s *Source) TypeName() string {
	if s.SourceType == nil {
		return ""
	}

	return s.SourceType.Name
}

// Quote is a quotation with its display weight and reaction counters.
type Quote struct {
	Record

	Text     string
	SourceID uuid.UUID
	Weight   int
	Views    int64
	Likes    int64
	Dislikes int64

	// Source is populated by read paths that join the source.
	Source *Source
}

// TruncatedText returns the quoted text, shortened to 47 runes plus an
// ellipsis when it is longer than 50 runes.
func (q *Quote) TruncatedText() string {
	text := q.Text
	if utf8.RuneCountInString(text) > truncateAfter {
		runes := []rune(text)
		text = string(runes[:truncateKeep]) + "..."
	}

	return `"` + text + `"`
}

// String implements fmt.Stringer.
func (q *Quote) String() string {
	return q.TruncatedText()
}

// SourceName returns the name of the joined source or an empty string.
func (q *Quote) SourceName() string {
	if q.Source == nil {
		return ""
	}

	return q.Source.Name
}

// NewQuote builds an active quote for source with zeroed counters.
// A non-positive weight falls back to DefaultWeight.
func NewQuote(text string, sourceID uuid.UUID, weight int) *Quote {
	if weight <= 0 {
		weight = DefaultWeight
	}

	return &Quote{
		Record:   Record{ID: uuid.New(), IsActive: true},
		Text:     strings.TrimSpace(text),
		SourceID: sourceID,
		Weight:   weight,
	}
}

// Reaction is the kind of feedback a user leaves on a quote.
type Reaction string

// Reaction kinds.
const (
	ReactionLike    Reaction = "like"
	ReactionDislike Reaction = "dislike"
)

// Valid reports whether r is a known reaction.
func (r Reaction) Valid() bool {
	return r == ReactionLike || r == ReactionDislike
}

// Counter is a monotonically increasing quote column.
type Counter string

// Counter columns.
const (
	CounterViews    Counter = "views"
	CounterLikes    Counter = "likes"
	CounterDislikes Counter = "dislikes"
)

// Counter returns the column a reaction increments.
func (r Reaction) Counter() Counter {
	if r == ReactionDislike {
		return CounterDislikes
	}

	return CounterLikes
}

// ReactionEvent is published after a reaction has been stored.
type ReactionEvent struct {
	QuoteID  uuid.UUID `json:"quote_id"`
	Kind     Reaction  `json:"kind"`
	Likes    int64     `json:"likes"`
	Dislikes int64     `json:"dislikes"`
}

// EventType implements ports.Event.
func (e ReactionEvent) EventType() string {
	return "quote.reaction"
}

// Payload implements ports.Event.
func (e ReactionEvent) Payload() any {
	return e
}

// ValidateWeight checks the weight bounds accepted from user input.
func ValidateWeight(weight int) error {
	if weight < MinWeight || weight > MaxWeight {
		return NewValidationError("weight", "must be between 1 and 100")
	}

	return nil
}

// ValidateText checks that quote text is not blank.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return NewValidationError("text", "this field is required")
	}

	return nil
}
