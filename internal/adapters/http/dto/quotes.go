package dto

import (
	"time"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

// Reaction endpoint status values and error codes. The front end reads these
// literally, so they do not follow the ErrorResponse envelope.
const (
	StatusOK    = "ok"
	StatusError = "error"

	ReactionErrorAuthRequired     = "auth_required"
	ReactionErrorNotFound         = "not_found"
	ReactionErrorMethodNotAllowed = "method_not_allowed"
)

// StatusResponse is the body of the like and dislike endpoints.
type StatusResponse struct {
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
	LoginURL    string `json:"login_url,omitempty"`
	NewLikes    *int64 `json:"new_likes,omitempty"`
	NewDislikes *int64 `json:"new_dislikes,omitempty"`
}

// NewReactionResponse reports the counter a reaction changed.
func NewReactionResponse(q *domain.Quote, kind domain.Reaction) *StatusResponse {
	resp := &StatusResponse{Status: StatusOK}

	if kind == domain.ReactionDislike {
		n := q.Dislikes
		resp.NewDislikes = &n
	} else {
		n := q.Likes
		resp.NewLikes = &n
	}

	return resp
}

// NewStatusError builds a reaction error body.
func NewStatusError(code string) *StatusResponse {
	return &StatusResponse{Status: StatusError, Error: code}
}

// QuoteResponse is the JSON shape of a quote.
type QuoteResponse struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	SourceID   string    `json:"source_id"`
	Source     string    `json:"source,omitempty"`
	SourceType string    `json:"source_type,omitempty"`
	Weight     int       `json:"weight"`
	Views      int64     `json:"views"`
	Likes      int64     `json:"likes"`
	Dislikes   int64     `json:"dislikes"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q *domain.Quote) *QuoteResponse {
	resp := &QuoteResponse{
		ID:        q.ID.String(),
		Text:      q.Text,
		SourceID:  q.SourceID.String(),
		Source:    q.SourceName(),
		Weight:    q.Weight,
		Views:     q.Views,
		Likes:     q.Likes,
		Dislikes:  q.Dislikes,
		IsActive:  q.IsActive,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}

	if q.Source != nil {
		resp.SourceType = q.Source.TypeName()
	}

	return resp
}

// NewQuoteResponses converts a list of quotes, never returning nil.
func NewQuoteResponses(quotes []*domain.Quote) []*QuoteResponse {
	out := make([]*QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, NewQuoteResponse(q))
	}

	return out
}

// SourceTypeResponse is the JSON shape of a source type.
type SourceTypeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSourceTypeResponses converts a list of source types.
func NewSourceTypeResponses(types []*domain.SourceType) []*SourceTypeResponse {
	out := make([]*SourceTypeResponse, 0, len(types))
	for _, st := range types {
		out = append(out, NewSourceTypeResponse(st))
	}

	return out
}

// NewSourceTypeResponse converts a source type.
func NewSourceTypeResponse(st *domain.SourceType) *SourceTypeResponse {
	return &SourceTypeResponse{
		ID:        st.ID.String(),
		Name:      st.Name,
		IsActive:  st.IsActive,
		CreatedAt: st.CreatedAt,
		UpdatedAt: st.UpdatedAt,
	}
}

// SourceResponse is the JSON shape of a source.
type SourceResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SourceTypeID *string   `json:"source_type_id"`
	SourceType   string    `json:"source_type,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewSourceResponse converts a source.
func NewSourceResponse(s *domain.Source) *SourceResponse {
	resp := &SourceResponse{
		ID:         s.ID.String(),
		Name:       s.Name,
		SourceType: s.TypeName(),
		IsActive:   s.IsActive,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}

	if s.SourceTypeID != nil {
		id := s.SourceTypeID.String()
		resp.SourceTypeID = &id
	}

	return resp
}

// NewSourceResponses converts a list of sources.
func NewSourceResponses(sources []*domain.Source) []*SourceResponse {
	out := make([]*SourceResponse, 0, len(sources))
	for _, s := range sources {
		out = append(out, NewSourceResponse(s))
	}

	return out
}

// SourceTypeRequest creates or renames a source type.
type SourceTypeRequest struct {
	Name string `json:"name" validate:"required,notempty,max=100"`
}

// SourceRequest creates or updates a source.
type SourceRequest struct {
	Name         string  `json:"name"           validate:"required,notempty,max=500"`
	SourceTypeID *string `json:"source_type_id" validate:"omitempty,uuid"`
}

// CreateQuoteRequest creates a quote. Counters are not accepted.
type CreateQuoteRequest struct {
	Text     string `json:"text"      validate:"required,notempty"`
	SourceID string `json:"source_id" validate:"required,uuid"`
	Weight   int    `json:"weight"    validate:"omitempty,weight"`
}

// UpdateQuoteRequest changes the given fields of a quote. Only superusers
// may send the counters.
type UpdateQuoteRequest struct {
	Text     *string `json:"text"      validate:"omitempty,notempty"`
	SourceID *string `json:"source_id" validate:"omitempty,uuid"`
	Weight   *int    `json:"weight"    validate:"omitempty,weight"`
	Views    *int64  `json:"views"     validate:"omitempty,gte=0"`
	Likes    *int64  `json:"likes"     validate:"omitempty,gte=0"`
	Dislikes *int64  `json:"dislikes"  validate:"omitempty,gte=0"`
}

// QuoteListRequest holds the admin quote list filters.
type QuoteListRequest struct {
	PageRequest

	Active   *bool  `form:"active"`
	SourceID string `form:"source_id" validate:"omitempty,uuid"`
}

// ActiveFilter is the optional ?active= query filter.
type ActiveFilter struct {
	Active *bool `form:"active"`
}

// LoginForm is the body of the login form.
type LoginForm struct {
	Username string `form:"username" validate:"required,notempty,max=150"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}

// AddQuoteForm is the body of the add-quote form. Numeric and id fields are
// kept as strings so bad input re-renders the form instead of failing binding.
type AddQuoteForm struct {
	Text       string `form:"text"`
	SourceName string `form:"source_name"`
	SourceType string `form:"source_type"`
	Weight     string `form:"weight"`
}
