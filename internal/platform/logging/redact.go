package logging

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	// Session cookies are HS256 JWTs.
	jwtPattern = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)

	authHeaderPattern = regexp.MustCompile(`(?i)^(bearer|basic)\s+.+$`)

	// Postgres URLs carry the password in the userinfo part.
	dsnPasswordPattern = regexp.MustCompile(`^postgres(ql)?://[^:/@]+:[^@]+@`)
)

// DefaultRedactOptions masks the secrets quotebook handles: passwords and
// their hashes, the session secret and cookie, authorization headers and
// database DSNs with credentials.
func DefaultRedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, 16)

	for _, field := range []string{
		"password", "password_hash", "PasswordHash",
		"session_secret", "SessionSecret", "session", "cookie", "set_cookie",
		"token", "authorization", "dsn", "DSN",
	} {
		opts = append(opts, masq.WithFieldName(field))
	}

	return append(opts,
		masq.WithFieldPrefix("password"),
		masq.WithFieldPrefix("secret"),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(authHeaderPattern),
		masq.WithRegex(dsnPasswordPattern),
	)
}

// NewReplaceAttr returns a slog ReplaceAttr that redacts with the default
// options plus opts.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}

// redactingHandler applies a ReplaceAttr function in front of handlers that
// have no ReplaceAttr option of their own.
type redactingHandler struct {
	next    slog.Handler
	replace func([]string, slog.Attr) slog.Attr
	groups  []string
}

func newRedactingHandler(next slog.Handler, replace func([]string, slog.Attr) slog.Attr) *redactingHandler {
	return &redactingHandler{next: next, replace: replace}
}

func (h *redactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *redactingHandler) Handle(ctx context.Context, r slog.Record) error { //nolint:gocritic // slog.Handler interface requires value
	out := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(h.replace(h.groups, a))
		return true
	})

	return h.next.Handle(ctx, out)
}

func (h *redactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = h.replace(h.groups, a)
	}

	return &redactingHandler{next: h.next.WithAttrs(redacted), replace: h.replace, groups: h.groups}
}

func (h *redactingHandler) WithGroup(name string) slog.Handler {
	groups := append(append([]string{}, h.groups...), name)

	return &redactingHandler{next: h.next.WithGroup(name), replace: h.replace, groups: groups}
}
