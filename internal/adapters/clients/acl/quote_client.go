// Package acl adapts external quote catalogs to the import port. Remote
// payloads and status codes never leave this package.
package acl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsamuelsen/quotebook/internal/adapters/clients"
	"github.com/jsamuelsen/quotebook/internal/platform/logging"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

const randomPath = "/random"

// QuoteClientConfig contains configuration for the quote client.
type QuoteClientConfig struct {
	// Client must point at the catalog's base URL.
	Client *clients.Client
	Logger *slog.Logger
}

// QuoteClient reads random quotes from a quotable-style catalog.
type QuoteClient struct {
	client *clients.Client
	logger *slog.Logger
}

var (
	_ ports.QuoteSource   = (*QuoteClient)(nil)
	_ ports.HealthChecker = (*QuoteClient)(nil)
)

// NewQuoteClient creates a catalog adapter. It panics without a client.
func NewQuoteClient(cfg QuoteClientConfig) *QuoteClient {
	if cfg.Client == nil {
		panic("acl: QuoteClient requires a client")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteClient{client: cfg.Client, logger: logger.With(slog.String("component", "acl.quotes"))}
}

// remoteQuote is the catalog's wire format.
type remoteQuote struct {
	ID      string   `json:"_id"`
	Content string   `json:"content"`
	Author  string   `json:"author"`
	Tags    []string `json:"tags"`
}

// RandomQuote fetches one random quote. Failures come back as
// domain.ErrUnavailable or domain.ErrValidation.
func (c *QuoteClient) RandomQuote(ctx context.Context) (*ports.RemoteQuote, error) {
	c.logger.Log(ctx, logging.LevelTrace, "fetching random quote", slog.String("path", randomPath))

	var payload remoteQuote
	if err := c.client.GetJSON(ctx, randomPath, &payload); err != nil {
		return nil, mapError(c.client.Name(), "fetch random quote", err)
	}

	quote := &ports.RemoteQuote{
		Text:   strings.Join(strings.Fields(payload.Content), " "),
		Author: strings.TrimSpace(payload.Author),
	}

	c.logger.Log(ctx, logging.LevelTrace, "received remote quote",
		slog.String("remote_id", payload.ID),
		slog.String("author", quote.Author),
	)

	return quote, nil
}

// Name implements ports.HealthChecker.
func (c *QuoteClient) Name() string {
	return c.client.Name()
}

// Check implements ports.HealthChecker. It fails fast while the circuit is open.
func (c *QuoteClient) Check(ctx context.Context) error {
	if c.client.CircuitState() == clients.StateOpen {
		return clients.ErrCircuitOpen
	}

	resp, err := c.client.Get(ctx, randomPath)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s returned HTTP %d", c.client.Name(), resp.StatusCode)
	}

	return nil
}
