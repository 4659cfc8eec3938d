package ports

import "context"

// Feature flag names.
const (
	// FlagQuoteSubmissions enables the public add-quote form.
	FlagQuoteSubmissions = "quote_submissions"

	// FlagLiveReactions enables the websocket reaction feed.
	FlagLiveReactions = "live_reactions"
)

// FeatureFlags defines the contract for feature flag evaluation.
// This port allows the application to check feature enablement without
// knowing the underlying provider.
//
// Example usage:
//
//	if !flags.IsEnabled(ctx, ports.FlagQuoteSubmissions, true) {
//	    return domain.NewForbiddenError("submit quote", "submissions are closed")
//	}
type FeatureFlags interface {
	// IsEnabled checks if a boolean feature flag is enabled.
	// Returns defaultValue if the flag doesn't exist.
	IsEnabled(ctx context.Context, flag string, defaultValue bool) bool
}
