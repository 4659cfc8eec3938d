// Package flags evaluates feature flags from configuration.
package flags

import (
	"context"
	"maps"
	"strings"
	"sync"

	"github.com/jsamuelsen/quotebook/internal/ports"
)

// Static is a ports.FeatureFlags backed by a fixed map, usually the
// features section of the configuration. Flag names are case-insensitive.
type Static struct {
	mu    sync.RWMutex
	flags map[string]bool
}

var _ ports.FeatureFlags = (*Static)(nil)

// NewStatic creates flags from values. The map is copied.
func NewStatic(values map[string]bool) *Static {
	flags := make(map[string]bool, len(values))
	for name, on := range values {
		flags[normalize(name)] = on
	}

	return &Static{flags: flags}
}

// IsEnabled returns the configured value of flag or defaultValue when it is unset.
func (s *Static) IsEnabled(_ context.Context, flag string, defaultValue bool) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if on, ok := s.flags[normalize(flag)]; ok {
		return on
	}

	return defaultValue
}

// Set overrides one flag at runtime.
func (s *Static) Set(flag string, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flags[normalize(flag)] = on
}

// Snapshot returns a copy of every configured flag.
func (s *Static) Snapshot() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.flags)
}

// koanf lowercases keys and env names use underscores; accept dashes too.
func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}
