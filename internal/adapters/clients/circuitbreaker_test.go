package clients

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock returns a breaker whose time only moves through advance.
func fakeClock(cfg CircuitBreakerConfig) (*CircuitBreaker, func(time.Duration)) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	cb := NewCircuitBreaker(cfg)
	cb.now = func() time.Time { return now }

	return cb, func(d time.Duration) { now = now.Add(d) }
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 3, Timeout: time.Minute, HalfOpenLimit: 1})

	assert.Equal(t, StateClosed, cb.State())
	assert.True(t, cb.Allow())

	cb.RecordFailure()
	cb.RecordFailure()
	cb.RecordSuccess()
	cb.RecordFailure()
	cb.RecordFailure()
	assert.Equal(t, StateClosed, cb.State(), "a success resets the streak")

	cb.RecordFailure()
	assert.Equal(t, StateOpen, cb.State())
	assert.False(t, cb.Allow())
}

func TestCircuitBreaker_HalfOpen(t *testing.T) {
	tests := []struct {
		name    string
		outcome func(cb *CircuitBreaker)
		want    State
	}{
		{
			name: "successes close",
			outcome: func(cb *CircuitBreaker) {
				cb.RecordSuccess()
				cb.RecordSuccess()
			},
			want: StateClosed,
		},
		{
			name:    "one success keeps probing",
			outcome: func(cb *CircuitBreaker) { cb.RecordSuccess() },
			want:    StateHalfOpen,
		},
		{
			name:    "failure reopens",
			outcome: func(cb *CircuitBreaker) { cb.RecordFailure() },
			want:    StateOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb, advance := fakeClock(CircuitBreakerConfig{MaxFailures: 1, Timeout: time.Second, HalfOpenLimit: 2})

			cb.RecordFailure()
			assert.False(t, cb.Allow())

			advance(2 * time.Second)
			require.True(t, cb.Allow())
			require.Equal(t, StateHalfOpen, cb.State())

			tt.outcome(cb)
			assert.Equal(t, tt.want, cb.State())
		})
	}
}

func TestCircuitBreaker_LimitsProbes(t *testing.T) {
	cb, advance := fakeClock(CircuitBreakerConfig{MaxFailures: 1, Timeout: time.Second, HalfOpenLimit: 2})

	cb.RecordFailure()
	advance(time.Second)

	assert.True(t, cb.Allow())
	assert.True(t, cb.Allow())
	assert.False(t, cb.Allow())

	cb.RecordSuccess()
	assert.True(t, cb.Allow(), "a finished probe frees a slot")
}

func TestCircuitBreaker_ZeroThresholds(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{})

	cb.RecordFailure()
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	var (
		mu          sync.Mutex
		transitions [][2]State
	)

	cb := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 1, Timeout: time.Minute, HalfOpenLimit: 1})
	cb.OnStateChange(func(from, to State) {
		mu.Lock()
		defer mu.Unlock()

		transitions = append(transitions, [2]State{from, to})
	})

	cb.RecordFailure()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return len(transitions) == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, [2]State{StateClosed, StateOpen}, transitions[0])
}

func TestCircuitBreaker_Concurrent(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 50, Timeout: time.Second, HalfOpenLimit: 5})

	var wg sync.WaitGroup

	for i := range 500 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if !cb.Allow() {
				return
			}

			if i%2 == 0 {
				cb.RecordSuccess()
			} else {
				cb.RecordFailure()
			}
		}()
	}

	wg.Wait()

	assert.Contains(t, []State{StateClosed, StateOpen, StateHalfOpen}, cb.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(42).String())
}
