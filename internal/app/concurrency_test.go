package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBoth(t *testing.T) {
	a, b, err := loadBoth(context.Background(),
		func(context.Context) (int, error) { return 7, nil },
		func(context.Context) (string, error) { return "seven", nil },
	)

	require.NoError(t, err)
	assert.Equal(t, 7, a)
	assert.Equal(t, "seven", b)
}

func TestLoadBoth_FailureCancelsSibling(t *testing.T) {
	boom := errors.New("boom")

	a, b, err := loadBoth(context.Background(),
		func(context.Context) (int, error) { return 0, boom },
		func(ctx context.Context) (string, error) {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(5 * time.Second):
				return "late", nil
			}
		},
	)

	require.ErrorIs(t, err, boom)
	assert.Zero(t, a)
	assert.Empty(t, b)
}

func TestRepeat_KeepsGoingAfterFailures(t *testing.T) {
	var calls atomic.Int32

	results := repeat(context.Background(), 6, 2, func(context.Context) (int32, error) {
		n := calls.Add(1)
		if n%2 == 0 {
			return 0, errors.New("even call")
		}

		return n, nil
	})

	require.Len(t, results, 6)
	assert.Equal(t, int32(6), calls.Load())

	var failed int
	for _, r := range results {
		if r.err != nil {
			failed++
		}
	}
	assert.Equal(t, 3, failed)
}

func TestRepeat_RespectsLimit(t *testing.T) {
	var inFlight, peak atomic.Int32

	repeat(context.Background(), 10, 3, func(context.Context) (struct{}, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)

		return struct{}{}, nil
	})

	assert.LessOrEqual(t, peak.Load(), int32(3))
}
