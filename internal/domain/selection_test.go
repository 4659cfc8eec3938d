package domain

import (
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weighted(weights ...int) []*Quote {
	quotes := make([]*Quote, 0, len(weights))
	for _, w := range weights {
		quotes = append(quotes, &Quote{Record: Record{ID: uuid.New(), IsActive: true}, Weight: w})
	}

	return quotes
}

func TestPickWeighted_Empty(t *testing.T) {
	assert.Nil(t, PickWeighted(nil, 0.5))
	assert.Nil(t, PickWeighted([]*Quote{}, 0.5))
}

func TestPickWeighted_AllZeroWeights(t *testing.T) {
	assert.Nil(t, PickWeighted(weighted(0, 0, 0), 0.3))
}

func TestPickWeighted_Deterministic(t *testing.T) {
	quotes := weighted(1, 100)

	tests := []struct {
		name     string
		u        float64
		expected int
	}{
		{name: "zero picks first", u: 0, expected: 0},
		{name: "inside first bucket", u: 0.5 / 101, expected: 0},
		{name: "just past first bucket", u: 1.5 / 101, expected: 1},
		{name: "middle picks heavy quote", u: 50.0 / 101, expected: 1},
		{name: "top of range", u: 0.999999, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PickWeighted(quotes, tt.u)
			require.NotNil(t, got)
			assert.Equal(t, quotes[tt.expected].ID, got.ID)

			// Same input, same answer.
			assert.Equal(t, got.ID, PickWeighted(quotes, tt.u).ID)
		})
	}
}

func TestPickWeighted_SkipsZeroWeights(t *testing.T) {
	quotes := weighted(0, 3, 0)

	for _, u := range []float64{0, 0.2, 0.7, 0.99} {
		got := PickWeighted(quotes, u)
		require.NotNil(t, got)
		assert.Equal(t, quotes[1].ID, got.ID)
	}
}

func TestPickWeighted_Distribution(t *testing.T) {
	quotes := weighted(1, 3, 6)
	rng := rand.New(rand.NewPCG(42, 1024))

	const trials = 100_000
	counts := make(map[uuid.UUID]int, len(quotes))

	for range trials {
		counts[PickWeighted(quotes, rng.Float64()).ID]++
	}

	for _, q := range quotes {
		expected := float64(q.Weight) / 10
		got := float64(counts[q.ID]) / trials
		assert.InDelta(t, expected, got, 0.01, "weight %d", q.Weight)
	}
}
