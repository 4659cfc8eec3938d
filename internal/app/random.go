package app

import (
	"math/rand/v2"
	"path"

	"github.com/jsamuelsen/quotebook/internal/ports"
)

// Randomizer draws from the math/rand/v2 global generator, which is seeded
// at startup and safe for concurrent use.
type Randomizer struct{}

var _ ports.Randomizer = Randomizer{}

// NewRandomizer returns the process-wide randomizer.
func NewRandomizer() Randomizer {
	return Randomizer{}
}

// Float64 returns a number in [0, 1).
func (Randomizer) Float64() float64 {
	return rand.Float64()
}

// IntN returns a number in [0, n).
func (Randomizer) IntN(n int) int {
	return rand.IntN(n)
}

// BackgroundPicker chooses the home page background uniformly.
type BackgroundPicker struct {
	images []string
	random ports.Randomizer
}

// NewBackgroundPicker picks among images, file names relative to the
// image directory of the static root.
func NewBackgroundPicker(images []string, random ports.Randomizer) *BackgroundPicker {
	if random == nil {
		random = NewRandomizer()
	}

	return &BackgroundPicker{
		images: append([]string(nil), images...),
		random: random,
	}
}

// Pick returns a path such as "image/background1.jpg", or "" when no image
// is configured.
func (p *BackgroundPicker) Pick() string {
	if len(p.images) == 0 {
		return ""
	}

	return path.Join("image", p.images[p.random.IntN(len(p.images))])
}
