package shimmer

import (
	"math"
	"sync"
	"time"
)

// Band geometry. The highlight travels along a virtual axis that pads
// the text on both sides so it enters from off-screen and leaves the
// same way, which keeps the wrap from 1.0 back to 0.0 seamless.
const (
	sweepPadding  = 10
	bandHalfWidth = 5
)

// SweepDuration is how long one full sweep of the implicit clock takes.
const SweepDuration = 2 * time.Second

var processStart = sync.OnceValue(time.Now)

// intensityLUT holds the raised-cosine intensity for each distance from
// the band center, index 0 (center) through bandHalfWidth (edge).
var intensityLUT = sync.OnceValue(func() [bandHalfWidth + 1]float64 {
	var lut [bandHalfWidth + 1]float64
	for dist := 0; dist <= bandHalfWidth; dist++ {
		x := math.Pi * float64(dist) / float64(bandHalfWidth)
		lut[dist] = 0.5 * (1 + math.Cos(x))
	}

	return lut
})

// Phase maps an elapsed duration onto the animation cycle. One cycle
// takes SweepDuration; the result is always in [0, 1). Callers driving
// SpansAtPhase from their own clock can use this to match the timing of
// the implicit entry points.
func Phase(elapsed time.Duration) float64 {
	return normalizePhase(elapsed.Seconds() / SweepDuration.Seconds())
}

// normalizePhase wraps an arbitrary phase into [0, 1). The phase is a
// cyclic quantity: 1.0 is the same as 0.0 and negative values wrap to
// their positive equivalent. Never an error.
func normalizePhase(phase float64) float64 {
	p := math.Mod(phase, 1)
	if p < 0 {
		p++
	}

	return p
}

// bandIntensity returns the highlight intensity in [0, 1] for the
// grapheme at index while the band center sits at pos on the padded
// axis. Zero outside the band, 1 at its center.
func bandIntensity(index, pos int) float64 {
	dist := index + sweepPadding - pos
	if dist < 0 {
		dist = -dist
	}

	if dist > bandHalfWidth {
		return 0
	}

	return intensityLUT()[dist]
}
