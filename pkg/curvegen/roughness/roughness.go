// Package roughness applies deterministic pseudorandom jitter to curve values.
//
// The generator is a pure function of its seed so that repeated exports of
// an unchanged curve produce identical values. It is not a source of
// randomness in any statistical or cryptographic sense.
package roughness

import (
	"math"

	"github.com/ukaji3/curvegen-go/pkg/curvegen/models"
)

// MaxShare is the fraction of the axis range reachable at full roughness.
const MaxShare = 0.1

// Random maps a seed to a value in [0,1) as frac(sin(seed*9999)*10000).
func Random(seed float64) float64 {
	x := math.Sin(seed*9999) * 10000
	r := x - math.Floor(x)
	if r >= 1 {
		// floor of a huge negative x can round r up to 1
		return 0
	}
	return r
}

// MaxVariation returns the largest absolute offset Jitter may apply.
func MaxVariation(roughness int, span float64) float64 {
	return float64(roughness) / 100 * MaxShare * span
}

// Jitter nudges value by a seeded offset in [-1,1) * MaxVariation.
// A roughness of 0 returns value unchanged regardless of seed.
func Jitter(value float64, roughness int, seed, span float64) float64 {
	if roughness == 0 {
		return value
	}
	offset := (Random(seed) - 0.5) * 2
	return value + offset*MaxVariation(roughness, span)
}

// Clamp limits roughness to [0, models.MaxRoughness].
func Clamp(roughness int) int {
	switch {
	case roughness < 0:
		return 0
	case roughness > models.MaxRoughness:
		return models.MaxRoughness
	}
	return roughness
}
