// Package interp evaluates normalized curves by piecewise-linear interpolation.
package interp

import (
	"math"

	"github.com/ukaji3/curvegen-go/pkg/curvegen/models"
)

// SinglePointTolerance is how far from a lone point a curve is still defined.
const SinglePointTolerance = 0.01

// Evaluate returns the curve's normalized y at x.
// The boolean is false where the curve has no data: an empty sequence,
// away from a single point, or outside [first.X, last.X]. There is no
// extrapolation and no clamping.
func Evaluate(points []models.Point, x float64) (float64, bool) {
	switch len(points) {
	case 0:
		return 0, false
	case 1:
		if math.Abs(x-points[0].X) < SinglePointTolerance {
			return points[0].Y, true
		}
		return 0, false
	}

	lo, hi, _ := Domain(points)
	if x < lo || x > hi {
		return 0, false
	}

	left, right := points[0], points[len(points)-1]
	for i := 0; i < len(points)-1; i++ {
		if points[i].X <= x && points[i+1].X >= x {
			left, right = points[i], points[i+1]
			break
		}
	}

	switch {
	case x == left.X:
		return left.Y, true
	case x == right.X:
		return right.Y, true
	case right.X == left.X:
		return left.Y, true
	}
	t := (x - left.X) / (right.X - left.X)
	return left.Y + t*(right.Y-left.Y), true
}

// Domain returns the x range covered by the point sequence.
// A single point covers only itself; ok is false for an empty sequence.
func Domain(points []models.Point) (lo, hi float64, ok bool) {
	if len(points) == 0 {
		return 0, 0, false
	}
	return points[0].X, points[len(points)-1].X, true
}
