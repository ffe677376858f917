// Package models defines data structures for curve capture and export.
package models

// Point is a normalized curve sample.
type Point struct {
	// X is the fractional position across the time window, in [0,1].
	X float64 `json:"x" yaml:"x"`
	// Y is the fractional position between axis min (0) and max (1).
	Y float64 `json:"y" yaml:"y"`
}

// InUnitSquare reports whether both coordinates lie in [0,1].
func (p Point) InUnitSquare() bool {
	return p.X >= 0 && p.X <= 1 && p.Y >= 0 && p.Y <= 1
}
