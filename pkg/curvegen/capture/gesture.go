package capture

import "github.com/ukaji3/curvegen-go/pkg/curvegen/models"

// Gesture is the working buffer of one continuous drag.
//
// It is separate from any curve: points only reach a curve through the
// slice returned by End, which the caller commits as a whole.
type Gesture struct {
	region Region
	active bool
	buf    []models.Point
}

// NewGesture creates an idle gesture over region.
func NewGesture(region Region) *Gesture {
	return &Gesture{region: region}
}

// Active reports whether a drag is in progress.
func (g *Gesture) Active() bool {
	return g.active
}

// Start begins a drag at (x, y). An accepted sample discards any previous
// buffer, seeds a one-point sequence and activates the gesture. A sample
// outside the region is ignored and leaves the gesture untouched.
func (g *Gesture) Start(x, y float64) bool {
	p, ok := g.region.Normalize(x, y)
	if !ok {
		return false
	}
	g.buf = []models.Point{p}
	g.active = true
	return true
}

// Extend offers the next sample of the drag. It is appended only when the
// gesture is active, the sample is inside the region, and its normalized x
// is strictly greater than the last accepted x. Curves are drawn left to
// right; everything else is dropped.
func (g *Gesture) Extend(x, y float64) bool {
	if !g.active {
		return false
	}
	p, ok := g.region.Normalize(x, y)
	if !ok {
		return false
	}
	if n := len(g.buf); n > 0 && p.X <= g.buf[n-1].X {
		return false
	}
	g.buf = append(g.buf, p)
	return true
}

// End finishes the drag and returns the committed sequence. The returned
// slice is owned by the caller; later gestures never modify it.
func (g *Gesture) End() []models.Point {
	g.active = false
	return g.Points()
}

// Points returns a copy of the working buffer.
func (g *Gesture) Points() []models.Point {
	if len(g.buf) == 0 {
		return nil
	}
	return append([]models.Point(nil), g.buf...)
}

// Reset clears the buffer and deactivates the gesture.
func (g *Gesture) Reset() {
	g.active = false
	g.buf = nil
}

// Replay feeds a recorded stroke of pixel samples through Start, Extend
// and End. The first in-bounds sample starts the drag; samples before it
// are discarded.
func (g *Gesture) Replay(stroke []models.Point) []models.Point {
	g.Reset()
	for _, s := range stroke {
		if !g.active {
			g.Start(s.X, s.Y)
			continue
		}
		g.Extend(s.X, s.Y)
	}
	return g.End()
}
