// Package capture turns raw pointer samples from a drawing gesture into
// normalized, x-monotonic curve points.
package capture

import "github.com/ukaji3/curvegen-go/pkg/curvegen/models"

// Margin is the four-sided padding around the drawable area, in pixels.
type Margin struct {
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Left   float64 `json:"left" yaml:"left"`
}

// Region is the capture surface in its internal pixel space.
type Region struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Margin Margin  `json:"margin" yaml:"margin"`
}

// DefaultRegion returns the 800x500 drawing surface with axis margins.
func DefaultRegion() Region {
	return Region{
		Width:  800,
		Height: 500,
		Margin: Margin{Top: 40, Right: 40, Bottom: 60, Left: 80},
	}
}

// InnerWidth returns the drawable width.
func (r Region) InnerWidth() float64 {
	return r.Width - r.Margin.Left - r.Margin.Right
}

// InnerHeight returns the drawable height.
func (r Region) InnerHeight() float64 {
	return r.Height - r.Margin.Top - r.Margin.Bottom
}

// Contains reports whether (x, y) lies inside the drawable area, edges included.
func (r Region) Contains(x, y float64) bool {
	return x >= r.Margin.Left && x <= r.Width-r.Margin.Right &&
		y >= r.Margin.Top && y <= r.Height-r.Margin.Bottom
}

// Normalize maps a pixel sample into [0,1]x[0,1], with y growing upwards.
// Samples outside the drawable area, or any sample on a region with no
// drawable area, return false.
func (r Region) Normalize(x, y float64) (models.Point, bool) {
	w, h := r.InnerWidth(), r.InnerHeight()
	if w <= 0 || h <= 0 || !r.Contains(x, y) {
		return models.Point{}, false
	}
	return models.Point{
		X: (x - r.Margin.Left) / w,
		Y: 1 - (y-r.Margin.Top)/h,
	}, true
}

// Viewport is where the region is displayed, in client coordinates.
// Its size may differ from the region's pixel size (CSS scaling, HiDPI).
type Viewport struct {
	Left   float64 `json:"left" yaml:"left"`
	Top    float64 `json:"top" yaml:"top"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// FromClient maps a client-space position into the region's pixel space.
// A viewport without size is treated as unscaled.
func (r Region) FromClient(vp Viewport, cx, cy float64) (x, y float64) {
	sx, sy := 1.0, 1.0
	if vp.Width > 0 {
		sx = r.Width / vp.Width
	}
	if vp.Height > 0 {
		sy = r.Height / vp.Height
	}
	return (cx - vp.Left) * sx, (cy - vp.Top) * sy
}
