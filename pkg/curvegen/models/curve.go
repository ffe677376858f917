package models

// MaxRoughness is the upper bound of a curve's roughness level.
const MaxRoughness = 100

// Curve represents one user-drawn value curve.
type Curve struct {
	// ID is the opaque identifier, unique within a curve set.
	ID string `json:"id" yaml:"id"`
	// Name is the display name; also the column key on export.
	Name string `json:"name" yaml:"name"`
	// Points is the committed point sequence with non-decreasing X.
	Points []Point `json:"points" yaml:"points"`
	// Color is the display color (CSS color string).
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	// Visible controls rendering only; export ignores it.
	Visible bool `json:"visible" yaml:"visible"`
	// Roughness is the jitter level, 0 (smooth) to 100 (rough).
	Roughness int `json:"roughness" yaml:"roughness"`
}

// HasData reports whether the curve has any committed points.
func (c Curve) HasData() bool {
	return len(c.Points) > 0
}

// Clone returns a copy that does not share the point slice.
func (c Curve) Clone() Curve {
	out := c
	if c.Points != nil {
		out.Points = append([]Point(nil), c.Points...)
	}
	return out
}

// Palette holds the default curve colors, assigned in rotation.
var Palette = []string{
	"hsl(175, 70%, 50%)", // cyan
	"hsl(280, 70%, 60%)", // purple
	"hsl(35, 90%, 55%)",  // orange
	"hsl(340, 70%, 55%)", // pink
	"hsl(140, 60%, 50%)", // green
}

// PaletteColor returns the palette entry for the i-th curve.
func PaletteColor(i int) string {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}
