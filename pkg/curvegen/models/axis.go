package models

// AxisConfig defines the affine map from normalized y to actual values.
// No ordering is enforced between YMin and YMax.
type AxisConfig struct {
	// YMin is the value at normalized y = 0.
	YMin float64 `json:"yMin" yaml:"y_min"`
	// YMax is the value at normalized y = 1.
	YMax float64 `json:"yMax" yaml:"y_max"`
}

// DefaultAxis returns the default {0, 100} axis.
func DefaultAxis() AxisConfig {
	return AxisConfig{YMin: 0, YMax: 100}
}

// Range returns YMax - YMin. Zero and negative ranges are allowed.
func (a AxisConfig) Range() float64 {
	return a.YMax - a.YMin
}

// Scale maps a normalized y onto the axis.
func (a AxisConfig) Scale(normalized float64) float64 {
	return a.YMin + normalized*(a.YMax-a.YMin)
}
