package document

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ukaji3/curvegen-go/pkg/curvegen"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/capture"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/models"
	"gopkg.in/yaml.v3"
)

// Gestures is a recording of pointer strokes over a drawing surface.
// Each stroke is one continuous drag of raw samples.
type Gestures struct {
	// Region is the capture surface; zero means capture.DefaultRegion().
	Region capture.Region `json:"region" yaml:"region"`
	// Viewport, when set, means samples are client coordinates that must
	// be mapped into the region's pixel space first.
	Viewport *capture.Viewport `json:"viewport,omitempty" yaml:"viewport,omitempty"`
	// Strokes holds the raw samples, one slice per drag.
	Strokes [][]models.Point `json:"strokes" yaml:"strokes"`
}

// LoadGestures reads a gesture recording; the format follows the extension.
func LoadGestures(path string) (*Gestures, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeGestures(f, format)
}

// DecodeGestures reads a gesture recording.
func DecodeGestures(r io.Reader, format Format) (*Gestures, error) {
	var g Gestures
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&g); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&g); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", curvegen.ErrInvalidFormat, format)
	}

	if g.Region == (capture.Region{}) {
		g.Region = capture.DefaultRegion()
	}
	return &g, nil
}

// PixelStrokes returns the strokes in the region's pixel space.
func (g *Gestures) PixelStrokes() [][]models.Point {
	if g.Viewport == nil {
		return g.Strokes
	}
	out := make([][]models.Point, len(g.Strokes))
	for i, stroke := range g.Strokes {
		mapped := make([]models.Point, len(stroke))
		for j, s := range stroke {
			x, y := g.Region.FromClient(*g.Viewport, s.X, s.Y)
			mapped[j] = models.Point{X: x, Y: y}
		}
		out[i] = mapped
	}
	return out
}
