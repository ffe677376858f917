package document

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ukaji3/curvegen-go/pkg/curvegen"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/capture"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/models"
)

var now = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

const sampleYAML = `
axis:
  y_min: 10
  y_max: 60
start_date: 2024-04-01
curves:
  - id: a
    name: Sales
    roughness: 20
    visible: true
    points:
      - {x: 0, y: 0}
      - {x: 0.5, y: 1}
      - {x: 1, y: 0}
  - name: Empty
    points: []
events:
  - date: 2024-05-01
    label: Launch
`

func TestDecodeYAML(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleYAML), FormatYAML, now)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if doc.Axis != (models.AxisConfig{YMin: 10, YMax: 60}) {
		t.Errorf("Axis = %+v", doc.Axis)
	}
	if got := doc.StartDate.Format("2006-01-02"); got != "2024-04-01" {
		t.Errorf("StartDate = %s", got)
	}
	if len(doc.Curves) != 2 {
		t.Fatalf("Expected 2 curves, got %d", len(doc.Curves))
	}
	if doc.Curves[0].ID != "a" || doc.Curves[0].Roughness != 20 || len(doc.Curves[0].Points) != 3 {
		t.Errorf("first curve = %+v", doc.Curves[0])
	}
	if doc.Curves[1].ID == "" {
		t.Errorf("missing curve id was not assigned")
	}
	if len(doc.Events) != 1 || doc.Events[0].Label != "Launch" || doc.Events[0].ID == "" {
		t.Errorf("events = %+v", doc.Events)
	}
}

func TestDecodeDefaults(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"curves": []}`), FormatJSON, now)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if doc.Axis != models.DefaultAxis() {
		t.Errorf("Axis = %+v, expected default", doc.Axis)
	}
	if got := doc.StartDate.Format("2006-01-02"); got != "2026-04-01" {
		t.Errorf("StartDate = %s, expected 2026-04-01", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
		target error
	}{
		{"roughness", `{"curves":[{"name":"A","roughness":150,"points":[]}]}`, FormatJSON, curvegen.ErrRoughnessRange},
		{"duplicate", `{"curves":[{"id":"x","name":"A","points":[]},{"id":"x","name":"B","points":[]}]}`, FormatJSON, curvegen.ErrDuplicateCurveID},
		{"outside", `{"curves":[{"name":"A","points":[{"x":1.5,"y":0}]}]}`, FormatJSON, curvegen.ErrInvalidPoints},
		{"backwards", `{"curves":[{"name":"A","points":[{"x":0.5,"y":0},{"x":0.2,"y":0}]}]}`, FormatJSON, curvegen.ErrInvalidPoints},
		{"reserved name", `{"curves":[{"name":"Date","points":[]}]}`, FormatJSON, curvegen.ErrReservedName},
		{"format", `{}`, Format("toml"), curvegen.ErrInvalidFormat},
	}

	for _, tt := range tests {
		_, err := Decode(strings.NewReader(tt.input), tt.format, now)
		if !errors.Is(err, tt.target) {
			t.Errorf("%s: error = %v, expected %v", tt.name, err, tt.target)
		}
	}

	if _, err := Decode(strings.NewReader(`{"startDate":"April"}`), FormatJSON, now); err == nil {
		t.Errorf("bad start date accepted")
	}
	if _, err := Decode(strings.NewReader(`{"colour":"red"}`), FormatJSON, now); err == nil {
		t.Errorf("unknown field accepted")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleYAML), FormatYAML, now)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	for _, name := range []string{"doc.yaml", "doc.json"} {
		path := filepath.Join(t.TempDir(), name)
		if err := Save(path, doc); err != nil {
			t.Fatalf("Save(%s) failed: %v", name, err)
		}
		got, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s) failed: %v", name, err)
		}

		var a, b bytes.Buffer
		if err := Encode(&a, doc, FormatJSON); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		if err := Encode(&b, got, FormatJSON); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		if a.String() != b.String() {
			t.Errorf("%s: round trip changed the document:\n%s\nvs\n%s", name, a.String(), b.String())
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		ok       bool
	}{
		{"a.yaml", FormatYAML, true},
		{"a.YML", FormatYAML, true},
		{"dir/a.json", FormatJSON, true},
		{"a.xlsx", "", false},
	}

	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err == nil) != tt.ok || got != tt.expected {
			t.Errorf("FormatFromPath(%q) = %q, %v", tt.path, got, err)
		}
	}
}

func TestDecodeGestures(t *testing.T) {
	input := `{"strokes":[[{"x":80,"y":440},{"x":760,"y":40}]]}`
	g, err := DecodeGestures(strings.NewReader(input), FormatJSON)
	if err != nil {
		t.Fatalf("DecodeGestures failed: %v", err)
	}
	if g.Region != capture.DefaultRegion() {
		t.Errorf("Region = %+v, expected default", g.Region)
	}
	if len(g.PixelStrokes()) != 1 || len(g.PixelStrokes()[0]) != 2 {
		t.Errorf("strokes = %+v", g.Strokes)
	}
}

func TestPixelStrokesViewport(t *testing.T) {
	g := &Gestures{
		Region:   capture.DefaultRegion(),
		Viewport: &capture.Viewport{Width: 400, Height: 250},
		Strokes:  [][]models.Point{{{X: 40, Y: 220}}},
	}
	got := g.PixelStrokes()
	if got[0][0] != (models.Point{X: 80, Y: 440}) {
		t.Errorf("PixelStrokes = %+v, expected {80 440}", got[0][0])
	}
}
