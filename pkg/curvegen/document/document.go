// Package document reads and writes curve documents as YAML or JSON.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ukaji3/curvegen-go/pkg/curvegen"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/models"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/series"
	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %s", curvegen.ErrInvalidFormat, path)
}

// fileDocument is the on-disk shape. Dates are yyyy-MM-dd strings.
type fileDocument struct {
	Axis      *models.AxisConfig `json:"axis,omitempty" yaml:"axis,omitempty"`
	StartDate string             `json:"startDate,omitempty" yaml:"start_date,omitempty"`
	Curves    []models.Curve     `json:"curves" yaml:"curves"`
	Events    []fileEvent        `json:"events,omitempty" yaml:"events,omitempty"`
}

type fileEvent struct {
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Date  string `json:"date" yaml:"date"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Load reads a document file; the format follows the extension.
func Load(path string) (*models.Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f, format, time.Now())
}

// Decode reads a document. Missing fields take defaults: the {0,100} axis,
// a start date of April 1 in now's year, and fresh curve and event ids.
func Decode(r io.Reader, format Format, now time.Time) (*models.Document, error) {
	var fd fileDocument
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&fd); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&fd); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", curvegen.ErrInvalidFormat, format)
	}

	doc := &models.Document{
		Axis:   models.DefaultAxis(),
		Curves: fd.Curves,
	}
	if fd.Axis != nil {
		doc.Axis = *fd.Axis
	}

	if fd.StartDate == "" {
		doc.StartDate = curvegen.DefaultStart(now)
	} else {
		start, err := parseDate(fd.StartDate)
		if err != nil {
			return nil, fmt.Errorf("start date: %w", err)
		}
		doc.StartDate = start
	}

	for _, fe := range fd.Events {
		d, err := parseDate(fe.Date)
		if err != nil {
			return nil, fmt.Errorf("event %q: %w", fe.Label, err)
		}
		id := fe.ID
		if id == "" {
			id = uuid.NewString()
		}
		doc.Events = append(doc.Events, models.EventLine{ID: id, Date: d, Label: fe.Label})
	}

	for i := range doc.Curves {
		if doc.Curves[i].ID == "" {
			doc.Curves[i].ID = uuid.NewString()
		}
	}

	if err := Validate(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Validate checks the curve invariants of a document: unique ids, names
// other than the date column, roughness in [0,100], points in the unit
// square with non-decreasing x.
func Validate(doc *models.Document) error {
	seen := make(map[string]bool, len(doc.Curves))
	for _, c := range doc.Curves {
		if seen[c.ID] {
			return fmt.Errorf("%w: %s", curvegen.ErrDuplicateCurveID, c.ID)
		}
		seen[c.ID] = true

		if c.Name == models.DateKey {
			return fmt.Errorf("%w: %s", curvegen.ErrReservedName, c.Name)
		}

		if c.Roughness < 0 || c.Roughness > models.MaxRoughness {
			return fmt.Errorf("curve %q: %w", c.Name, curvegen.ErrRoughnessRange)
		}
		for i, p := range c.Points {
			if !p.InUnitSquare() {
				return fmt.Errorf("curve %q point %d: %w", c.Name, i, curvegen.ErrInvalidPoints)
			}
			if i > 0 && p.X < c.Points[i-1].X {
				return fmt.Errorf("curve %q point %d: %w", c.Name, i, curvegen.ErrInvalidPoints)
			}
		}
	}
	return nil
}

// Save writes a document file; the format follows the extension.
func Save(path string, doc *models.Document) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, doc, format); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// Encode writes a document in the given format.
func Encode(w io.Writer, doc *models.Document, format Format) error {
	axis := doc.Axis
	fd := fileDocument{
		Axis:   &axis,
		Curves: doc.Curves,
	}
	if !doc.StartDate.IsZero() {
		fd.StartDate = doc.StartDate.Format(series.DateLayout)
	}
	for _, ev := range doc.Events {
		fd.Events = append(fd.Events, fileEvent{
			ID:    ev.ID,
			Date:  ev.Date.Format(series.DateLayout),
			Label: ev.Label,
		})
	}

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&fd); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(&fd)
	}
	return fmt.Errorf("%w: %s", curvegen.ErrInvalidFormat, format)
}

// parseDate accepts yyyy-MM-dd or RFC 3339 and returns the calendar day in UTC.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(series.DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want yyyy-MM-dd)", s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
