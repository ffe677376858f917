// Package editor manages the set of curves being drawn: creation, naming,
// visibility, roughness, event lines, and committing finished strokes.
//
// A Set is driven by one user's interaction events and is not safe for
// concurrent use.
package editor

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ukaji3/curvegen-go/pkg/curvegen"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/models"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/roughness"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/series"
)

// EventLabelLayout formats default event labels ("05 Jun").
const EventLabelLayout = "02 Jan"

// Set is the single source of truth for the curves of a session.
type Set struct {
	curves []models.Curve
	active string
	axis   models.AxisConfig
	start  time.Time
	events []models.EventLine

	newID func() string
}

// New creates a set holding one empty curve, "Curve 1", which is active.
func New(start time.Time) *Set {
	s := &Set{
		axis:  models.DefaultAxis(),
		start: series.Day(start),
		newID: uuid.NewString,
	}
	s.curves = []models.Curve{s.newCurve(0)}
	s.active = s.curves[0].ID
	return s
}

// FromDocument creates a set from a document. The first curve is active.
func FromDocument(doc *models.Document) *Set {
	s := &Set{
		axis:   doc.Axis,
		start:  series.Day(doc.StartDate),
		newID:  uuid.NewString,
		events: append([]models.EventLine(nil), doc.Events...),
	}
	for _, c := range doc.Curves {
		s.curves = append(s.curves, c.Clone())
	}
	if len(s.curves) > 0 {
		s.active = s.curves[0].ID
	}
	return s
}

// Document returns a snapshot of the set as a document.
func (s *Set) Document() *models.Document {
	return &models.Document{
		Axis:      s.axis,
		StartDate: s.start,
		Curves:    s.Curves(),
		Events:    s.Events(),
	}
}

func (s *Set) newCurve(i int) models.Curve {
	return models.Curve{
		ID:      s.newID(),
		Name:    fmt.Sprintf("Curve %d", i+1),
		Color:   models.PaletteColor(i),
		Visible: true,
	}
}

func (s *Set) index(id string) int {
	for i, c := range s.curves {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Curves returns copies of all curves in display order.
func (s *Set) Curves() []models.Curve {
	out := make([]models.Curve, len(s.curves))
	for i, c := range s.curves {
		out[i] = c.Clone()
	}
	return out
}

// Curve returns a copy of the curve with the given id.
func (s *Set) Curve(id string) (models.Curve, bool) {
	i := s.index(id)
	if i < 0 {
		return models.Curve{}, false
	}
	return s.curves[i].Clone(), true
}

// Active returns the active curve, if any.
func (s *Set) Active() (models.Curve, bool) {
	return s.Curve(s.active)
}

// Select makes the curve with the given id active.
func (s *Set) Select(id string) error {
	if s.index(id) < 0 {
		return fmt.Errorf("%w: %s", curvegen.ErrCurveNotFound, id)
	}
	s.active = id
	return nil
}

// Add appends a new empty curve named "Curve N", hides all others so the
// new one is drawn on a clean canvas, and makes it active.
func (s *Set) Add() models.Curve {
	c := s.newCurve(len(s.curves))
	for i := range s.curves {
		s.curves[i].Visible = false
	}
	s.curves = append(s.curves, c)
	s.active = c.ID
	return c.Clone()
}

// Delete removes a curve. Deleting the active curve activates the first
// remaining one, or none.
func (s *Set) Delete(id string) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", curvegen.ErrCurveNotFound, id)
	}
	s.curves = append(s.curves[:i:i], s.curves[i+1:]...)
	if s.active == id {
		s.active = ""
		if len(s.curves) > 0 {
			s.active = s.curves[0].ID
		}
	}
	return nil
}

func (s *Set) update(id string, fn func(c *models.Curve)) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", curvegen.ErrCurveNotFound, id)
	}
	fn(&s.curves[i])
	return nil
}

// Rename sets a curve's display name. Names need not be unique, but the
// date column's name is taken.
func (s *Set) Rename(id, name string) error {
	if name == models.DateKey {
		return fmt.Errorf("%w: %s", curvegen.ErrReservedName, name)
	}
	return s.update(id, func(c *models.Curve) { c.Name = name })
}

// Clear removes all points of a curve.
func (s *Set) Clear(id string) error {
	return s.update(id, func(c *models.Curve) { c.Points = nil })
}

// ToggleVisibility flips a curve's visibility.
func (s *Set) ToggleVisibility(id string) error {
	return s.update(id, func(c *models.Curve) { c.Visible = !c.Visible })
}

// SetRoughness sets a curve's roughness level.
func (s *Set) SetRoughness(id string, roughness int) error {
	if roughness < 0 || roughness > models.MaxRoughness {
		return curvegen.ErrRoughnessRange
	}
	return s.update(id, func(c *models.Curve) { c.Roughness = roughness })
}

// AdjustRoughness moves a curve's roughness by delta, stopping at the ends
// of [0,100] the way a slider does. It returns the new level.
func (s *Set) AdjustRoughness(id string, delta int) (int, error) {
	var level int
	err := s.update(id, func(c *models.Curve) {
		c.Roughness = roughness.Clamp(c.Roughness + delta)
		level = c.Roughness
	})
	return level, err
}

// Commit replaces a curve's points with a finished stroke. The slice is
// copied; an empty stroke leaves the curve unchanged.
func (s *Set) Commit(id string, points []models.Point) error {
	if len(points) == 0 {
		if s.index(id) < 0 {
			return fmt.Errorf("%w: %s", curvegen.ErrCurveNotFound, id)
		}
		return nil
	}
	committed := append([]models.Point(nil), points...)
	return s.update(id, func(c *models.Curve) { c.Points = committed })
}

// Axis returns the axis configuration.
func (s *Set) Axis() models.AxisConfig {
	return s.axis
}

// SetAxis replaces the axis configuration. Any pair is accepted.
func (s *Set) SetAxis(axis models.AxisConfig) {
	s.axis = axis
}

// Start returns the first day of the export window.
func (s *Set) Start() time.Time {
	return s.start
}

// SetStart moves the export window.
func (s *Set) SetStart(start time.Time) {
	s.start = series.Day(start)
}

// Exportable returns the curves with points, or curvegen.ErrNoCurves.
func (s *Set) Exportable() ([]models.Curve, error) {
	out := curvegen.Exportable(s.Curves())
	if len(out) == 0 {
		return nil, curvegen.ErrNoCurves
	}
	return out, nil
}
