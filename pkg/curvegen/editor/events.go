package editor

import (
	"fmt"
	"time"

	"github.com/ukaji3/curvegen-go/pkg/curvegen"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/models"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/series"
)

// AddEvent adds an event line on a day inside the export window. An empty
// label defaults to the day formatted as "02 Jan".
func (s *Set) AddEvent(date time.Time, label string) (models.EventLine, error) {
	if !series.InWindow(s.start, date) {
		return models.EventLine{}, fmt.Errorf("%w: %s", curvegen.ErrEventOutsideWindow, date.Format(series.DateLayout))
	}
	if label == "" {
		label = date.Format(EventLabelLayout)
	}
	ev := models.EventLine{ID: s.newID(), Date: series.Day(date), Label: label}
	s.events = append(s.events, ev)
	return ev, nil
}

// RemoveEvent deletes an event line; unknown ids are ignored.
func (s *Set) RemoveEvent(id string) {
	for i, ev := range s.events {
		if ev.ID == id {
			s.events = append(s.events[:i:i], s.events[i+1:]...)
			return
		}
	}
}

// Events returns the event lines in insertion order.
func (s *Set) Events() []models.EventLine {
	return append([]models.EventLine(nil), s.events...)
}
