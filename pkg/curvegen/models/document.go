package models

import "time"

// Document is the curve set handed to a single export or capture run.
type Document struct {
	// Axis is the y-axis configuration.
	Axis AxisConfig `json:"axis" yaml:"axis"`
	// StartDate is the first day of the export window.
	StartDate time.Time `json:"startDate" yaml:"start_date"`
	// Curves are the curves in display order.
	Curves []Curve `json:"curves" yaml:"curves"`
	// Events are optional date annotations.
	Events []EventLine `json:"events,omitempty" yaml:"events,omitempty"`
}

// CurveByName returns the index of the first curve with the given name, or -1.
func (d *Document) CurveByName(name string) int {
	for i, c := range d.Curves {
		if c.Name == name {
			return i
		}
	}
	return -1
}
