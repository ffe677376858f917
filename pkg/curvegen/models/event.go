package models

import "time"

// EventLine is a dated annotation inside the export window.
// It is carried alongside curves and never affects exported values.
type EventLine struct {
	// ID is the opaque identifier.
	ID string `json:"id" yaml:"id"`
	// Date is the annotated calendar day.
	Date time.Time `json:"date" yaml:"date"`
	// Label is the display text.
	Label string `json:"label" yaml:"label"`
}
