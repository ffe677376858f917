// Package curvegen converts freehand-drawn curves into daily time series
// and writes them as spreadsheets.
package curvegen

import (
	"fmt"
	"strings"

	"github.com/ukaji3/curvegen-go/pkg/curvegen/output"
)

// Mode represents the export mode.
type Mode string

const (
	// ModeLight writes the data sheet only.
	ModeLight Mode = "light"
	// ModeStandard adds header styling, frozen header, autofilter and print area.
	ModeStandard Mode = "standard"
	// ModeVerbose adds a line chart sheet and an events sheet.
	ModeVerbose Mode = "verbose"
)

// DefaultSheetName is the name of the data sheet.
const DefaultSheetName = "Data"

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLight, ModeStandard, ModeVerbose:
		return Mode(s), nil
	}
	return "", &ModeError{Value: s}
}

// Options configures workbook output.
type Options struct {
	// Mode specifies the export mode (light, standard, verbose).
	Mode Mode
	// SheetName is the data sheet name. Empty means DefaultSheetName.
	SheetName string
	// IncludeChart specifies whether to add a line chart.
	// If nil, defaults to true for verbose mode, false otherwise.
	IncludeChart *bool
	// IncludeEvents specifies whether to add the events sheet.
	// If nil, defaults to true for verbose mode, false otherwise.
	IncludeEvents *bool
	// IncludePrintArea specifies whether to define a print area.
	// If nil, defaults to false for light mode, true otherwise.
	IncludePrintArea *bool
}

// DefaultOptions returns default export options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeStandard,
	}
}

// Validate checks that the data sheet does not share a name with the
// chart or events sheet. Sheet names compare case-insensitively.
func (o Options) Validate() error {
	sheet := o.Sheet()
	for _, reserved := range []string{output.ChartSheetName, output.EventsSheetName} {
		if strings.EqualFold(sheet, reserved) {
			return fmt.Errorf("%w: %s", ErrSheetName, sheet)
		}
	}
	return nil
}

// Sheet returns the data sheet name.
func (o Options) Sheet() string {
	if o.SheetName == "" {
		return DefaultSheetName
	}
	return o.SheetName
}

// ShouldStyle returns whether to style the header and number cells.
func (o Options) ShouldStyle() bool {
	return o.Mode != ModeLight
}

// ShouldIncludeChart returns whether to add a line chart.
func (o Options) ShouldIncludeChart() bool {
	if o.IncludeChart != nil {
		return *o.IncludeChart
	}
	return o.Mode == ModeVerbose
}

// ShouldIncludeEvents returns whether to add the events sheet.
func (o Options) ShouldIncludeEvents() bool {
	if o.IncludeEvents != nil {
		return *o.IncludeEvents
	}
	return o.Mode == ModeVerbose
}

// ShouldIncludePrintArea returns whether to define a print area.
func (o Options) ShouldIncludePrintArea() bool {
	if o.IncludePrintArea != nil {
		return *o.IncludePrintArea
	}
	return o.Mode != ModeLight
}
