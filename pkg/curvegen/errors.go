package curvegen

import (
	"errors"
	"fmt"
)

// ErrNoCurves indicates that no curve has any points to export.
var ErrNoCurves = errors.New("no curves to export")

// ErrInvalidFormat indicates an unsupported document or output format.
var ErrInvalidFormat = errors.New("invalid format")

// ErrRoughnessRange indicates a roughness level outside [0,100].
var ErrRoughnessRange = errors.New("roughness must be between 0 and 100")

// ErrCurveNotFound indicates an unknown curve identifier.
var ErrCurveNotFound = errors.New("curve not found")

// ErrEventOutsideWindow indicates an event date outside the export window.
var ErrEventOutsideWindow = errors.New("event date outside export window")

// ErrDuplicateCurveID indicates two curves sharing an identifier.
var ErrDuplicateCurveID = errors.New("duplicate curve id")

// ErrInvalidPoints indicates a point sequence outside the unit square or
// with decreasing x.
var ErrInvalidPoints = errors.New("invalid point sequence")

// ErrReservedName indicates a curve named like the date column.
var ErrReservedName = errors.New("curve name is reserved")

// ErrSheetName indicates a data sheet name taken by another sheet.
var ErrSheetName = errors.New("sheet name is reserved")

// ModeError reports an unknown export mode.
type ModeError struct {
	Value string
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("invalid mode: %s (must be light, standard, or verbose)", e.Value)
}

// ExportError represents an error while writing an export.
type ExportError struct {
	SheetName string
	Component string // "rows", "style", "chart", "events", "print_area", "save"
	Err       error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError.
func NewExportError(sheetName, component string, err error) *ExportError {
	return &ExportError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
