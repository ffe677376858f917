package curvegen

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/ukaji3/curvegen-go/pkg/curvegen/models"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/output"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/series"
	"github.com/xuri/excelize/v2"
)

// Result is a computed export: the row table plus what writers need to
// lay it out.
type Result struct {
	// Start is the first day of the window.
	Start time.Time
	// Axis is the axis the values were scaled to.
	Axis models.AxisConfig
	// Curves are the exported curves (those with points), in order.
	Curves []models.Curve
	// Rows holds one row per day, ascending.
	Rows []models.Row
	// Headers are the column headers derived from Rows.
	Headers []string
	// Events are carried through unchanged.
	Events []models.EventLine
}

// DefaultStart returns April 1 of now's year, in now's location.
func DefaultStart(now time.Time) time.Time {
	return time.Date(now.Year(), time.April, 1, 0, 0, 0, 0, now.Location())
}

// Exportable returns the curves that have points, in document order.
func Exportable(curves []models.Curve) []models.Curve {
	var out []models.Curve
	for _, c := range curves {
		if c.HasData() {
			out = append(out, c)
		}
	}
	return out
}

// Validate checks that a document has something to export and that its
// curves fit the row layout.
func Validate(doc *models.Document) error {
	if len(Exportable(doc.Curves)) == 0 {
		return ErrNoCurves
	}
	for _, c := range doc.Curves {
		if c.Roughness < 0 || c.Roughness > models.MaxRoughness {
			return ErrRoughnessRange
		}
		if c.Name == models.DateKey {
			return ErrReservedName
		}
	}
	return nil
}

// Export computes the row table for a document. Only curves with points
// take part, and their positions in that filtered set seed the roughness
// jitter. A zero StartDate means DefaultStart(time.Now()).
func Export(doc *models.Document) (*Result, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}

	start := doc.StartDate
	if start.IsZero() {
		start = DefaultStart(time.Now())
	}

	curves := Exportable(doc.Curves)
	rows := series.Export(curves, doc.Axis, start)

	return &Result{
		Start:   series.Day(start),
		Axis:    doc.Axis,
		Curves:  curves,
		Rows:    rows,
		Headers: models.Headers(rows),
		Events:  doc.Events,
	}, nil
}

// WriteWorkbook writes the result as an xlsx file at path.
func WriteWorkbook(res *Result, opts Options, path string) error {
	var buf bytes.Buffer
	if err := WriteWorkbookTo(res, opts, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return NewExportError(opts.Sheet(), "save", err)
	}
	return nil
}

// WriteWorkbookTo writes the result as xlsx to w. The workbook is fully
// built before anything is written, so a failure leaves w untouched.
func WriteWorkbookTo(res *Result, opts Options, w io.Writer) error {
	f, err := BuildWorkbook(res, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return NewExportError(opts.Sheet(), "save", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return NewExportError(opts.Sheet(), "save", err)
	}
	return nil
}

// BuildWorkbook lays the result out in a new workbook. The caller closes it.
func BuildWorkbook(res *Result, opts Options) (*excelize.File, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	sheet := opts.Sheet()
	f := excelize.NewFile()

	fail := func(component string, err error) (*excelize.File, error) {
		f.Close()
		return nil, NewExportError(sheet, component, err)
	}

	if err := output.WriteRows(f, sheet, res.Headers, res.Rows); err != nil {
		return fail("rows", err)
	}

	if opts.ShouldStyle() {
		if err := output.StyleSheet(f, sheet, len(res.Headers), len(res.Rows)); err != nil {
			return fail("style", err)
		}
	}

	if opts.ShouldIncludePrintArea() {
		if err := output.SetPrintArea(f, sheet, len(res.Headers), len(res.Rows)); err != nil {
			return fail("print_area", err)
		}
	}

	if opts.ShouldIncludeChart() && len(res.Headers) > 1 && len(res.Rows) > 0 {
		plotted := output.ChartSeries(sheet, res.Headers, len(res.Rows))
		if err := output.AddLineChart(f, output.ChartSheetName, plotted, res.Axis); err != nil {
			return fail("chart", err)
		}
	}

	if opts.ShouldIncludeEvents() && len(res.Events) > 0 {
		if err := output.WriteEvents(f, output.EventsSheetName, res.Events); err != nil {
			return fail("events", err)
		}
	}

	if idx, err := f.GetSheetIndex(sheet); err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}

	return f, nil
}
