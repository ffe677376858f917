package output

import (
	"strconv"

	"github.com/ukaji3/curvegen-go/pkg/curvegen/models"
	"github.com/xuri/excelize/v2"
)

// ChartSheetName is the sheet holding the curve chart.
const ChartSheetName = "Chart"

// ChartSeries builds one series per curve column of a data sheet laid out
// by WriteRows: names in row 1, dates in column A.
func ChartSeries(sheet string, headers []string, rows int) []models.ChartSeries {
	var out []models.ChartSeries
	for col := 2; col <= len(headers); col++ {
		name, _ := excelize.CoordinatesToCellName(col, 1)
		first, _ := excelize.CoordinatesToCellName(col, 2)
		last, _ := excelize.CoordinatesToCellName(col, rows+1)

		nameRef, _ := absoluteRef(sheet, name)
		xRef, _ := absoluteRef(sheet, "A2:A"+strconv.Itoa(rows+1))
		yRef, _ := absoluteRef(sheet, first+":"+last)

		out = append(out, models.ChartSeries{
			Name:      headers[col-1],
			NameRange: nameRef,
			XRange:    xRef,
			YRange:    yRef,
		})
	}
	return out
}

// AddLineChart adds a sheet with a line chart of the given series. Blank
// cells are drawn as gaps. The value axis is pinned to the axis range when
// that range is increasing.
func AddLineChart(f *excelize.File, sheet string, series []models.ChartSeries, axis models.AxisConfig) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	chart := &excelize.Chart{
		Type:         excelize.Line,
		Title:        []excelize.RichTextRun{{Text: "Curves"}},
		Legend:       excelize.ChartLegend{Position: "bottom"},
		Dimension:    excelize.ChartDimension{Width: 960, Height: 480},
		ShowBlanksAs: "gap",
	}
	if axis.YMax > axis.YMin {
		lo, hi := axis.YMin, axis.YMax
		chart.YAxis = excelize.ChartAxis{Minimum: &lo, Maximum: &hi}
	}
	for _, s := range series {
		chart.Series = append(chart.Series, excelize.ChartSeries{
			Name:       s.NameRange,
			Categories: s.XRange,
			Values:     s.YRange,
		})
	}

	return f.AddChart(sheet, "A1", chart)
}
