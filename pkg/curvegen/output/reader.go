package output

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/curvegen-go/pkg/curvegen/models"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads the row table of an exported workbook's sheet.
func ReadXLSX(path, sheet string) ([]models.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadRows(f, sheet)
}

// ReadRows reads a sheet laid out by WriteRows. Row 1 holds the headers,
// column A the dates. Empty cells stay absent in the returned rows.
func ReadRows(f *excelize.File, sheet string) ([]models.Row, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	if len(header) == 0 || header[0] != models.DateKey {
		return nil, fmt.Errorf("sheet %q: first header is not %q", sheet, models.DateKey)
	}

	var result []models.Row
	for rowIdx, cells := range rows[1:] {
		if len(cells) == 0 {
			continue
		}
		row := models.NewRow(cells[0])

		for colIdx := 1; colIdx < len(cells) && colIdx < len(header); colIdx++ {
			if cells[colIdx] == "" {
				continue
			}
			v, ok := parseNumber(cells[colIdx])
			if !ok {
				cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
				return nil, fmt.Errorf("sheet %q cell %s: not a number: %q", sheet, cell, cells[colIdx])
			}
			row.Set(header[colIdx], v)
		}

		result = append(result, row)
	}

	return result, nil
}

// parseNumber parses a raw cell value as a float.
func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
