package output

import (
	"github.com/ukaji3/curvegen-go/pkg/curvegen/models"
	"github.com/xuri/excelize/v2"
)

// numberFormat is the built-in "0.00" format.
const numberFormat = 2

// ensureSheet makes sure sheet exists, reusing a fresh workbook's default
// sheet when it is the only one.
func ensureSheet(f *excelize.File, sheet string) error {
	if idx, err := f.GetSheetIndex(sheet); err == nil && idx >= 0 {
		return nil
	}
	list := f.GetSheetList()
	if len(list) == 1 && list[0] == "Sheet1" {
		return f.SetSheetName("Sheet1", sheet)
	}
	_, err := f.NewSheet(sheet)
	return err
}

// WriteRows writes a header row followed by one row per models.Row.
// Cells of absent values are left empty, never zero.
func WriteRows(f *excelize.File, sheet string, headers []string, rows []models.Row) error {
	if err := ensureSheet(f, sheet); err != nil {
		return err
	}

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range rows {
		rowNum := i + 2
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell, row.Date); err != nil {
			return err
		}

		for col := 1; col < len(headers); col++ {
			v, ok := row.Get(headers[col])
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellFloat(sheet, cell, v, -1, 64); err != nil {
				return err
			}
		}
	}

	return nil
}

// StyleSheet bolds the header, formats values as 0.00, freezes the header
// row and adds an autofilter over the used range.
func StyleSheet(f *excelize.File, sheet string, cols, rows int) error {
	if cols < 1 {
		return nil
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	lastHeader, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	if cols > 1 && rows > 0 {
		valueStyle, err := f.NewStyle(&excelize.Style{NumFmt: numberFormat})
		if err != nil {
			return err
		}
		lastValue, err := excelize.CoordinatesToCellName(cols, rows+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "B2", lastValue, valueStyle); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 12); err != nil {
		return err
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	rng, err := UsedRange(cols, rows)
	if err != nil {
		return err
	}
	return f.AutoFilter(sheet, rng, nil)
}
