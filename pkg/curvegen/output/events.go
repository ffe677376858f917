package output

import (
	"github.com/ukaji3/curvegen-go/pkg/curvegen/models"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/series"
	"github.com/xuri/excelize/v2"
)

// EventsSheetName is the sheet listing event lines.
const EventsSheetName = "Events"

// WriteEvents writes event lines as Date/Label rows on their own sheet.
func WriteEvents(f *excelize.File, sheet string, events []models.EventLine) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"Date", "Label"}); err != nil {
		return err
	}
	for i, ev := range events {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{ev.Date.Format(series.DateLayout), ev.Label}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
