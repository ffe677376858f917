// Package output serializes exported row tables to xlsx, JSON and CSV,
// and reads exported workbooks back.
package output

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// printAreaName is the defined name Excel uses for a sheet's print area.
const printAreaName = "_xlnm.Print_Area"

// UsedRange returns the range covered by a header row and rows data rows
// across cols columns, e.g. "A1:C184".
func UsedRange(cols, rows int) (string, error) {
	if cols < 1 {
		return "", fmt.Errorf("no columns")
	}
	start, err := excelize.CoordinatesToCellName(1, 1)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(cols, rows+1)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", start, end), nil
}

// absoluteRef turns "A1:C10" on sheet into 'sheet'!$A$1:$C$10.
func absoluteRef(sheet, rangeStr string) (string, error) {
	parts := strings.Split(rangeStr, ":")
	refs := make([]string, 0, len(parts))
	for _, p := range parts {
		col, row, err := excelize.CellNameToCoordinates(p)
		if err != nil {
			return "", err
		}
		cell, err := excelize.CoordinatesToCellName(col, row, true)
		if err != nil {
			return "", err
		}
		refs = append(refs, cell)
	}
	return quoteSheet(sheet) + "!" + strings.Join(refs, ":"), nil
}

// quoteSheet quotes a sheet name for use in a formula reference.
func quoteSheet(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

// SetPrintArea defines the sheet's print area over its used range.
func SetPrintArea(f *excelize.File, sheet string, cols, rows int) error {
	rng, err := UsedRange(cols, rows)
	if err != nil {
		return err
	}
	ref, err := absoluteRef(sheet, rng)
	if err != nil {
		return err
	}
	return f.SetDefinedName(&excelize.DefinedName{
		Name:     printAreaName,
		RefersTo: ref,
		Scope:    sheet,
	})
}

// PrintArea returns the print area range (e.g. "A1:C184") defined for sheet.
func PrintArea(f *excelize.File, sheet string) (string, bool) {
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		name, rng := parseAreaReference(dn.RefersTo)
		if name == sheet && rng != "" {
			return rng, true
		}
	}
	return "", false
}

// parseAreaReference parses a reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10
func parseAreaReference(ref string) (string, string) {
	ref = strings.TrimSpace(ref)
	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		return "", ""
	}

	sheet := ref[:idx]
	if strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") && len(sheet) >= 2 {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}

	rangeStr := strings.ReplaceAll(ref[idx+1:], "$", "")
	if len(strings.Split(rangeStr, ":")) != 2 {
		return sheet, ""
	}
	return sheet, rangeStr
}
