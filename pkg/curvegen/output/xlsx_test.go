package output

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ukaji3/curvegen-go/pkg/curvegen/models"
	"github.com/xuri/excelize/v2"
)

func sampleRows() []models.Row {
	r1 := models.NewRow("2024-04-01")
	r1.Set("Sales", 10.5)
	r2 := models.NewRow("2024-04-02")
	r2.Set("Sales", 11)
	r2.Set("Costs", 3.25)
	r3 := models.NewRow("2024-04-03")
	r3.Set("Costs", 4)
	return []models.Row{r1, r2, r3}
}

func TestWriteRowsRoundTrip(t *testing.T) {
	rows := sampleRows()
	headers := models.Headers(rows)

	f := excelize.NewFile()
	defer f.Close()

	if err := WriteRows(f, "Data", headers, rows); err != nil {
		t.Fatalf("WriteRows failed: %v", err)
	}
	if err := StyleSheet(f, "Data", len(headers), len(rows)); err != nil {
		t.Fatalf("StyleSheet failed: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	got, err := ReadXLSX(tmpFile, "Data")
	if err != nil {
		t.Fatalf("ReadXLSX failed: %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("Expected %d rows, got %d", len(rows), len(got))
	}

	for i := range rows {
		if got[i].Date != rows[i].Date {
			t.Errorf("row %d date = %q, expected %q", i, got[i].Date, rows[i].Date)
		}
		for _, h := range headers[1:] {
			wv, wok := rows[i].Get(h)
			gv, gok := got[i].Get(h)
			if wok != gok || wv != gv {
				t.Errorf("row %d %s = %v/%v, expected %v/%v", i, h, gv, gok, wv, wok)
			}
		}
	}
}

func TestWriteRowsLeavesBlanks(t *testing.T) {
	rows := sampleRows()
	headers := models.Headers(rows)

	f := excelize.NewFile()
	defer f.Close()
	if err := WriteRows(f, "Data", headers, rows); err != nil {
		t.Fatalf("WriteRows failed: %v", err)
	}

	// Costs is absent on the first day, Sales on the last.
	for _, cell := range []string{"C2", "B4"} {
		v, err := f.GetCellValue("Data", cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", cell, err)
		}
		if v != "" {
			t.Errorf("cell %s = %q, expected blank", cell, v)
		}
	}

	header, err := f.GetRows("Data")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if !reflect.DeepEqual(header[0], []string{"Date", "Sales", "Costs"}) {
		t.Errorf("header = %v, expected [Date Sales Costs]", header[0])
	}
	if list := f.GetSheetList(); !reflect.DeepEqual(list, []string{"Data"}) {
		t.Errorf("sheets = %v, expected [Data]", list)
	}
}

func TestUsedRange(t *testing.T) {
	tests := []struct {
		cols, rows int
		expected   string
	}{
		{1, 0, "A1:A1"},
		{3, 183, "A1:C184"},
		{28, 10, "A1:AB11"},
	}

	for _, tt := range tests {
		got, err := UsedRange(tt.cols, tt.rows)
		if err != nil {
			t.Errorf("UsedRange(%d, %d) failed: %v", tt.cols, tt.rows, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("UsedRange(%d, %d) = %q, expected %q", tt.cols, tt.rows, got, tt.expected)
		}
	}

	if _, err := UsedRange(0, 5); err == nil {
		t.Errorf("UsedRange(0, 5) succeeded, expected error")
	}
}

func TestPrintAreaRoundTrip(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := ensureSheet(f, "My Data"); err != nil {
		t.Fatalf("ensureSheet failed: %v", err)
	}
	if err := SetPrintArea(f, "My Data", 3, 183); err != nil {
		t.Fatalf("SetPrintArea failed: %v", err)
	}

	rng, ok := PrintArea(f, "My Data")
	if !ok || rng != "A1:C184" {
		t.Errorf("PrintArea = %q, %v, expected A1:C184, true", rng, ok)
	}
	if _, ok := PrintArea(f, "Other"); ok {
		t.Errorf("PrintArea found an area for an unknown sheet")
	}
}

func TestParseAreaReference(t *testing.T) {
	tests := []struct {
		ref      string
		sheet    string
		rangeStr string
	}{
		{"Data!$A$1:$C$10", "Data", "A1:C10"},
		{"'My Data'!$A$1:$B$2", "My Data", "A1:B2"},
		{"'It''s'!$A$1:$A$3", "It's", "A1:A3"},
		{"Data!$A$1", "Data", ""},
		{"nonsense", "", ""},
	}

	for _, tt := range tests {
		sheet, rng := parseAreaReference(tt.ref)
		if sheet != tt.sheet || rng != tt.rangeStr {
			t.Errorf("parseAreaReference(%q) = %q, %q, expected %q, %q",
				tt.ref, sheet, rng, tt.sheet, tt.rangeStr)
		}
	}
}

func TestChartSeries(t *testing.T) {
	got := ChartSeries("Data", []string{"Date", "Sales", "Costs"}, 183)
	expected := []models.ChartSeries{
		{Name: "Sales", NameRange: "'Data'!$B$1", XRange: "'Data'!$A$2:$A$184", YRange: "'Data'!$B$2:$B$184"},
		{Name: "Costs", NameRange: "'Data'!$C$1", XRange: "'Data'!$A$2:$A$184", YRange: "'Data'!$C$2:$C$184"},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("ChartSeries = %+v, expected %+v", got, expected)
	}
}

func TestAddLineChartAndEvents(t *testing.T) {
	rows := sampleRows()
	headers := models.Headers(rows)

	f := excelize.NewFile()
	defer f.Close()
	if err := WriteRows(f, "Data", headers, rows); err != nil {
		t.Fatalf("WriteRows failed: %v", err)
	}
	if err := AddLineChart(f, ChartSheetName, ChartSeries("Data", headers, len(rows)), models.DefaultAxis()); err != nil {
		t.Fatalf("AddLineChart failed: %v", err)
	}

	events := []models.EventLine{{ID: "e1", Date: mustDate(t, "2024-05-01"), Label: "Launch"}}
	if err := WriteEvents(f, EventsSheetName, events); err != nil {
		t.Fatalf("WriteEvents failed: %v", err)
	}

	list := f.GetSheetList()
	if !reflect.DeepEqual(list, []string{"Data", ChartSheetName, EventsSheetName}) {
		t.Errorf("sheets = %v", list)
	}

	evRows, err := f.GetRows(EventsSheetName)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(evRows) != 2 || evRows[1][0] != "2024-05-01" || evRows[1][1] != "Launch" {
		t.Errorf("events sheet = %v", evRows)
	}
}

func TestReadRowsRejectsForeignSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "Header1")

	if _, err := ReadRows(f, "Sheet1"); err == nil {
		t.Errorf("ReadRows accepted a sheet without a Date header")
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"123", 123, true},
		{"123.45", 123.45, true},
		{"-100", -100, true},
		{"hello", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		result, ok := parseNumber(tt.input)
		if result != tt.expected || ok != tt.ok {
			t.Errorf("parseNumber(%q) = %v, %v, expected %v, %v",
				tt.input, result, ok, tt.expected, tt.ok)
		}
	}
}
