package output

import "time"

// Format is an output file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// Filename returns the export file name for the given time and format,
// e.g. curve_data_20240401_153000.xlsx.
func Filename(now time.Time, format Format) string {
	return "curve_data_" + now.Format("20060102_150405") + "." + string(format)
}
