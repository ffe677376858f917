package output

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/ukaji3/curvegen-go/pkg/curvegen/models"
)

// ToJSON serializes a row table as a JSON array of row objects.
func ToJSON(rows []models.Row, pretty bool) ([]byte, error) {
	if rows == nil {
		rows = []models.Row{}
	}
	if pretty {
		return json.MarshalIndent(rows, "", "  ")
	}
	return json.Marshal(rows)
}

// WriteCSV writes a row table as CSV with a header row. Absent values are
// written as empty fields.
func WriteCSV(w io.Writer, rows []models.Row) error {
	headers := models.Headers(rows)
	cw := csv.NewWriter(w)

	if err := cw.Write(headers); err != nil {
		return err
	}
	record := make([]string, len(headers))
	for _, row := range rows {
		record[0] = row.Date
		for i := 1; i < len(headers); i++ {
			record[i] = ""
			if v, ok := row.Get(headers[i]); ok {
				record[i] = strconv.FormatFloat(v, 'f', -1, 64)
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
