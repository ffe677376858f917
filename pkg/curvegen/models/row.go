package models

import (
	"bytes"
	"encoding/json"
)

// DateKey is the column key holding the row's date label.
const DateKey = "Date"

// Row represents one exported day: a date label plus curve-name keyed values.
// Keys keep insertion order; a curve with no value on this day has no key.
type Row struct {
	// Date is the ISO yyyy-MM-dd label.
	Date   string
	keys   []string
	values map[string]float64
}

// NewRow creates an empty row for the given date label.
func NewRow(date string) Row {
	return Row{Date: date, values: make(map[string]float64)}
}

// Set stores a value. Setting an existing key overwrites it in place.
func (r *Row) Set(name string, v float64) {
	if r.values == nil {
		r.values = make(map[string]float64)
	}
	if _, ok := r.values[name]; !ok {
		r.keys = append(r.keys, name)
	}
	r.values[name] = v
}

// Get returns the value for name and whether the cell is present.
func (r Row) Get(name string) (float64, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Keys returns the curve keys in insertion order.
func (r Row) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Len returns the number of present curve cells.
func (r Row) Len() int {
	return len(r.keys)
}

// MarshalJSON encodes the row as {"Date": ..., <curve>: <value>, ...}
// with keys in insertion order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeMember(&buf, DateKey, r.Date); err != nil {
		return nil, err
	}
	for _, k := range r.keys {
		buf.WriteByte(',')
		if err := writeMember(&buf, k, r.values[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key string, v interface{}) error {
	kb, err := json.Marshal(key)
	if err != nil {
		return err
	}
	vb, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(kb)
	buf.WriteByte(':')
	buf.Write(vb)
	return nil
}

// Headers returns the column headers for a row table: DateKey followed by
// the union of curve keys across rows, in order of first appearance.
func Headers(rows []Row) []string {
	headers := []string{DateKey}
	seen := map[string]bool{DateKey: true}
	for _, row := range rows {
		for _, k := range row.keys {
			if !seen[k] {
				seen[k] = true
				headers = append(headers, k)
			}
		}
	}
	return headers
}
