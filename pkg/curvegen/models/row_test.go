package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestRowSetKeepsFirstPosition(t *testing.T) {
	r := NewRow("2024-04-01")
	r.Set("A", 1)
	r.Set("B", 2)
	r.Set("A", 3)

	if got := r.Keys(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("Keys() = %v, expected [A B]", got)
	}
	if v, ok := r.Get("A"); !ok || v != 3 {
		t.Errorf("Get(A) = %v, %v, expected 3, true", v, ok)
	}
	if _, ok := r.Get("C"); ok {
		t.Errorf("Get(C) reported a present cell")
	}
}

func TestRowMarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		build    func() Row
		expected string
	}{
		{
			name:     "date only",
			build:    func() Row { return NewRow("2024-04-01") },
			expected: `{"Date":"2024-04-01"}`,
		},
		{
			name: "ordered values",
			build: func() Row {
				r := NewRow("2024-04-02")
				r.Set("Sales", 12.5)
				r.Set("Costs", 50)
				return r
			},
			expected: `{"Date":"2024-04-02","Sales":12.5,"Costs":50}`,
		},
	}

	for _, tt := range tests {
		data, err := json.Marshal(tt.build())
		if err != nil {
			t.Fatalf("%s: Marshal failed: %v", tt.name, err)
		}
		if string(data) != tt.expected {
			t.Errorf("%s: got %s, expected %s", tt.name, data, tt.expected)
		}
	}
}

func TestHeaders(t *testing.T) {
	r1 := NewRow("2024-04-01")
	r1.Set("B", 1)
	r2 := NewRow("2024-04-02")
	r2.Set("A", 1)
	r2.Set("B", 2)
	r3 := NewRow("2024-04-03")

	got := Headers([]Row{r1, r2, r3})
	expected := []string{"Date", "B", "A"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Headers() = %v, expected %v", got, expected)
	}

	if got := Headers(nil); !reflect.DeepEqual(got, []string{"Date"}) {
		t.Errorf("Headers(nil) = %v, expected [Date]", got)
	}
}

func TestAxisScale(t *testing.T) {
	tests := []struct {
		axis       AxisConfig
		normalized float64
		expected   float64
	}{
		{DefaultAxis(), 0, 0},
		{DefaultAxis(), 0.5, 50},
		{DefaultAxis(), 1, 100},
		{AxisConfig{YMin: 10, YMax: 10}, 0.7, 10},
		{AxisConfig{YMin: 100, YMax: 0}, 0.25, 75},
	}

	for _, tt := range tests {
		if got := tt.axis.Scale(tt.normalized); got != tt.expected {
			t.Errorf("%+v.Scale(%v) = %v, expected %v", tt.axis, tt.normalized, got, tt.expected)
		}
	}
}

func TestPaletteColor(t *testing.T) {
	if PaletteColor(0) != Palette[0] {
		t.Errorf("PaletteColor(0) = %q, expected %q", PaletteColor(0), Palette[0])
	}
	if PaletteColor(len(Palette)+1) != Palette[1] {
		t.Errorf("PaletteColor wraps incorrectly: %q", PaletteColor(len(Palette)+1))
	}
}
