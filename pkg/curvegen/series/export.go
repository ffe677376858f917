package series

import (
	"math"
	"time"

	"github.com/ukaji3/curvegen-go/pkg/curvegen/interp"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/models"
	"github.com/ukaji3/curvegen-go/pkg/curvegen/roughness"
)

// Seed returns the jitter seed for grid index i and curve index c.
func Seed(i, c int) float64 {
	return float64(i*1000 + c)
}

// Round2 rounds to two decimals, halves rounding up (towards +Inf).
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// Value computes the exported value of curve c (at index curveIndex of the
// export set) on grid index i of n. The boolean is false when the curve
// has no data at that position; the cell must then stay blank.
func Value(c models.Curve, curveIndex int, axis models.AxisConfig, i, n int) (float64, bool) {
	y, ok := interp.Evaluate(c.Points, Position(i, n))
	if !ok {
		return 0, false
	}
	v := axis.Scale(y)
	v = roughness.Jitter(v, c.Roughness, Seed(i, curveIndex), axis.Range())
	return Round2(v), true
}

// Export builds one row per day of the window starting at start.
//
// Each curve with points contributes a value under its name wherever the
// interpolation is defined. Curves without points contribute nothing.
// Curve indices used for seeding are positions in curves, so the same
// slice, axis and start always yield the same rows.
func Export(curves []models.Curve, axis models.AxisConfig, start time.Time) []models.Row {
	dates := Dates(start)
	n := len(dates)
	rows := make([]models.Row, 0, n)

	for i, d := range dates {
		row := models.NewRow(d.Format(DateLayout))
		for ci, c := range curves {
			if !c.HasData() {
				continue
			}
			if v, ok := Value(c, ci, axis, i, n); ok {
				row.Set(c.Name, v)
			}
		}
		rows = append(rows, row)
	}

	return rows
}
