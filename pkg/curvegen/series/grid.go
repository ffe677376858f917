// Package series converts normalized curves into daily time series rows.
package series

import "time"

// WindowMonths is the length of the export window in calendar months.
const WindowMonths = 6

// DateLayout formats row date labels (yyyy-MM-dd).
const DateLayout = "2006-01-02"

// Day truncates t to its calendar date at midnight, keeping t's location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddMonths adds n calendar months to t, clamping the day to the length of
// the target month (Jan 31 + 1 month = Feb 28 or 29). time.AddDate would
// overflow into the following month instead.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysIn(first); d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// Window returns the first and last calendar day of the export window
// starting at start. The last day is the day before start + WindowMonths.
func Window(start time.Time) (first, last time.Time) {
	first = Day(start)
	last = AddMonths(first, WindowMonths).AddDate(0, 0, -1)
	return first, last
}

// Dates returns every calendar day of the window, ascending.
func Dates(start time.Time) []time.Time {
	first, last := Window(start)
	var dates []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// InWindow reports whether day falls within the window starting at start.
func InWindow(start, day time.Time) bool {
	first, last := Window(start)
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, first.Location())
	return !d.Before(first) && !d.After(last)
}

// Position maps grid index i of n onto [0,1]. A single-day grid maps to 0.
func Position(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}
