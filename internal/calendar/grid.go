package calendar

import "time"

// Cell is one slot in the month grid. Blank cells pad the first week so
// day 1 lands under its weekday; Day is 0 for them.
type Cell struct {
	Day int `json:"day"`
}

// MonthGrid is the Monday-first layout of a month, ready to render as a
// 7-column grid: Blanks leading cells, then one cell per day.
type MonthGrid struct {
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Blanks int    `json:"blanks"`
	Days   int    `json:"days"`
	Cells  []Cell `json:"cells"`
}

// leadingBlanks converts Go's Sunday-first weekday of the 1st into the
// number of empty cells before it in a Monday-first week.
func leadingBlanks(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return (int(first.Weekday()) + 6) % 7
}

// daysInMonth handles leap years through time.Date normalization.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildMonthGrid lays out a month. Cells holds Blanks empty cells followed
// by the days 1..Days in order.
func BuildMonthGrid(year int, month time.Month) MonthGrid {
	blanks := leadingBlanks(year, month)
	days := daysInMonth(year, month)

	cells := make([]Cell, 0, blanks+days)
	for i := 0; i < blanks; i++ {
		cells = append(cells, Cell{})
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, Cell{Day: d})
	}

	return MonthGrid{
		Year:   year,
		Month:  int(month),
		Blanks: blanks,
		Days:   days,
		Cells:  cells,
	}
}

// MonthBounds returns the [start, end) window covering the month.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
