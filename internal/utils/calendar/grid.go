// Package calendar holds the pure month-grid arithmetic behind the schedule
// view: mapping a (year, month) pair onto a Monday-first, week-aligned table of
// day cells. It performs no I/O.
package calendar

import (
	"fmt"
	"time"

	"github.com/hospitaldms/duty_scheduler/internal/apperrors"
)

// DayKeyFormat is the layout of month-schedule map keys.
const DayKeyFormat = "02.01.2006"

// Cell is one populated day of the grid. Row/Col address a 7-column table with
// column 0 = Monday and column 6 = Sunday.
type Cell struct {
	Day  int
	Row  int
	Col  int
	Date time.Time
}

// Grid is the week-aligned layout of a single month.
type Grid struct {
	Year         int
	Month        time.Month
	Days         int
	FirstWeekday int // weekday index of day 1, Monday=0 .. Sunday=6
	Rows         int
	Cells        []Cell // exactly Days entries, in day order
}

// DaysInMonth returns the number of calendar days in the given month,
// respecting leap years.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday index of the first day of the month with
// Monday=0 through Sunday=6.
func FirstWeekday(year int, month time.Month) int {
	wd := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
	return (int(wd) + 6) % 7
}

// MonthGrid computes the week-aligned grid for (year, month). A month outside
// [1,12] is a validation error.
func MonthGrid(year, month int) (*Grid, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month %d out of range [1,12]: %w", month, apperrors.ErrValidation)
	}

	m := time.Month(month)
	days := DaysInMonth(year, m)
	first := FirstWeekday(year, m)
	rows := (days + first + 6) / 7

	grid := &Grid{
		Year:         year,
		Month:        m,
		Days:         days,
		FirstWeekday: first,
		Rows:         rows,
		Cells:        make([]Cell, 0, days),
	}
	for day := 1; day <= days; day++ {
		position := (day - 1) + first
		grid.Cells = append(grid.Cells, Cell{
			Day:  day,
			Row:  position / 7,
			Col:  position % 7,
			Date: time.Date(year, m, day, 0, 0, 0, 0, time.UTC),
		})
	}
	return grid, nil
}

// MonthBounds returns the inclusive [first, last] day range of the month
// containing t: the last day is found by adding 31 days to the first and, when
// that lands in the following month, clamping back to first-of-next-month
// minus one day.
func MonthBounds(t time.Time) (first, last time.Time) {
	first = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 0, 31)
	if last.Month() != first.Month() {
		last = time.Date(last.Year(), last.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	}
	return first, last
}

// DayKey formats a date the way month-schedule maps key their days.
func DayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
}
