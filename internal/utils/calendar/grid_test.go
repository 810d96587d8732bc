package calendar_test

import (
	"testing"
	"time"

	"github.com/hospitaldms/duty_scheduler/internal/apperrors"
	"github.com/hospitaldms/duty_scheduler/internal/utils/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.January, 31},
		{2025, time.February, 28},
		{2024, time.February, 29}, // leap year
		{2000, time.February, 29}, // century leap year
		{1900, time.February, 28}, // century non-leap year
		{2025, time.April, 30},
		{2025, time.December, 31},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, calendar.DaysInMonth(tt.year, tt.month), "%d-%s", tt.year, tt.month)
	}
}

func TestFirstWeekday_MondayIsZero(t *testing.T) {
	// 2026-06-01 is a Monday, 2025-03-01 a Saturday, 2025-06-01 a Sunday.
	assert.Equal(t, 0, calendar.FirstWeekday(2026, time.June))
	assert.Equal(t, 5, calendar.FirstWeekday(2025, time.March))
	assert.Equal(t, 6, calendar.FirstWeekday(2025, time.June))
}

func TestMonthGrid_March2025(t *testing.T) {
	// 31 days starting on a Saturday: ceil((31+5)/7) = 6 week rows.
	grid, err := calendar.MonthGrid(2025, 3)
	require.NoError(t, err)

	assert.Equal(t, 31, grid.Days)
	assert.Equal(t, 5, grid.FirstWeekday)
	assert.Equal(t, 6, grid.Rows)
	require.Len(t, grid.Cells, 31)

	first := grid.Cells[0]
	assert.Equal(t, 1, first.Day)
	assert.Equal(t, 0, first.Row)
	assert.Equal(t, 5, first.Col)

	// 2025-03-31 is a Monday: last row, first column.
	last := grid.Cells[30]
	assert.Equal(t, 31, last.Day)
	assert.Equal(t, 5, last.Row)
	assert.Equal(t, 0, last.Col)
	assert.Equal(t, time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), last.Date)
}

func TestMonthGrid_Invariants(t *testing.T) {
	// Every populated cell is unique, rows match the ceil formula, and the
	// cell sequence advances one day at a time left to right.
	for year := 2023; year <= 2026; year++ {
		for month := 1; month <= 12; month++ {
			grid, err := calendar.MonthGrid(year, month)
			require.NoError(t, err)

			require.Len(t, grid.Cells, grid.Days)
			wantRows := (grid.Days + grid.FirstWeekday + 6) / 7
			assert.Equal(t, wantRows, grid.Rows)

			seen := make(map[[2]int]bool)
			for i, cell := range grid.Cells {
				assert.Equal(t, i+1, cell.Day)
				assert.GreaterOrEqual(t, cell.Col, 0)
				assert.Less(t, cell.Col, 7)
				assert.Less(t, cell.Row, grid.Rows)
				pos := [2]int{cell.Row, cell.Col}
				assert.False(t, seen[pos], "duplicate cell at %v", pos)
				seen[pos] = true
			}
		}
	}
}

func TestMonthGrid_PerfectRectangle(t *testing.T) {
	// February 2021: 28 days starting on a Monday fills exactly 4 rows.
	grid, err := calendar.MonthGrid(2021, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, grid.FirstWeekday)
	assert.Equal(t, 4, grid.Rows)
	assert.Equal(t, 6, grid.Cells[27].Col)
}

func TestMonthGrid_InvalidMonth(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		_, err := calendar.MonthGrid(2025, month)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name  string
		in    time.Time
		first time.Time
		last  time.Time
	}{
		{
			name:  "mid-month input",
			in:    time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC),
			first: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			last:  time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "leap february",
			in:    time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC),
			first: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			last:  time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "december wraps the year",
			in:    time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
			first: time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
			last:  time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := calendar.MonthBounds(tt.in)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.last, last)
		})
	}
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "05.03.2025", calendar.DayKey(time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)))
}
