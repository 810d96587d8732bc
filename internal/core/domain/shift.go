package domain

import "time"

// ShiftEntry is one duty assignment as shown on a day's roster.
type ShiftEntry struct {
	ShiftID      int64  `json:"shiftID"`
	EmployeeID   int64  `json:"employeeID"`
	EmployeeName string `json:"employeeName"`
}

// ShiftOnDate is a duty assignment together with its calendar date, as returned
// by month-range queries.
type ShiftOnDate struct {
	Date time.Time `json:"date"`
	ShiftEntry
}

// MonthSchedule maps a formatted date (DD.MM.YYYY) to the names of the
// employees on duty that day. Dates without assignments are absent keys, never
// present with an empty list.
type MonthSchedule map[string][]string
