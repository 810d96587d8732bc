package models

import "time"

// ShiftAssignment mirrors the shift_assignments table. ShiftDate is a calendar
// date; the time component is always midnight UTC.
type ShiftAssignment struct {
	ID         int64     `db:"id"`
	EmployeeID int64     `db:"employee_id"`
	ShiftDate  time.Time `db:"shift_date"`
}
