package dto

import "github.com/hospitaldms/duty_scheduler/internal/core/domain"

// WireDateFormat is the layout of dates crossing the HTTP boundary.
const WireDateFormat = "2006-01-02"

// AddShiftRequest assigns an employee to duty on a calendar date.
type AddShiftRequest struct {
	EmployeeID int64  `json:"employeeID" binding:"required"`
	Date       string `json:"date" binding:"required,dateformat"`
}

// ShiftDateParams selects the date whose roster is listed.
type ShiftDateParams struct {
	Date string `form:"date" binding:"required,dateformat"`
}

// ShiftResponse is one duty assignment on a day's roster.
type ShiftResponse struct {
	ShiftID      int64  `json:"shiftID"`
	EmployeeID   int64  `json:"employeeID"`
	EmployeeName string `json:"employeeName"`
}

// ListShiftsResponse is a single date's roster.
type ListShiftsResponse struct {
	Date   string          `json:"date"`
	Shifts []ShiftResponse `json:"shifts"`
}

// AddShiftResponse returns the id of the inserted assignment.
type AddShiftResponse struct {
	ShiftID int64 `json:"shiftID"`
}

// ToShiftResponses converts domain shift entries to their DTOs.
func ToShiftResponses(entries []domain.ShiftEntry) []ShiftResponse {
	rows := make([]ShiftResponse, len(entries))
	for i, e := range entries {
		rows[i] = ShiftResponse{
			ShiftID:      e.ShiftID,
			EmployeeID:   e.EmployeeID,
			EmployeeName: e.EmployeeName,
		}
	}
	return rows
}
