package dto

import "github.com/hospitaldms/duty_scheduler/internal/core/domain"

// MonthParams selects a (year, month) pair for month-level endpoints.
type MonthParams struct {
	Year  int `form:"year" binding:"required"`
	Month int `form:"month" binding:"required"`
}

// MonthScheduleResponse is the month aggregation: formatted date (DD.MM.YYYY)
// to the names on duty that day. Days without assignments are absent keys.
type MonthScheduleResponse struct {
	Year     int                  `json:"year"`
	Month    int                  `json:"month"`
	Schedule domain.MonthSchedule `json:"schedule"`
}

// GridDayResponse is one populated cell of the month view.
type GridDayResponse struct {
	Day           int             `json:"day"`
	Row           int             `json:"row"`
	Col           int             `json:"col"`
	Date          string          `json:"date"`
	EmployeeCount int             `json:"employeeCount"`
	Shifts        []ShiftResponse `json:"shifts"`
}

// MonthGridResponse is the week-aligned month view: 7 columns, WeekRows rows,
// one entry per calendar day.
type MonthGridResponse struct {
	Year      int               `json:"year"`
	Month     int               `json:"month"`
	MonthName string            `json:"monthName"`
	WeekRows  int               `json:"weekRows"`
	Days      []GridDayResponse `json:"days"`
}

// ToMonthGridResponse converts a domain.ScheduleGrid to its response DTO.
func ToMonthGridResponse(grid *domain.ScheduleGrid) MonthGridResponse {
	days := make([]GridDayResponse, len(grid.Days))
	for i, d := range grid.Days {
		days[i] = GridDayResponse{
			Day:           d.Day,
			Row:           d.Row,
			Col:           d.Col,
			Date:          d.Date.Format(WireDateFormat),
			EmployeeCount: len(d.Shifts),
			Shifts:        ToShiftResponses(d.Shifts),
		}
	}
	return MonthGridResponse{
		Year:      grid.Year,
		Month:     int(grid.Month),
		MonthName: grid.Month.String(),
		WeekRows:  grid.Rows,
		Days:      days,
	}
}
