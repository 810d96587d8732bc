package domain

import "time"

// GridDay is one populated cell of the month view: a calendar day at its
// week-aligned position, carrying that day's duty roster.
type GridDay struct {
	Day    int          `json:"day"`
	Row    int          `json:"row"`
	Col    int          `json:"col"`
	Date   time.Time    `json:"date"`
	Shifts []ShiftEntry `json:"shifts"`
}

// ScheduleGrid is the month view: a 7-column table with Rows week rows and one
// GridDay per calendar day.
type ScheduleGrid struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Rows  int        `json:"rows"`
	Days  []GridDay  `json:"days"`
}
