package services

import (
	"context"
	"time"

	"github.com/hospitaldms/duty_scheduler/internal/core/domain"
)

// ScheduleReaderSvc defines read operations over shift assignments.
type ScheduleReaderSvc interface {
	// ListShiftsForDate retrieves the duty roster of a single date. The
	// order is the natural join order; callers must not rely on it.
	ListShiftsForDate(ctx context.Context, date time.Time) ([]domain.ShiftEntry, error)

	// GetMonthSchedule aggregates the month containing anyDateInMonth into a
	// map keyed by DD.MM.YYYY. Days without assignments are absent keys.
	GetMonthSchedule(ctx context.Context, anyDateInMonth time.Time) (domain.MonthSchedule, error)

	// MonthGrid computes the week-aligned month view with each day's roster
	// attached.
	MonthGrid(ctx context.Context, year, month int) (*domain.ScheduleGrid, error)
}

// ScheduleWriterSvc defines write operations over shift assignments.
type ScheduleWriterSvc interface {
	// AddShift assigns an employee to duty on a date and returns the new
	// shift id. A pre-existing assignment for the same pair is not checked.
	AddShift(ctx context.Context, employeeID int64, date time.Time) (int64, error)

	// RemoveShift deletes a shift assignment; apperrors.ErrNotFound when the
	// id is unknown.
	RemoveShift(ctx context.Context, shiftID int64) error
}

// ScheduleSvcFacade combines all schedule-related service interfaces
type ScheduleSvcFacade interface {
	ScheduleReaderSvc
	ScheduleWriterSvc
}
