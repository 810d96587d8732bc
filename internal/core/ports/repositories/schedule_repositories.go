package repositories

import (
	"context"
	"time"

	"github.com/hospitaldms/duty_scheduler/internal/core/domain"
)

// ScheduleReader defines read operations for shift assignments
type ScheduleReader interface {
	// FindShiftsByDate retrieves all shift assignments on the given date,
	// joined with the employee name. Natural join order; no sorting.
	FindShiftsByDate(ctx context.Context, date time.Time) ([]domain.ShiftEntry, error)

	// FindShiftsInRange retrieves all shift assignments with dates in the
	// inclusive [from, to] range, joined with the employee name.
	FindShiftsInRange(ctx context.Context, from, to time.Time) ([]domain.ShiftOnDate, error)
}

// ScheduleWriter defines write operations for shift assignments
type ScheduleWriter interface {
	// SaveShift inserts a shift assignment and returns its generated id.
	// Duplicate (employee, date) pairs are not checked.
	SaveShift(ctx context.Context, employeeID int64, date time.Time) (int64, error)

	// DeleteShift removes a shift assignment; apperrors.ErrNotFound when no
	// such row exists.
	DeleteShift(ctx context.Context, shiftID int64) error
}

// ScheduleRepositoryFacade combines all schedule-related repository interfaces
type ScheduleRepositoryFacade interface {
	ScheduleReader
	ScheduleWriter
}
