package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/hospitaldms/duty_scheduler/internal/apperrors"
	"github.com/hospitaldms/duty_scheduler/internal/core/domain"
	portsrepo "github.com/hospitaldms/duty_scheduler/internal/core/ports/repositories"
	"github.com/hospitaldms/duty_scheduler/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxScheduleRepository struct {
	BaseRepository
}

func newPgxScheduleRepository(db *pgxpool.Pool) portsrepo.ScheduleRepositoryFacade {
	return &PgxScheduleRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxScheduleRepository implements portsrepo.ScheduleRepositoryFacade
var _ portsrepo.ScheduleRepositoryFacade = (*PgxScheduleRepository)(nil)

func (r *PgxScheduleRepository) FindShiftsByDate(ctx context.Context, date time.Time) ([]domain.ShiftEntry, error) {
	// Natural join order on purpose: the day roster is unordered.
	query := `
		SELECT s.id, s.employee_id, e.name
		FROM shift_assignments s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.shift_date = $1;
	`
	rows, err := r.Pool.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts for date: %w", err)
	}
	defer rows.Close()

	entries := []domain.ShiftEntry{}
	for rows.Next() {
		var entry domain.ShiftEntry
		if err := rows.Scan(&entry.ShiftID, &entry.EmployeeID, &entry.EmployeeName); err != nil {
			return nil, fmt.Errorf("failed to scan shift row: %w", err)
		}
		entries = append(entries, entry)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating shift rows: %w", rows.Err())
	}
	return entries, nil
}

func (r *PgxScheduleRepository) FindShiftsInRange(ctx context.Context, from, to time.Time) ([]domain.ShiftOnDate, error) {
	query := `
		SELECT s.id, s.employee_id, s.shift_date, e.name
		FROM shift_assignments s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.shift_date >= $1 AND s.shift_date <= $2;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts in range: %w", err)
	}
	defer rows.Close()

	shifts := []domain.ShiftOnDate{}
	for rows.Next() {
		var shift domain.ShiftOnDate
		if err := rows.Scan(&shift.ShiftID, &shift.EmployeeID, &shift.Date, &shift.EmployeeName); err != nil {
			return nil, fmt.Errorf("failed to scan ranged shift row: %w", err)
		}
		shifts = append(shifts, shift)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating ranged shift rows: %w", rows.Err())
	}
	return shifts, nil
}

func (r *PgxScheduleRepository) SaveShift(ctx context.Context, employeeID int64, date time.Time) (int64, error) {
	modelShift := models.ShiftAssignment{
		EmployeeID: employeeID,
		ShiftDate:  date,
	}
	// No duplicate check: assigning the same employee to the same date twice
	// inserts two rows, matching the legacy behavior.
	query := `
		INSERT INTO shift_assignments (employee_id, shift_date)
		VALUES ($1, $2)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query, modelShift.EmployeeID, modelShift.ShiftDate).Scan(&modelShift.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to save shift: %w", err)
	}
	return modelShift.ID, nil
}

func (r *PgxScheduleRepository) DeleteShift(ctx context.Context, shiftID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM shift_assignments WHERE id = $1;`, shiftID)
	if err != nil {
		return fmt.Errorf("failed to delete shift %d: %w", shiftID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("shift %d: %w", shiftID, apperrors.ErrNotFound)
	}
	return nil
}
