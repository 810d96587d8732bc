package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hospitaldms/duty_scheduler/internal/core/domain"
	portsrepo "github.com/hospitaldms/duty_scheduler/internal/core/ports/repositories"
	portssvc "github.com/hospitaldms/duty_scheduler/internal/core/ports/services"
	"github.com/hospitaldms/duty_scheduler/internal/utils/calendar"
)

type scheduleService struct {
	scheduleRepo portsrepo.ScheduleRepositoryFacade
}

// NewScheduleService creates the shift-assignment service.
func NewScheduleService(scheduleRepo portsrepo.ScheduleRepositoryFacade) portssvc.ScheduleSvcFacade {
	return &scheduleService{scheduleRepo: scheduleRepo}
}

func (s *scheduleService) ListShiftsForDate(ctx context.Context, date time.Time) ([]domain.ShiftEntry, error) {
	entries, err := s.scheduleRepo.FindShiftsByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts for date: %w", err)
	}
	return entries, nil
}

func (s *scheduleService) AddShift(ctx context.Context, employeeID int64, date time.Time) (int64, error) {
	shiftID, err := s.scheduleRepo.SaveShift(ctx, employeeID, date)
	if err != nil {
		return 0, fmt.Errorf("failed to add shift: %w", err)
	}
	return shiftID, nil
}

func (s *scheduleService) RemoveShift(ctx context.Context, shiftID int64) error {
	if err := s.scheduleRepo.DeleteShift(ctx, shiftID); err != nil {
		return fmt.Errorf("failed to remove shift: %w", err)
	}
	return nil
}

func (s *scheduleService) GetMonthSchedule(ctx context.Context, anyDateInMonth time.Time) (domain.MonthSchedule, error) {
	first, last := calendar.MonthBounds(anyDateInMonth)
	shifts, err := s.scheduleRepo.FindShiftsInRange(ctx, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate month schedule: %w", err)
	}

	schedule := domain.MonthSchedule{}
	for _, shift := range shifts {
		key := calendar.DayKey(shift.Date)
		schedule[key] = append(schedule[key], shift.EmployeeName)
	}
	return schedule, nil
}

func (s *scheduleService) MonthGrid(ctx context.Context, year, month int) (*domain.ScheduleGrid, error) {
	grid, err := calendar.MonthGrid(year, month)
	if err != nil {
		return nil, err
	}

	// One ranged query instead of a per-day round trip; grouped in memory.
	first := grid.Cells[0].Date
	last := grid.Cells[len(grid.Cells)-1].Date
	shifts, err := s.scheduleRepo.FindShiftsInRange(ctx, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to load shifts for month grid: %w", err)
	}

	byDay := make(map[int][]domain.ShiftEntry)
	for _, shift := range shifts {
		day := shift.Date.Day()
		byDay[day] = append(byDay[day], shift.ShiftEntry)
	}

	days := make([]domain.GridDay, len(grid.Cells))
	for i, cell := range grid.Cells {
		entries := byDay[cell.Day]
		if entries == nil {
			entries = []domain.ShiftEntry{}
		}
		days[i] = domain.GridDay{
			Day:    cell.Day,
			Row:    cell.Row,
			Col:    cell.Col,
			Date:   cell.Date,
			Shifts: entries,
		}
	}
	return &domain.ScheduleGrid{
		Year:  grid.Year,
		Month: grid.Month,
		Rows:  grid.Rows,
		Days:  days,
	}, nil
}
