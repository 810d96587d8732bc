package repositories

import (
	"context"
	"time"

	"github.com/hospitaldms/duty_scheduler/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeDetails retrieves the employee card (department name and
	// shift count included) for a single employee.
	FindEmployeeDetails(ctx context.Context, employeeID int64) (*domain.EmployeeDetails, error)

	// FindEmployees retrieves all employees with department names and shift
	// counts, ordered by name ascending.
	FindEmployees(ctx context.Context) ([]domain.EmployeeSummary, error)

	// FindAvailableEmployees retrieves employees with no shift assignment on
	// the given date, ordered by name ascending.
	FindAvailableEmployees(ctx context.Context, date time.Time) ([]domain.EmployeeRef, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee persists a new employee and returns its generated id.
	SaveEmployee(ctx context.Context, name, position string, departmentID int64) (int64, error)
}

// EmployeeAuthReader defines the lookup the login check needs.
type EmployeeAuthReader interface {
	// FindEmployeeByName resolves a login name to an employee joined with its
	// department. When several employees share the name, the one inserted
	// first wins.
	FindEmployeeByName(ctx context.Context, name string) (*domain.EmployeeCredential, error)
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
	EmployeeAuthReader
}
