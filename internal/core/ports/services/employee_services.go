package services

import (
	"context"
	"time"

	"github.com/hospitaldms/duty_scheduler/internal/core/domain"
	"github.com/hospitaldms/duty_scheduler/internal/dto"
)

// EmployeeReaderSvc defines read operations for employee data
type EmployeeReaderSvc interface {
	// GetEmployeeDetails retrieves the employee card for a single employee.
	GetEmployeeDetails(ctx context.Context, employeeID int64) (*domain.EmployeeDetails, error)

	// ListEmployees retrieves all employees ordered by name ascending.
	ListEmployees(ctx context.Context) ([]domain.EmployeeSummary, error)

	// ListAvailableEmployees retrieves employees with no duty shift on the
	// given date, ordered by name ascending.
	ListAvailableEmployees(ctx context.Context, date time.Time) ([]domain.EmployeeRef, error)
}

// EmployeeWriterSvc defines write operations for employee data
type EmployeeWriterSvc interface {
	// CreateEmployee creates a new employee, resolving the department by its
	// exact name.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)
}

// OrgUnitSvc exposes the seeded organizational units.
type OrgUnitSvc interface {
	// ListDepartments retrieves all departments ordered by name ascending.
	ListDepartments(ctx context.Context) ([]domain.Department, error)

	// ListBuildings retrieves all buildings ordered by name ascending.
	ListBuildings(ctx context.Context) ([]domain.Building, error)
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
	OrgUnitSvc
}
