package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hospitaldms/duty_scheduler/internal/apperrors"
	"github.com/hospitaldms/duty_scheduler/internal/core/domain"
	portsrepo "github.com/hospitaldms/duty_scheduler/internal/core/ports/repositories"
	portssvc "github.com/hospitaldms/duty_scheduler/internal/core/ports/services"
	"github.com/hospitaldms/duty_scheduler/internal/dto"
)

type employeeService struct {
	employeeRepo portsrepo.EmployeeRepositoryFacade
	orgRepo      portsrepo.OrgRepositoryFacade
}

// NewEmployeeService creates the employee/org-unit service.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade, orgRepo portsrepo.OrgRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{
		employeeRepo: employeeRepo,
		orgRepo:      orgRepo,
	}
}

func (s *employeeService) GetEmployeeDetails(ctx context.Context, employeeID int64) (*domain.EmployeeDetails, error) {
	details, err := s.employeeRepo.FindEmployeeDetails(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee details: %w", err)
	}
	return details, nil
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]domain.EmployeeSummary, error) {
	employees, err := s.employeeRepo.FindEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *employeeService) ListAvailableEmployees(ctx context.Context, date time.Time) ([]domain.EmployeeRef, error) {
	refs, err := s.employeeRepo.FindAvailableEmployees(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list available employees: %w", err)
	}
	return refs, nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	name := strings.TrimSpace(req.Name)
	position := strings.TrimSpace(req.Position)
	departmentName := strings.TrimSpace(req.DepartmentName)
	if name == "" || position == "" || departmentName == "" {
		return nil, fmt.Errorf("name, position and department are required: %w", apperrors.ErrValidation)
	}

	department, err := s.orgRepo.FindDepartmentByName(ctx, departmentName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("department %q: %w", departmentName, apperrors.ErrDepartmentNotFound)
		}
		return nil, fmt.Errorf("failed to resolve department: %w", err)
	}

	employeeID, err := s.employeeRepo.SaveEmployee(ctx, name, position, department.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return &domain.Employee{
		ID:           employeeID,
		Name:         name,
		Position:     position,
		DepartmentID: department.ID,
	}, nil
}

func (s *employeeService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	departments, err := s.orgRepo.FindDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

func (s *employeeService) ListBuildings(ctx context.Context) ([]domain.Building, error) {
	buildings, err := s.orgRepo.FindBuildings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}
	return buildings, nil
}
