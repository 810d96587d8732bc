package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/hospitaldms/duty_scheduler/internal/apperrors"
	"github.com/hospitaldms/duty_scheduler/internal/core/domain"
	portsrepo "github.com/hospitaldms/duty_scheduler/internal/core/ports/repositories"
	portssvc "github.com/hospitaldms/duty_scheduler/internal/core/ports/services"
)

// Fixed administrator credentials of the legacy scheme. The pair is part of
// the observable login behavior and must not change.
const (
	adminLogin    = "admin"
	adminPassword = "admin"
)

type authService struct {
	employeeRepo portsrepo.EmployeeAuthReader
}

// NewAuthService creates the login service.
func NewAuthService(employeeRepo portsrepo.EmployeeAuthReader) portssvc.AuthSvcFacade {
	return &authService{employeeRepo: employeeRepo}
}

// Authenticate resolves a login attempt. The admin pair short-circuits before
// any store lookup, so it works regardless of store contents. Employee logins
// match the employee name exactly and compare the password against the
// employee's department name, case-sensitively.
func (s *authService) Authenticate(ctx context.Context, login, password string) (*domain.Session, error) {
	if login == adminLogin && password == adminPassword {
		return &domain.Session{Role: domain.RoleAdmin}, nil
	}

	cred, err := s.employeeRepo.FindEmployeeByName(ctx, login)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to look up login name: %w", err)
	}

	if cred.DepartmentName != password {
		return nil, apperrors.ErrWrongPassword
	}

	return &domain.Session{
		Role:       domain.RoleEmployee,
		EmployeeID: cred.EmployeeID,
	}, nil
}
