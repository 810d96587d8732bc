package repositories

import (
	"context"

	"github.com/hospitaldms/duty_scheduler/internal/core/domain"
)

// OrgUnitReader defines read operations over the seeded organizational units.
type OrgUnitReader interface {
	// FindDepartments retrieves all departments ordered by name ascending.
	FindDepartments(ctx context.Context) ([]domain.Department, error)

	// FindDepartmentByName resolves an exact department name;
	// apperrors.ErrNotFound when there is no match.
	FindDepartmentByName(ctx context.Context, name string) (*domain.Department, error)

	// FindBuildings retrieves all buildings ordered by name ascending.
	FindBuildings(ctx context.Context) ([]domain.Building, error)
}

// OrgRepositoryFacade combines the organizational-unit repository interfaces.
// Buildings and departments are seed data: there is deliberately no writer.
type OrgRepositoryFacade interface {
	OrgUnitReader
}
