package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hospitaldms/duty_scheduler/internal/apperrors"
	"github.com/hospitaldms/duty_scheduler/internal/core/domain"
	portsrepo "github.com/hospitaldms/duty_scheduler/internal/core/ports/repositories"
	"github.com/hospitaldms/duty_scheduler/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOrgRepository struct {
	BaseRepository
}

func newPgxOrgRepository(db *pgxpool.Pool) portsrepo.OrgRepositoryFacade {
	return &PgxOrgRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxOrgRepository implements portsrepo.OrgRepositoryFacade
var _ portsrepo.OrgRepositoryFacade = (*PgxOrgRepository)(nil)

func toDomainDepartment(m models.Department) domain.Department {
	return domain.Department{
		ID:         m.ID,
		Name:       m.Name,
		BuildingID: m.BuildingID,
	}
}

func (r *PgxOrgRepository) FindDepartments(ctx context.Context) ([]domain.Department, error) {
	query := `
		SELECT id, name, building_id
		FROM departments
		ORDER BY name ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	departments := []domain.Department{}
	for rows.Next() {
		var m models.Department
		if err := rows.Scan(&m.ID, &m.Name, &m.BuildingID); err != nil {
			return nil, fmt.Errorf("failed to scan department row: %w", err)
		}
		departments = append(departments, toDomainDepartment(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", rows.Err())
	}
	return departments, nil
}

func (r *PgxOrgRepository) FindDepartmentByName(ctx context.Context, name string) (*domain.Department, error) {
	query := `
		SELECT id, name, building_id
		FROM departments
		WHERE name = $1
		LIMIT 1;
	`
	var m models.Department
	err := r.Pool.QueryRow(ctx, query, name).Scan(&m.ID, &m.Name, &m.BuildingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find department by name: %w", err)
	}
	department := toDomainDepartment(m)
	return &department, nil
}

func (r *PgxOrgRepository) FindBuildings(ctx context.Context) ([]domain.Building, error) {
	query := `
		SELECT id, name
		FROM buildings
		ORDER BY name ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query buildings: %w", err)
	}
	defer rows.Close()

	buildings := []domain.Building{}
	for rows.Next() {
		var m models.Building
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan building row: %w", err)
		}
		buildings = append(buildings, domain.Building{ID: m.ID, Name: m.Name})
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating building rows: %w", rows.Err())
	}
	return buildings, nil
}
