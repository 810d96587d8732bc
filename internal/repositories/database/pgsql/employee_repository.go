package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hospitaldms/duty_scheduler/internal/apperrors"
	"github.com/hospitaldms/duty_scheduler/internal/core/domain"
	portsrepo "github.com/hospitaldms/duty_scheduler/internal/core/ports/repositories"
	"github.com/hospitaldms/duty_scheduler/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(db *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxEmployeeRepository implements portsrepo.EmployeeRepositoryFacade
var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

func (r *PgxEmployeeRepository) FindEmployeeDetails(ctx context.Context, employeeID int64) (*domain.EmployeeDetails, error) {
	query := `
		SELECT e.name, e.position, d.name,
		       (SELECT COUNT(*) FROM shift_assignments s WHERE s.employee_id = e.id)
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		WHERE e.id = $1;
	`
	var details domain.EmployeeDetails
	err := r.Pool.QueryRow(ctx, query, employeeID).Scan(
		&details.Name,
		&details.Position,
		&details.DepartmentName,
		&details.ShiftCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee %d: %w", employeeID, err)
	}
	return &details, nil
}

func (r *PgxEmployeeRepository) FindEmployees(ctx context.Context) ([]domain.EmployeeSummary, error) {
	// Single join + group-by instead of one count query per employee.
	query := `
		SELECT e.id, e.name, e.position, d.name, COUNT(s.id)
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		LEFT JOIN shift_assignments s ON s.employee_id = e.id
		GROUP BY e.id, e.name, e.position, d.name
		ORDER BY e.name ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.EmployeeSummary{}
	for rows.Next() {
		var emp domain.EmployeeSummary
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Position, &emp.DepartmentName, &emp.ShiftCount); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, emp)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", rows.Err())
	}
	return employees, nil
}

func (r *PgxEmployeeRepository) FindAvailableEmployees(ctx context.Context, date time.Time) ([]domain.EmployeeRef, error) {
	query := `
		SELECT e.id, e.name
		FROM employees e
		WHERE e.id NOT IN (
			SELECT s.employee_id FROM shift_assignments s WHERE s.shift_date = $1
		)
		ORDER BY e.name ASC;
	`
	rows, err := r.Pool.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query available employees: %w", err)
	}
	defer rows.Close()

	refs := []domain.EmployeeRef{}
	for rows.Next() {
		var ref domain.EmployeeRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, fmt.Errorf("failed to scan available employee row: %w", err)
		}
		refs = append(refs, ref)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating available employee rows: %w", rows.Err())
	}
	return refs, nil
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, name, position string, departmentID int64) (int64, error) {
	modelEmployee := models.Employee{
		Name:         name,
		Position:     position,
		DepartmentID: departmentID,
	}
	query := `
		INSERT INTO employees (name, position, department_id)
		VALUES ($1, $2, $3)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		modelEmployee.Name,
		modelEmployee.Position,
		modelEmployee.DepartmentID,
	).Scan(&modelEmployee.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to save employee: %w", err)
	}
	return modelEmployee.ID, nil
}

func (r *PgxEmployeeRepository) FindEmployeeByName(ctx context.Context, name string) (*domain.EmployeeCredential, error) {
	// Employee names carry no uniqueness constraint; first match by insertion
	// order is the defined tie-break.
	query := `
		SELECT e.id, e.name, d.name
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		WHERE e.name = $1
		ORDER BY e.id ASC
		LIMIT 1;
	`
	var cred domain.EmployeeCredential
	err := r.Pool.QueryRow(ctx, query, name).Scan(&cred.EmployeeID, &cred.Name, &cred.DepartmentName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by name: %w", err)
	}
	return &cred, nil
}
