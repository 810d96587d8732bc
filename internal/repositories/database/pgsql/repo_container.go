package pgsql

import (
	portsrepo "github.com/hospitaldms/duty_scheduler/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EmployeeRepo: newPgxEmployeeRepository(dbPool),
		ScheduleRepo: newPgxScheduleRepository(dbPool),
		OrgRepo:      newPgxOrgRepository(dbPool),
	}
}
