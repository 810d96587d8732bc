package services

import (
	portsrepo "github.com/hospitaldms/duty_scheduler/internal/core/ports/repositories"
	portssvc "github.com/hospitaldms/duty_scheduler/internal/core/ports/services"
	"github.com/hospitaldms/duty_scheduler/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Employee = NewEmployeeService(repos.EmployeeRepo, repos.OrgRepo)
	container.Schedule = NewScheduleService(repos.ScheduleRepo)
	container.Auth = NewAuthService(repos.EmployeeRepo)

	// Report rendering reads through the schedule service so exports always
	// agree with what the API serves.
	container.Report = NewReportService(container.Schedule, cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.EmployeeSvcFacade = (*employeeService)(nil)
	_ portssvc.ScheduleSvcFacade = (*scheduleService)(nil)
	_ portssvc.AuthSvcFacade     = (*authService)(nil)
	_ portssvc.ReportSvcFacade   = (*reportService)(nil)
)
