package dto

import "github.com/hospitaldms/duty_scheduler/internal/core/domain"

// CreateEmployeeRequest defines the data required to add an employee. The
// department is referenced by its exact name, matching the combo-box driven
// flow of the admin UI.
type CreateEmployeeRequest struct {
	Name           string `json:"name" binding:"required"`
	Position       string `json:"position" binding:"required"`
	DepartmentName string `json:"departmentName" binding:"required"`
}

// EmployeeResponse is the created-employee payload.
type EmployeeResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	DepartmentID int64  `json:"departmentID"`
}

// EmployeeSummaryResponse is one row of the employee listing.
type EmployeeSummaryResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Position       string `json:"position"`
	DepartmentName string `json:"departmentName"`
	ShiftCount     int    `json:"shiftCount"`
}

// EmployeeDetailsResponse is the employee card.
type EmployeeDetailsResponse struct {
	Name           string `json:"name"`
	Position       string `json:"position"`
	DepartmentName string `json:"departmentName"`
	ShiftCount     int    `json:"shiftCount"`
}

// ListEmployeesResponse wraps the employee listing.
type ListEmployeesResponse struct {
	Employees []EmployeeSummaryResponse `json:"employees"`
}

// AvailableEmployeesParams selects the date whose unassigned employees are
// listed.
type AvailableEmployeesParams struct {
	Date string `form:"date" binding:"required,dateformat"`
}

// EmployeeRefResponse is a minimal employee reference.
type EmployeeRefResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AvailableEmployeesResponse lists employees free on a date.
type AvailableEmployeesResponse struct {
	Date      string                `json:"date"`
	Employees []EmployeeRefResponse `json:"employees"`
}

// ToEmployeeResponse converts a domain.Employee to its response DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Position:     e.Position,
		DepartmentID: e.DepartmentID,
	}
}

// ToListEmployeesResponse converts a slice of domain.EmployeeSummary to the
// listing DTO.
func ToListEmployeesResponse(employees []domain.EmployeeSummary) ListEmployeesResponse {
	rows := make([]EmployeeSummaryResponse, len(employees))
	for i, e := range employees {
		rows[i] = EmployeeSummaryResponse{
			ID:             e.ID,
			Name:           e.Name,
			Position:       e.Position,
			DepartmentName: e.DepartmentName,
			ShiftCount:     e.ShiftCount,
		}
	}
	return ListEmployeesResponse{Employees: rows}
}

// ToEmployeeDetailsResponse converts a domain.EmployeeDetails to its DTO.
func ToEmployeeDetailsResponse(d *domain.EmployeeDetails) EmployeeDetailsResponse {
	return EmployeeDetailsResponse{
		Name:           d.Name,
		Position:       d.Position,
		DepartmentName: d.DepartmentName,
		ShiftCount:     d.ShiftCount,
	}
}

// ToAvailableEmployeesResponse converts availability results to their DTO.
func ToAvailableEmployeesResponse(date string, refs []domain.EmployeeRef) AvailableEmployeesResponse {
	rows := make([]EmployeeRefResponse, len(refs))
	for i, r := range refs {
		rows[i] = EmployeeRefResponse{ID: r.ID, Name: r.Name}
	}
	return AvailableEmployeesResponse{Date: date, Employees: rows}
}
