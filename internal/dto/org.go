package dto

import "github.com/hospitaldms/duty_scheduler/internal/core/domain"

// DepartmentResponse is one department of the seeded org structure.
type DepartmentResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	BuildingID int64  `json:"buildingID"`
}

// ListDepartmentsResponse wraps the department listing.
type ListDepartmentsResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}

// BuildingResponse is one building of the seeded org structure.
type BuildingResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ListBuildingsResponse wraps the building listing.
type ListBuildingsResponse struct {
	Buildings []BuildingResponse `json:"buildings"`
}

// ToListDepartmentsResponse converts domain departments to the listing DTO.
func ToListDepartmentsResponse(departments []domain.Department) ListDepartmentsResponse {
	rows := make([]DepartmentResponse, len(departments))
	for i, d := range departments {
		rows[i] = DepartmentResponse{ID: d.ID, Name: d.Name, BuildingID: d.BuildingID}
	}
	return ListDepartmentsResponse{Departments: rows}
}

// ToListBuildingsResponse converts domain buildings to the listing DTO.
func ToListBuildingsResponse(buildings []domain.Building) ListBuildingsResponse {
	rows := make([]BuildingResponse, len(buildings))
	for i, b := range buildings {
		rows[i] = BuildingResponse{ID: b.ID, Name: b.Name}
	}
	return ListBuildingsResponse{Buildings: rows}
}
