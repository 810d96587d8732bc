package domain

// Employee represents a hospital employee in the domain.
type Employee struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	DepartmentID int64  `json:"departmentID"`
}

// EmployeeSummary is an employee row enriched for listing: the department name
// and the total number of duty shifts ever assigned.
type EmployeeSummary struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Position       string `json:"position"`
	DepartmentName string `json:"departmentName"`
	ShiftCount     int    `json:"shiftCount"`
}

// EmployeeDetails is the employee card: what the UI shows when a single
// employee is opened.
type EmployeeDetails struct {
	Name           string `json:"name"`
	Position       string `json:"position"`
	DepartmentName string `json:"departmentName"`
	ShiftCount     int    `json:"shiftCount"`
}

// EmployeeRef is the minimal employee reference used by availability listings.
type EmployeeRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// EmployeeCredential carries what the login check needs: the employee id and
// the department name the supplied password is compared against.
type EmployeeCredential struct {
	EmployeeID     int64
	Name           string
	DepartmentName string
}
