package models

// Employee mirrors the employees table.
type Employee struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	Position     string `db:"position"`
	DepartmentID int64  `db:"department_id"`
}
