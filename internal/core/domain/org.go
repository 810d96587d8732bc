package domain

// Building is the top-level organizational grouping. Buildings are seed data
// and immutable through this service.
type Building struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Department belongs to exactly one Building. Its name doubles as the login
// password of the employees assigned to it (preserved legacy scheme).
type Department struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	BuildingID int64  `json:"buildingID"`
}
