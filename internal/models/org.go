package models

// Building mirrors the buildings table.
type Building struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// Department mirrors the departments table.
type Department struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	BuildingID int64  `db:"building_id"`
}
