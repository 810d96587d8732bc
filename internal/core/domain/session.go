package domain

// Role is the authenticated role of a session.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Session is the outcome of a successful login. It is constructed at login
// and travels with each request; there is no server-side session state.
type Session struct {
	Role Role `json:"role"`
	// EmployeeID is set only for employee sessions.
	EmployeeID int64 `json:"employeeID,omitempty"`
}

// IsAdmin reports whether the session carries administrator rights.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
