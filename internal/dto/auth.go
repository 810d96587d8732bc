package dto

import "github.com/hospitaldms/duty_scheduler/internal/core/domain"

// LoginRequest carries a login attempt. Login is the employee's full name (or
// the fixed administrator login); the password of the legacy scheme is the
// employee's department name.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed session token plus the resolved role so
// clients can shape their UI without decoding the JWT.
type LoginResponse struct {
	Token      string      `json:"token"`
	Role       domain.Role `json:"role"`
	EmployeeID int64       `json:"employeeID,omitempty"`
}
