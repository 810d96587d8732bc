package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDepartmentNotFound indicates that a department name could not be resolved
// to an existing department.
var ErrDepartmentNotFound = errors.New("department not found")

// ErrUnauthorized indicates a request without a valid session.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates a valid session lacking the required role.
var ErrForbidden = errors.New("forbidden")

// ErrEmployeeNotFound is the login rejection reason for an unknown login name.
var ErrEmployeeNotFound = errors.New("employee not found")

// ErrWrongPassword is the login rejection reason for a known login name with a
// non-matching password.
var ErrWrongPassword = errors.New("wrong password")
