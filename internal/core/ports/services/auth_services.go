package services

import (
	"context"

	"github.com/hospitaldms/duty_scheduler/internal/core/domain"
)

// AuthSvcFacade resolves login attempts to sessions.
type AuthSvcFacade interface {
	// Authenticate resolves (login, password) to an admin or employee
	// session. Rejections are apperrors.ErrEmployeeNotFound or
	// apperrors.ErrWrongPassword.
	Authenticate(ctx context.Context, login, password string) (*domain.Session, error)
}
