package middleware

import (
	"context"

	"github.com/hospitaldms/duty_scheduler/internal/core/domain"
)

// sessionCtxKey is the key used to store the authenticated session in the
// request context.
const sessionCtxKey = contextKey("session")

// GetSessionFromContext retrieves the authenticated session from the context.
// It returns the session and a boolean indicating if it was found.
func GetSessionFromContext(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(sessionCtxKey).(*domain.Session)
	if !ok {
		return nil, false
	}
	return session, true
}
