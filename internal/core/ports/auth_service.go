package ports

import (
	"context"

	"github.com/tuyulonline77-star/anlocid/internal/core/domain"
)

// AuthService verifies admin credentials and tracks the single active
// session. A credential mismatch and an unknown email both surface as
// domain.ErrInvalidCredentials so callers cannot enumerate accounts.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// IsLoggedIn reports whether token is the currently active session.
	IsLoggedIn(token string) bool
	// Logout clears the session; a token that is not the active session is
	// ignored.
	Logout(token string)
}
