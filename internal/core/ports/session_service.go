package ports

import (
	"context"

	"github.com/beneficios/portal-api/internal/core/domain"
)

// SessionService is the session store: it binds the running portal instance
// to at most one directory identity and answers the authorization queries the
// route guard asks on every navigation.
type SessionService interface {
	// Login scans the directory for a record whose username or email equals
	// identifier and whose secret verifies; the first match wins. On success
	// the session is bound and the durable pointer written. A mismatch is an
	// expected outcome, reported as ok=false with session and pointer
	// untouched.
	Login(ctx context.Context, identifier, secret string) (*domain.UserAccount, bool)

	// LoginAsPreset binds the session directly to the record with the given
	// id, bypassing credentials. Demonstration shortcut only; silent no-op on
	// an unknown id.
	LoginAsPreset(ctx context.Context, userID string)

	// Logout clears the session and removes the durable pointer. Idempotent.
	Logout(ctx context.Context)

	// Register creates the account through the directory (role and status are
	// forced there) and immediately binds it as the active session.
	Register(ctx context.Context, input NewUserInput) *domain.UserAccount

	// UpdateRole changes the role of the given account; if that account is
	// the bound identity, the in-memory session copy is refreshed so the next
	// navigation sees the new role without re-login.
	UpdateRole(ctx context.Context, userID string, role domain.Role)

	// Restore re-derives the session from the durable pointer. A pointer that
	// no longer resolves in the directory degrades to an anonymous session.
	Restore(ctx context.Context)

	Current() *domain.UserAccount
	IsAuthenticated() bool
	HasRole(role domain.Role) bool
	HasAnyRole(roles ...domain.Role) bool
}
