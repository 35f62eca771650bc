package ports

import "github.com/beneficios/portal-api/internal/core/domain"

// NewUserInput carries the registration payload. Role and status are absent
// on purpose: the directory forces COLABORADOR/ATIVO on every new account.
type NewUserInput struct {
	Name     string
	Email    string
	Username string
	Secret   string
	CPF      string
	Phone    string
	Banking  domain.BankingDetails
}

// UserDirectory is the system of record for credentials and role assignment
// within a running portal instance. Insertion order is preserved; accounts
// are never deleted.
type UserDirectory interface {
	// Users returns the accounts in insertion order.
	Users() []*domain.UserAccount

	// ByID looks up a single account.
	ByID(id string) (*domain.UserAccount, bool)

	// AddUser assigns a fresh unique id, forces role COLABORADOR and status
	// ATIVO, appends the record and returns it.
	AddUser(input NewUserInput) *domain.UserAccount

	// SetRole reassigns the role of the given account, preserving every other
	// field and the record's position. Records already handed out stay
	// untouched; callers re-fetch to observe the new role. Unknown ids are
	// ignored.
	SetRole(userID string, role domain.Role)
}
