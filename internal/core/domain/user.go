package domain

import "errors"

// Role is the access-control tier assigned to a user account. Authorization
// is decided by set membership against the roles a route accepts; there is no
// implicit ordering between roles.
type Role string

const (
	RoleCollaborator Role = "COLABORADOR"
	RoleHRManager    Role = "GESTOR_RH"
	RoleAdmin        Role = "ADMIN"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCollaborator, RoleHRManager, RoleAdmin:
		return true
	}
	return false
}

// UserStatus represents the lifecycle state of a user account.
type UserStatus string

const (
	StatusActive   UserStatus = "ATIVO"
	StatusInactive UserStatus = "INATIVO"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidRole = errors.New("invalid role")

// BankingDetails holds the payout destination for a collaborator. Free-form
// strings; format validation is not performed here.
type BankingDetails struct {
	Bank    string `json:"bank"`
	Branch  string `json:"branch"`
	Account string `json:"account"`
}

// UserAccount models an identity in the portal directory. ID is immutable and
// unique across the directory. The directory treats published records as
// immutable snapshots; a role change produces a fresh record.
type UserAccount struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Username   string         `json:"username"`
	SecretHash string         `json:"-"`
	CPF        string         `json:"cpf"`
	Phone      string         `json:"phone"`
	Role       Role           `json:"role"`
	Status     UserStatus     `json:"status"`
	Banking    BankingDetails `json:"banking_details"`
}

// IsRole reports whether u is present and holds exactly the given role.
func IsRole(u *UserAccount, role Role) bool {
	return u != nil && u.Role == role
}

// HasAnyRole reports whether u is present and its role is a member of roles.
// An empty list yields false; the route guard, not this predicate, encodes
// the "empty set means no restriction" policy.
func HasAnyRole(u *UserAccount, roles ...Role) bool {
	if u == nil {
		return false
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
