package memory

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/beneficios/portal-api/internal/core/domain"
	"github.com/beneficios/portal-api/internal/core/ports"
)

// Directory is the in-memory user directory: an insertion-ordered collection
// seeded at startup, growing only through registration. Published records are
// never mutated; SetRole swaps in an updated copy, so a pointer handed out by
// Users or ByID is always a consistent snapshot even while another request
// changes a role.
type Directory struct {
	mu    sync.RWMutex
	users []*domain.UserAccount
}

// NewDirectory creates a Directory holding the given seed accounts.
func NewDirectory(seed []*domain.UserAccount) *Directory {
	users := make([]*domain.UserAccount, len(seed))
	copy(users, seed)
	return &Directory{users: users}
}

// Users returns the accounts in insertion order.
func (d *Directory) Users() []*domain.UserAccount {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]*domain.UserAccount, len(d.users))
	copy(out, d.users)
	return out
}

// ByID returns the account with the given id, if present.
func (d *Directory) ByID(id string) (*domain.UserAccount, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if u.ID == id {
			return u, true
		}
	}
	return nil, false
}

// AddUser appends a new account. The id is freshly generated, the role is
// forced to COLABORADOR and the status to ATIVO regardless of the input.
// Duplicate usernames or emails are not rejected; login resolves collisions
// by first match in insertion order.
func (d *Directory) AddUser(input ports.NewUserInput) *domain.UserAccount {
	user := &domain.UserAccount{
		ID:         uuid.NewString(),
		Name:       input.Name,
		Email:      input.Email,
		Username:   input.Username,
		SecretHash: HashSecret(input.Secret),
		CPF:        input.CPF,
		Phone:      input.Phone,
		Role:       domain.RoleCollaborator,
		Status:     domain.StatusActive,
		Banking:    input.Banking,
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.users = append(d.users, user)
	return user
}

// SetRole replaces the record of the given account with a copy carrying the
// new role. Unknown ids are a caller bug, ignored silently; position and all
// other fields are preserved. Copy-on-write keeps previously returned pointers
// race-free for concurrent readers; callers that need the new role re-fetch.
func (d *Directory) SetRole(userID string, role domain.Role) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, u := range d.users {
		if u.ID == userID {
			updated := *u
			updated.Role = role
			d.users[i] = &updated
			return
		}
	}
}

// HashSecret derives the stored credential hash for a secret.
func HashSecret(secret string) string {
	// bcrypt rejects inputs beyond 72 bytes; truncating keeps registration
	// infallible without weakening the demo credentials used here.
	if len(secret) > 72 {
		secret = secret[:72]
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	return string(hash)
}
