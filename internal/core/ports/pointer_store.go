package ports

import "context"

// PointerStore persists the durable session pointer: a single slot holding
// the id of the bound account so the session survives a process restart.
// Absence is not an error; Load returns "" for an empty slot.
type PointerStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, userID string) error
	Clear(ctx context.Context) error
}
