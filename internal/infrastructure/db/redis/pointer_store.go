package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// pointerKey is the durable session slot: a single string key holding the id
// of the bound account. No TTL — the session lives until logout.
const pointerKey = "portal:session:user_id"

// PointerStore persists the durable session pointer in Redis.
type PointerStore struct {
	client *redis.Client
}

// NewPointerStore creates a PointerStore wrapping the given Redis client.
func NewPointerStore(client *redis.Client) *PointerStore {
	return &PointerStore{client: client}
}

// Load returns the persisted user id, or "" when the slot is empty. Absence
// is not an error; the session store degrades to anonymous.
func (p *PointerStore) Load(ctx context.Context) (string, error) {
	id, err := p.client.Get(ctx, pointerKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load session pointer: %w", err)
	}
	return id, nil
}

// Save writes the pointer, replacing any previous value.
func (p *PointerStore) Save(ctx context.Context, userID string) error {
	if err := p.client.Set(ctx, pointerKey, userID, 0).Err(); err != nil {
		return fmt.Errorf("save session pointer: %w", err)
	}
	return nil
}

// Clear removes the pointer. Deleting an absent key is a no-op, which keeps
// logout idempotent.
func (p *PointerStore) Clear(ctx context.Context) error {
	if err := p.client.Del(ctx, pointerKey).Err(); err != nil {
		return fmt.Errorf("clear session pointer: %w", err)
	}
	return nil
}
