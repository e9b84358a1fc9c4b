package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const guardTTL = 10 * time.Minute

// RegistrationGuard suppresses double submissions of the membership form.
// Key format: register:<email>
type RegistrationGuard struct {
	client *redis.Client
}

// NewRegistrationGuard creates a RegistrationGuard wrapping the given Redis client.
func NewRegistrationGuard(client *redis.Client) *RegistrationGuard {
	return &RegistrationGuard{client: client}
}

// IsDuplicate reports whether a registration for this email was already
// accepted within the guard window.
func (g *RegistrationGuard) IsDuplicate(ctx context.Context, email string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(email)).Result()
	if err != nil {
		return false, fmt.Errorf("registration guard check: %w", err)
	}
	return n > 0, nil
}

// Mark records that a registration for this email was accepted (expires
// after guardTTL).
func (g *RegistrationGuard) Mark(ctx context.Context, email string) error {
	return g.client.Set(ctx, g.key(email), "1", guardTTL).Err()
}

func (g *RegistrationGuard) key(email string) string {
	return "register:" + email
}
