package auth

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist invalidates JWT tokens before they expire (logout).
type TokenBlacklist interface {
	// Add stores a token's JTI until the token would have expired.
	Add(ctx context.Context, jti string, ttl time.Duration) error
	// Contains checks whether a JTI has been revoked.
	Contains(ctx context.Context, jti string) (bool, error)
}

// RedisTokenBlacklist implements TokenBlacklist using Redis
type RedisTokenBlacklist struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisTokenBlacklist creates a token blacklist on an existing client
func NewRedisTokenBlacklist(client *redis.Client) *RedisTokenBlacklist {
	return &RedisTokenBlacklist{
		client:    client,
		keyPrefix: "token:blacklist:",
	}
}

// Add implements TokenBlacklist
func (b *RedisTokenBlacklist) Add(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired, nothing to revoke
	}
	return b.client.Set(ctx, b.keyPrefix+jti, "1", ttl).Err()
}

// Contains implements TokenBlacklist
func (b *RedisTokenBlacklist) Contains(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, b.keyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MemoryTokenBlacklist is an in-process TokenBlacklist for development
// and tests; entries are dropped lazily on lookup.
type MemoryTokenBlacklist struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

// NewMemoryTokenBlacklist creates an empty in-memory blacklist
func NewMemoryTokenBlacklist() *MemoryTokenBlacklist {
	return &MemoryTokenBlacklist{entries: make(map[string]time.Time)}
}

// Add implements TokenBlacklist
func (b *MemoryTokenBlacklist) Add(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[jti] = time.Now().Add(ttl)
	return nil
}

// Contains implements TokenBlacklist
func (b *MemoryTokenBlacklist) Contains(_ context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	deadline, ok := b.entries[jti]
	if !ok {
		return false, nil
	}
	if time.Now().After(deadline) {
		delete(b.entries, jti)
		return false, nil
	}
	return true, nil
}
