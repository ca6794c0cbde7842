package suppression

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists the suppression list in Redis so it survives campaign
// runs when a Redis address is configured.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed suppression list.
func NewRedisStore(client *redis.Client) *RedisStore {
	if client == nil {
		panic("suppression: redis client cannot be nil")
	}
	return &RedisStore{client: client, prefix: "suppression:"}
}

func (s *RedisStore) key(email string) string {
	return s.prefix + email
}

// Add suppresses an address, recording the reason as the value.
func (s *RedisStore) Add(ctx context.Context, email string, reason Reason) error {
	if err := s.client.Set(ctx, s.key(email), string(reason), 0).Err(); err != nil {
		return fmt.Errorf("suppression: add %s: %w", email, err)
	}
	return nil
}

// IsSuppressed reports whether an address is on the list.
func (s *RedisStore) IsSuppressed(ctx context.Context, email string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(email)).Result()
	if err != nil {
		return false, fmt.Errorf("suppression: check %s: %w", email, err)
	}
	return n > 0, nil
}

// Count returns the number of suppressed addresses.
func (s *RedisStore) Count(ctx context.Context) (int, error) {
	var count int
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.prefix+"*", 100).Result()
		if err != nil {
			return 0, fmt.Errorf("suppression: scan: %w", err)
		}
		count += len(keys)
		if next == 0 {
			return count, nil
		}
		cursor = next
	}
}

var _ Store = (*RedisStore)(nil)
