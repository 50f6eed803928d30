package redis

import (
	"context"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const emailKeyPrefix = "patient:email:"

// Repository holds short-lived reservations in Redis
type Repository interface {
	// ReserveEmail claims email for ttl. It reports false when another
	// request already holds the claim.
	ReserveEmail(ctx context.Context, email string, ttl time.Duration) (bool, error)
	ReleaseEmail(ctx context.Context, email string) error
}

type redis struct {
	client *goredis.Client
}

// NewRepository returns a Redis Repository implementation. With a nil client
// every reservation succeeds.
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

func emailKey(email string) string {
	return emailKeyPrefix + strings.ToLower(strings.TrimSpace(email))
}

func (r *redis) ReserveEmail(ctx context.Context, email string, ttl time.Duration) (bool, error) {
	if r.client == nil {
		return true, nil
	}
	return r.client.SetNX(ctx, emailKey(email), 1, ttl).Result()
}

func (r *redis) ReleaseEmail(ctx context.Context, email string) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, emailKey(email)).Err()
}
