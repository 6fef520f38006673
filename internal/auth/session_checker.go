package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

var _ Checker = (*SessionChecker)(nil)
var _ Checker = (*TestChecker)(nil)

// Checker resolves a session token to the id of the logged user.
type Checker interface {
	UserID(ctx context.Context, token string) (int, bool, error)
}

type SessionChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewSessionChecker(ttl time.Duration, redisClient *redis.Client) *SessionChecker {
	return &SessionChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (c *SessionChecker) UserID(ctx context.Context, token string) (int, bool, error) {
	if token == "" {
		return 0, false, nil
	}

	cmd := c.redisClient.Get(ctx, sessionKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}

	userID, createdAt, err := parseSessionValue(cmd.Val())
	if err != nil {
		return 0, false, err
	}

	if time.Since(createdAt) > c.ttl {
		return 0, false, nil
	}

	return userID, true, nil
}

// TestChecker is an in-memory Checker used by handler tests.
type TestChecker struct {
	Sessions map[string]int
}

func NewTestChecker() *TestChecker {
	return &TestChecker{
		Sessions: map[string]int{},
	}
}

func (c *TestChecker) UserID(_ context.Context, token string) (int, bool, error) {
	userID, ok := c.Sessions[token]
	return userID, ok, nil
}
