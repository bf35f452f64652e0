package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// SessionLocker serializes actions on one session across every process
// sharing the same redis.
type SessionLocker interface {
	Lock(ctx context.Context, sessionID string) (unlock func(context.Context) error, err error)
}

type redisLocker struct {
	sync   *redsync.Redsync
	expiry time.Duration
}

func NewSessionLocker(client *redis.Client, expiry time.Duration) SessionLocker {
	return &redisLocker{
		sync:   redsync.New(goredis.NewPool(client)),
		expiry: expiry,
	}
}

func (that *redisLocker) Lock(ctx context.Context, sessionID string) (func(context.Context) error, error) {
	mutex := that.sync.NewMutex(sessionKey(sessionID)+":lock", redsync.WithExpiry(that.expiry))

	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to lock session %s: %w", sessionID, err)
	}

	unlock := func(ctx context.Context) error {
		if _, err := mutex.UnlockContext(ctx); err != nil {
			return fmt.Errorf("failed to unlock session %s: %w", sessionID, err)
		}
		return nil
	}

	return unlock, nil
}
