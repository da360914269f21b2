// Package redis implements export.RecordSource on top of Redis lists. The
// transactions sent by an address are stored, JSON encoded, in one list per
// address in insertion order.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/txexport/internal/export"

	redis "github.com/redis/go-redis/v9"
)

type client struct {
	conn *redis.Client
}

// Close releases the underlying connection pool.
func (c *client) Close() error {
	return c.conn.Close()
}

// classifyError maps a go-redis error to the export sentinels. Errors replied
// by the server are query failures; anything else means the server could not
// be reached.
func classifyError(op string, err error) error {
	var redisErr redis.Error
	if errors.As(err, &redisErr) {
		return fmt.Errorf("%w: %s: %w", export.ErrQueryFailed, op, err)
	}

	return fmt.Errorf("%w: %s: %w", export.ErrStoreUnavailable, op, err)
}

// NewClient connects to Redis and checks the connection with a PING.
// A failed check is reported as export.ErrStoreUnavailable.
func NewClient(ctx context.Context, addr, username, password string, db int) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: ping %s: %w", export.ErrStoreUnavailable, addr, err)
	}

	return &client{
		conn: conn,
	}, nil
}
