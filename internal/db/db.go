// Package db defines the key-value contracts the category keyspace is built on.
package db

import (
	"context"
	"time"
)

// Conn manages the lifetime of a database connection.
type Conn interface {
	Ping(ctx context.Context) error
	WaitForReady(ctx context.Context, timeout time.Duration) error
	Close()
}

// HashSetItem is one key and its fields for a pipelined HSET.
type HashSetItem struct {
	Key    string
	Fields map[string]string
}

// HashStore reads and writes one hash per entity.
type HashStore interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HSetMulti(ctx context.Context, items []HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Counter issues monotonically increasing integers.
type Counter interface {
	Incr(ctx context.Context, key string) (int64, error)
}

// Store is everything a keyspace-backed repository may need.
type Store interface {
	Conn
	HashStore
	Counter
}
