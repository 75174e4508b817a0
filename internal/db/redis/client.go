// Package redis implements the db contracts on rueidis.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/backoffice/internal/db"
	"github.com/kailas-cloud/backoffice/internal/metrics"
)

var _ db.Store = (*Store)(nil)

const readyPollInterval = 100 * time.Millisecond

// Config holds connection parameters.
type Config struct {
	Addrs    []string
	Username string
	Password string
	DB       int
}

// Store is a rueidis-backed db.Store. Every command is timed into
// metrics.DBCommandDuration.
type Store struct {
	client rueidis.Client
}

// NewStore connects to Redis. Client-side caching stays off: the category
// keyspace may be written by other instances.
func NewStore(cfg Config) (*Store, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Username:     cfg.Username,
		Password:     cfg.Password,
		SelectDB:     cfg.DB,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Store{client: client}, nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.do(ctx, db.OpPing, s.client.B().Ping().Build()).Error(); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close shuts down the client.
func (s *Store) Close() {
	s.client.Close()
}

// WaitForReady pings immediately, then every readyPollInterval until the
// store answers or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(readyPollInterval)
	defer ticker.Stop()

	var lastErr error
	for {
		if lastErr = s.Ping(ctx); lastErr == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for redis (last error: %v): %w", lastErr, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (s *Store) do(ctx context.Context, op string, cmd rueidis.Completed) rueidis.RedisResult {
	start := time.Now()
	res := s.client.Do(ctx, cmd)
	observe(op, start, res.Error())
	return res
}

func (s *Store) doMulti(ctx context.Context, op string, cmds []rueidis.Completed) []rueidis.RedisResult {
	start := time.Now()
	results := s.client.DoMulti(ctx, cmds...)
	var firstErr error
	for _, r := range results {
		if err := r.Error(); err != nil {
			firstErr = err
			break
		}
	}
	observe(op, start, firstErr)
	return results
}

func observe(op string, start time.Time, err error) {
	if rueidis.IsRedisNil(err) {
		err = nil
	}
	metrics.DBCommandDuration.WithLabelValues(op, metrics.Result(err)).Observe(time.Since(start).Seconds())
}

func (s *Store) b() rueidis.Builder {
	return s.client.B()
}
