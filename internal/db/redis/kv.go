package redis

import (
	"context"

	"github.com/kailas-cloud/backoffice/internal/db"
)

// Incr bumps the counter at key and returns the new value; a missing key starts at 1.
func (s *Store) Incr(ctx context.Context, key string) (int64, error) {
	n, err := s.do(ctx, db.OpIncr, s.b().Incr().Key(key).Build()).AsInt64()
	if err != nil {
		return 0, &db.Error{Op: db.OpIncr, Key: key, Err: err}
	}
	return n, nil
}
