// Package category holds the non-HTTP category backends: a Redis hash store
// and an in-process fake. Both issue identifiers on the server side, so the
// caller never invents one.
package category

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/kailas-cloud/backoffice/internal/db"
	"github.com/kailas-cloud/backoffice/internal/domain"
	"github.com/kailas-cloud/backoffice/internal/domain/category"
	"github.com/kailas-cloud/backoffice/internal/metrics"
)

const backendName = "redis"

// store is the slice of the key-value contract categories need.
type store interface {
	db.HashStore
	db.Counter
}

// Repo keeps one hash per category at {prefix}category:{id} and issues ids
// from the counter at {prefix}category:seq.
type Repo struct {
	store  store
	prefix string
}

// New creates a Redis category repository.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, prefix: keyPrefix}
}

// List returns every category ordered by id.
func (r *Repo) List(ctx context.Context) (cats []category.Category, err error) {
	defer observe("list", time.Now(), &err)

	keys, err := r.store.Scan(ctx, r.itemKey("*"))
	if err != nil {
		return nil, unavailable("scan categories", err)
	}
	keys = r.withoutSeq(keys)
	if len(keys) == 0 {
		return []category.Category{}, nil
	}

	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, unavailable("hgetall multi categories", err)
	}

	cats = make([]category.Category, 0, len(results))
	for i, m := range results {
		if len(m) == 0 {
			continue
		}
		c, err := categoryFromHash(m)
		if err != nil {
			return nil, unavailable("parse category "+keys[i], err)
		}
		cats = append(cats, c)
	}

	sort.SliceStable(cats, func(i, j int) bool {
		return numericID(cats[i].ID()) < numericID(cats[j].ID())
	})
	return cats, nil
}

// Create issues a new id and stores the category.
func (r *Repo) Create(ctx context.Context, d category.Draft) (c category.Category, err error) {
	defer observe("create", time.Now(), &err)

	n, err := r.store.Incr(ctx, r.seqKey())
	if err != nil {
		return category.Category{}, unavailable("issue category id", err)
	}
	c = category.Reconstruct(strconv.FormatInt(n, 10), d.Description)

	if err := r.store.HSet(ctx, r.itemKey(c.ID()), categoryToHash(c)); err != nil {
		return category.Category{}, unavailable("hset category "+c.ID(), err)
	}
	return c, nil
}

// Update replaces the description of an existing category.
func (r *Repo) Update(ctx context.Context, id string, d category.Draft) (c category.Category, err error) {
	defer observe("update", time.Now(), &err)

	key := r.itemKey(id)
	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return category.Category{}, unavailable("check exists", err)
	}
	if !exists {
		return category.Category{}, fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}

	c = category.Reconstruct(id, d.Description)
	if err := r.store.HSet(ctx, key, categoryToHash(c)); err != nil {
		return category.Category{}, unavailable("hset category "+id, err)
	}
	return c, nil
}

// Delete removes a category.
func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	defer observe("delete", time.Now(), &err)

	key := r.itemKey(id)
	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return unavailable("check exists", err)
	}
	if !exists {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	if err := r.store.Del(ctx, key); err != nil {
		return unavailable("del category "+id, err)
	}
	return nil
}

// Bootstrap writes the seed categories when the backend holds none.
// Seed ids are discarded: every category gets a fresh id from the counter.
func (r *Repo) Bootstrap(ctx context.Context, seed []category.Category) (int, error) {
	keys, err := r.store.Scan(ctx, r.itemKey("*"))
	if err != nil {
		return 0, unavailable("scan categories", err)
	}
	if len(r.withoutSeq(keys)) > 0 || len(seed) == 0 {
		return 0, nil
	}

	items := make([]db.HashSetItem, 0, len(seed))
	for _, s := range seed {
		n, err := r.store.Incr(ctx, r.seqKey())
		if err != nil {
			return 0, unavailable("issue category id", err)
		}
		c := category.Reconstruct(strconv.FormatInt(n, 10), s.Description())
		items = append(items, db.HashSetItem{Key: r.itemKey(c.ID()), Fields: categoryToHash(c)})
	}
	if err := r.store.HSetMulti(ctx, items); err != nil {
		return 0, unavailable("hset seed categories", err)
	}
	return len(items), nil
}

// HealthCheck verifies the backend answers.
func (r *Repo) HealthCheck(ctx context.Context) error {
	if _, err := r.store.Exists(ctx, r.seqKey()); err != nil {
		return unavailable("check sequence", err)
	}
	return nil
}

// Redis key patterns: {prefix}category:{id}, {prefix}category:seq

func (r *Repo) itemKey(id string) string {
	return fmt.Sprintf("%scategory:%s", r.prefix, id)
}

func (r *Repo) seqKey() string {
	return r.itemKey("seq")
}

func (r *Repo) withoutSeq(keys []string) []string {
	seq := r.seqKey()
	out := keys[:0:0]
	for _, k := range keys {
		if k != seq {
			out = append(out, k)
		}
	}
	return out
}

func unavailable(what string, err error) error {
	return fmt.Errorf("%s: %w: %w", what, domain.ErrRemoteUnavailable, err)
}

func observe(op string, start time.Time, errp *error) {
	err := *errp
	if errors.Is(err, domain.ErrNotFound) {
		err = nil
	}
	metrics.RemoteRequestsTotal.WithLabelValues(backendName, op, metrics.Result(err)).Inc()
	metrics.RemoteRequestDuration.WithLabelValues(backendName, op).Observe(time.Since(start).Seconds())
}
