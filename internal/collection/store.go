// Package collection holds the authoritative in-memory entity list of one resource.
//
// A Store is owned by exactly one service; nothing here is a package-level singleton.
// Every public method takes the store lock, so each mutation is a single atomic
// replace with respect to concurrent requests.
package collection

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/kailas-cloud/backoffice/internal/domain"
	"github.com/kailas-cloud/backoffice/internal/logger"
)

// Entity is anything with a store-unique identifier.
type Entity interface {
	EntityID() string
}

// Order controls where Create places new entities.
type Order int

const (
	// Append places new entities last.
	Append Order = iota
	// Prepend places new entities first (newest-first resources).
	Prepend
)

// Loader fetches the full entity list from a remote collaborator.
type Loader[T Entity] func(ctx context.Context) ([]T, error)

// Observer receives store size and mutation outcomes (metrics hook).
type Observer interface {
	ObserveSize(store string, size int)
	ObserveMutation(store, op string, err error)
}

type nopObserver struct{}

func (nopObserver) ObserveSize(string, int)               {}
func (nopObserver) ObserveMutation(string, string, error) {}

// Store is an ordered, identifier-unique list of entities.
type Store[T Entity] struct {
	mu         sync.RWMutex
	name       string
	order      Order
	items      []T
	submitting bool
	observer   Observer
}

// New creates an empty store.
func New[T Entity](name string, order Order) *Store[T] {
	return &Store[T]{name: name, order: order, observer: nopObserver{}}
}

// WithObserver attaches a metrics observer.
func (s *Store[T]) WithObserver(o Observer) *Store[T] {
	if o != nil {
		s.observer = o
	}
	return s
}

// Name returns the resource name.
func (s *Store[T]) Name() string { return s.name }

// Load replaces the store wholesale with the loader's result.
// On failure the error is logged, the store is left as it was (empty at startup)
// and no retry is attempted.
func (s *Store[T]) Load(ctx context.Context, load Loader[T]) error {
	items, err := load(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("collection load failed",
			zap.String("store", s.name),
			zap.Error(err),
		)
		s.observer.ObserveMutation(s.name, "load", err)
		return fmt.Errorf("load %s: %w", s.name, err)
	}
	if err := s.Seed(items); err != nil {
		logger.FromContext(ctx).Error("collection load rejected",
			zap.String("store", s.name),
			zap.Error(err),
		)
		return fmt.Errorf("load %s: %w", s.name, err)
	}
	s.observer.ObserveMutation(s.name, "load", nil)
	return nil
}

// Seed replaces the store with a fixed list. Identifiers must be unique.
func (s *Store[T]) Seed(items []T) error {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		id := it.EntityID()
		if _, dup := seen[id]; dup {
			return fmt.Errorf("duplicate id %q: %w", id, domain.ErrAlreadyExists)
		}
		seen[id] = struct{}{}
	}

	cp := make([]T, len(items))
	copy(cp, items)

	s.mu.Lock()
	s.items = cp
	n := len(s.items)
	s.mu.Unlock()

	s.observer.ObserveSize(s.name, n)
	return nil
}

// Snapshot returns a copy of the current list in store order.
func (s *Store[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of entities.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get returns the entity with the given identifier.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// IDs returns every identifier in store order.
func (s *Store[T]) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, len(s.items))
	for i, it := range s.items {
		ids[i] = it.EntityID()
	}
	return ids
}

// Create inserts item according to the store order.
func (s *Store[T]) Create(item T) error {
	s.mu.Lock()
	if s.indexOf(item.EntityID()) >= 0 {
		s.mu.Unlock()
		err := fmt.Errorf("%s %q: %w", s.name, item.EntityID(), domain.ErrAlreadyExists)
		s.observer.ObserveMutation(s.name, "create", err)
		return err
	}

	next := make([]T, 0, len(s.items)+1)
	if s.order == Prepend {
		next = append(next, item)
		next = append(next, s.items...)
	} else {
		next = append(next, s.items...)
		next = append(next, item)
	}
	s.items = next
	n := len(s.items)
	s.mu.Unlock()

	s.observer.ObserveMutation(s.name, "create", nil)
	s.observer.ObserveSize(s.name, n)
	return nil
}

// Update replaces the entity matching id with fn(current).
// found is false (and the store unchanged) when id is absent.
// If fn returns an error, the store is unchanged and the error is returned.
func (s *Store[T]) Update(id string, fn func(current T) (T, error)) (updated T, found bool, err error) {
	s.mu.Lock()
	defer func() {
		s.mu.Unlock()
		if found {
			s.observer.ObserveMutation(s.name, "update", err)
		}
	}()

	i := s.indexOf(id)
	if i < 0 {
		return updated, false, nil
	}

	next, err := fn(s.items[i])
	if err != nil {
		return updated, true, err
	}
	if next.EntityID() != id {
		return updated, true, fmt.Errorf("%s: update changed id %q to %q: %w",
			s.name, id, next.EntityID(), domain.ErrInvalidDraft)
	}

	items := make([]T, len(s.items))
	copy(items, s.items)
	items[i] = next
	s.items = items
	return next, true, nil
}

// Delete removes the entity matching id. found is false when id is absent.
func (s *Store[T]) Delete(id string) (removed T, found bool) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return removed, false
	}
	removed = s.items[i]
	items := make([]T, 0, len(s.items)-1)
	items = append(items, s.items[:i]...)
	items = append(items, s.items[i+1:]...)
	s.items = items
	n := len(s.items)
	s.mu.Unlock()

	s.observer.ObserveMutation(s.name, "delete", nil)
	s.observer.ObserveSize(s.name, n)
	return removed, true
}

// Begin marks a remote mutation as outstanding. A second Begin before End
// fails with ErrSubmitInProgress, the equivalent of a disabled submit control.
func (s *Store[T]) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return fmt.Errorf("%s: %w", s.name, domain.ErrSubmitInProgress)
	}
	s.submitting = true
	return nil
}

// End clears the submitting indicator.
func (s *Store[T]) End() {
	s.mu.Lock()
	s.submitting = false
	s.mu.Unlock()
}

// Submitting reports whether a remote mutation is outstanding.
func (s *Store[T]) Submitting() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.submitting
}

func (s *Store[T]) indexOf(id string) int {
	for i, it := range s.items {
		if it.EntityID() == id {
			return i
		}
	}
	return -1
}

// View is a projected listing of a store.
type View[T Entity] struct {
	Items      []T
	Total      int
	Visible    int
	Submitting bool
}

// View applies project to a snapshot. A nil project shows everything.
func (s *Store[T]) View(project func([]T) []T) View[T] {
	s.mu.RLock()
	all := make([]T, len(s.items))
	copy(all, s.items)
	submitting := s.submitting
	s.mu.RUnlock()

	visible := all
	if project != nil {
		visible = project(all)
	}
	return View[T]{Items: visible, Total: len(all), Visible: len(visible), Submitting: submitting}
}
