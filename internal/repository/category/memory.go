package category

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/kailas-cloud/backoffice/internal/domain"
	"github.com/kailas-cloud/backoffice/internal/domain/category"
)

// Memory is an in-process category backend for local runs and tests.
// It issues ids from a counter that starts after the highest seed id.
type Memory struct {
	mu    sync.Mutex
	items []category.Category
	last  int64
}

// NewMemory creates a backend preloaded with seed.
func NewMemory(seed []category.Category) *Memory {
	m := &Memory{items: make([]category.Category, len(seed))}
	copy(m.items, seed)
	for _, c := range seed {
		if n, err := strconv.ParseInt(c.ID(), 10, 64); err == nil && n > m.last {
			m.last = n
		}
	}
	return m
}

// List returns every category in insertion order.
func (m *Memory) List(_ context.Context) ([]category.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]category.Category, len(m.items))
	copy(out, m.items)
	return out, nil
}

// Create issues a new id and appends the category.
func (m *Memory) Create(_ context.Context, d category.Draft) (category.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last++
	c := category.Reconstruct(strconv.FormatInt(m.last, 10), d.Description)
	m.items = append(m.items, c)
	return c, nil
}

// Update replaces the description of an existing category.
func (m *Memory) Update(_ context.Context, id string, d category.Draft) (category.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.items {
		if c.ID() == id {
			m.items[i] = category.Reconstruct(id, d.Description)
			return m.items[i], nil
		}
	}
	return category.Category{}, fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
}

// Delete removes a category.
func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.items {
		if c.ID() == id {
			m.items = append(m.items[:i:i], m.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
}

// HealthCheck always succeeds.
func (m *Memory) HealthCheck(context.Context) error { return nil }
