package category

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/backoffice/internal/domain"
	domcat "github.com/kailas-cloud/backoffice/internal/domain/category"
	"github.com/kailas-cloud/backoffice/internal/logger"
)

// Service mirrors the remote category list locally and routes every mutation
// through the backend. Only one remote mutation may be outstanding at a time.
type Service struct {
	store   Store
	backend Backend
}

// New creates a category service.
func New(store Store, backend Backend) *Service {
	return &Service{store: store, backend: backend}
}

// Load fetches the full list from the backend. On failure the local list stays empty.
func (s *Service) Load(ctx context.Context) error {
	if err := s.store.Load(ctx, s.backend.List); err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	return nil
}

// List returns the categories matching c.
func (s *Service) List(_ context.Context, c domcat.Criteria) View {
	return s.store.View(c.Project)
}

// Get returns a category by id.
func (s *Service) Get(ctx context.Context, id string) (domcat.Category, error) {
	cat, ok := s.store.Get(id)
	if !ok {
		return domcat.Category{}, notFound(ctx, id)
	}
	return cat, nil
}

// Create asks the backend for a new category and appends the server's copy.
func (s *Service) Create(ctx context.Context, d domcat.Draft) (domcat.Category, error) {
	if err := d.Validate(); err != nil {
		return domcat.Category{}, fmt.Errorf("validate category: %w", err)
	}
	if err := s.store.Begin(); err != nil {
		return domcat.Category{}, fmt.Errorf("create category: %w", err)
	}
	defer s.store.End()

	cat, err := s.backend.Create(ctx, d)
	if err != nil {
		return domcat.Category{}, remoteFailed(ctx, "create", "", err)
	}
	if err := s.store.Create(cat); err != nil {
		return domcat.Category{}, fmt.Errorf("create category: %w", err)
	}
	return cat, nil
}

// Update sends the new description to the backend and replaces the local entity
// with the server's representation.
func (s *Service) Update(ctx context.Context, id string, d domcat.Draft) (domcat.Category, error) {
	if err := d.Validate(); err != nil {
		return domcat.Category{}, fmt.Errorf("validate category: %w", err)
	}
	if _, ok := s.store.Get(id); !ok {
		return domcat.Category{}, notFound(ctx, id)
	}
	if err := s.store.Begin(); err != nil {
		return domcat.Category{}, fmt.Errorf("update category: %w", err)
	}
	defer s.store.End()

	remote, err := s.backend.Update(ctx, id, d)
	if err != nil {
		return domcat.Category{}, remoteFailed(ctx, "update", id, err)
	}
	updated, found, err := s.store.Update(id, func(domcat.Category) (domcat.Category, error) {
		return domcat.Reconstruct(id, remote.Description()), nil
	})
	if err != nil {
		return domcat.Category{}, fmt.Errorf("update category: %w", err)
	}
	if !found {
		// Deleted locally while the request was in flight.
		return domcat.Category{}, notFound(ctx, id)
	}
	return updated, nil
}

// Delete removes a category remotely, then locally. confirmed must be true.
func (s *Service) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return fmt.Errorf("delete category %s: %w", id, domain.ErrConfirmationRequired)
	}
	if _, ok := s.store.Get(id); !ok {
		return notFound(ctx, id)
	}
	if err := s.store.Begin(); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	defer s.store.End()

	if err := s.backend.Delete(ctx, id); err != nil {
		return remoteFailed(ctx, "delete", id, err)
	}
	s.store.Delete(id)
	return nil
}

// Summary returns category metrics.
func (s *Service) Summary(_ context.Context) domcat.Summary {
	return domcat.Summarize(s.store.Snapshot())
}

func notFound(ctx context.Context, id string) error {
	logger.FromContext(ctx).Debug("category not found", zap.String("id", id))
	return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
}

func remoteFailed(ctx context.Context, op, id string, err error) error {
	logger.FromContext(ctx).Error("category backend request failed",
		zap.String("op", op),
		zap.String("id", id),
		zap.Error(err),
	)
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrRemoteUnavailable) {
		return fmt.Errorf("%s category: %w", op, err)
	}
	return fmt.Errorf("%s category: %w: %w", op, domain.ErrRemoteUnavailable, err)
}
