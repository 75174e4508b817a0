package product

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/backoffice/internal/domain"
	domprod "github.com/kailas-cloud/backoffice/internal/domain/product"
	"github.com/kailas-cloud/backoffice/internal/logger"
)

// Service handles the product catalog.
type Service struct {
	store             Store
	ids               IDGenerator
	lowStockThreshold int
}

// New creates a product service. A non-positive threshold falls back to the default.
func New(store Store, ids IDGenerator, lowStockThreshold int) *Service {
	if lowStockThreshold <= 0 {
		lowStockThreshold = domprod.DefaultLowStockThreshold
	}
	return &Service{store: store, ids: ids, lowStockThreshold: lowStockThreshold}
}

// List returns the products matching c.
func (s *Service) List(_ context.Context, c domprod.Criteria) View {
	return s.store.View(c.Project)
}

// Get returns a product by id.
func (s *Service) Get(ctx context.Context, id string) (domprod.Product, error) {
	p, ok := s.store.Get(id)
	if !ok {
		return domprod.Product{}, notFound(ctx, id)
	}
	return p, nil
}

// Create validates a draft and appends the new product.
func (s *Service) Create(_ context.Context, d domprod.Draft) (domprod.Product, error) {
	p, err := domprod.New(s.ids.Next(), d)
	if err != nil {
		return domprod.Product{}, fmt.Errorf("validate product: %w", err)
	}
	if err := s.store.Create(p); err != nil {
		return domprod.Product{}, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

// Update applies a partial update.
func (s *Service) Update(ctx context.Context, id string, patch domprod.Patch) (domprod.Product, error) {
	return s.mutate(ctx, id, "update", func(p domprod.Product) (domprod.Product, error) {
		return p.Apply(patch)
	})
}

// Toggle flips the product between active and inactive.
func (s *Service) Toggle(ctx context.Context, id string) (domprod.Product, error) {
	return s.mutate(ctx, id, "toggle", func(p domprod.Product) (domprod.Product, error) {
		return p.Toggle(), nil
	})
}

// Delete removes a product. confirmed must be true.
func (s *Service) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return fmt.Errorf("delete product %s: %w", id, domain.ErrConfirmationRequired)
	}
	if _, ok := s.store.Delete(id); !ok {
		return notFound(ctx, id)
	}
	return nil
}

// Summary returns catalog metrics.
func (s *Service) Summary(_ context.Context) domprod.Summary {
	return domprod.Summarize(s.store.Snapshot(), s.lowStockThreshold)
}

// Categories returns the catalog taxonomy.
func (s *Service) Categories() []string {
	return append([]string(nil), domprod.Categories...)
}

func (s *Service) mutate(ctx context.Context, id, op string, fn func(domprod.Product) (domprod.Product, error)) (domprod.Product, error) {
	p, found, err := s.store.Update(id, fn)
	if !found {
		return domprod.Product{}, notFound(ctx, id)
	}
	if err != nil {
		return domprod.Product{}, fmt.Errorf("%s product: %w", op, err)
	}
	return p, nil
}

func notFound(ctx context.Context, id string) error {
	logger.FromContext(ctx).Debug("product not found", zap.String("id", id))
	return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
}
