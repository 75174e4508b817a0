package transaction

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/backoffice/internal/domain"
	domtx "github.com/kailas-cloud/backoffice/internal/domain/transaction"
	"github.com/kailas-cloud/backoffice/internal/logger"
)

// Service handles the financial ledger.
type Service struct {
	store Store
	ids   IDGenerator
	now   domain.Clock
}

// New creates a ledger service.
func New(store Store, ids IDGenerator, now domain.Clock) *Service {
	if now == nil {
		now = domain.SystemClock
	}
	return &Service{store: store, ids: ids, now: now}
}

// List returns the entries matching c, newest first.
func (s *Service) List(_ context.Context, c domtx.Criteria) View {
	return s.store.View(c.Project)
}

// Get returns an entry by id.
func (s *Service) Get(ctx context.Context, id string) (domtx.Transaction, error) {
	t, ok := s.store.Get(id)
	if !ok {
		return domtx.Transaction{}, notFound(ctx, id)
	}
	return t, nil
}

// Create validates a draft and records the entry.
func (s *Service) Create(_ context.Context, d domtx.Draft) (domtx.Transaction, error) {
	t, err := domtx.New(s.ids.Next(), d, s.now())
	if err != nil {
		return domtx.Transaction{}, fmt.Errorf("validate transaction: %w", err)
	}
	if err := s.store.Create(t); err != nil {
		return domtx.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	return t, nil
}

// Update applies a partial update.
func (s *Service) Update(ctx context.Context, id string, p domtx.Patch) (domtx.Transaction, error) {
	t, found, err := s.store.Update(id, func(cur domtx.Transaction) (domtx.Transaction, error) {
		return cur.Apply(p)
	})
	if !found {
		return domtx.Transaction{}, notFound(ctx, id)
	}
	if err != nil {
		return domtx.Transaction{}, fmt.Errorf("update transaction: %w", err)
	}
	return t, nil
}

// Delete removes an entry. confirmed must be true.
func (s *Service) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return fmt.Errorf("delete transaction %s: %w", id, domain.ErrConfirmationRequired)
	}
	if _, ok := s.store.Delete(id); !ok {
		return notFound(ctx, id)
	}
	return nil
}

// Summary returns ledger metrics over every entry, regardless of filters.
func (s *Service) Summary(_ context.Context) domtx.Summary {
	return domtx.Summarize(s.store.Snapshot())
}

// Categories returns the categories offered for an entry type.
func (s *Service) Categories(t domtx.Type) []string {
	return append([]string(nil), domtx.CategoriesFor(t)...)
}

func notFound(ctx context.Context, id string) error {
	logger.FromContext(ctx).Debug("transaction not found", zap.String("id", id))
	return fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
}
