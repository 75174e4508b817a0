package sale

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/backoffice/internal/domain"
	domsale "github.com/kailas-cloud/backoffice/internal/domain/sale"
	"github.com/kailas-cloud/backoffice/internal/logger"
)

// Transitions lists the moves currently allowed for one order.
type Transitions struct {
	Status        []domsale.Status
	PaymentStatus []domsale.PaymentStatus
}

// Service handles orders and their status lifecycle.
type Service struct {
	store Store
	seq   Sequence
	now   domain.Clock
}

// New creates an order service. The sequence is advanced past every order
// already in the store.
func New(store Store, seq Sequence, now domain.Clock) *Service {
	if now == nil {
		now = domain.SystemClock
	}
	for _, id := range store.IDs() {
		seq.Observe(id)
	}
	return &Service{store: store, seq: seq, now: now}
}

// List returns the orders matching c, newest first.
func (s *Service) List(_ context.Context, c domsale.Criteria) View {
	return s.store.View(c.Project)
}

// Get returns an order by id.
func (s *Service) Get(ctx context.Context, id string) (domsale.Sale, error) {
	sl, ok := s.store.Get(id)
	if !ok {
		return domsale.Sale{}, notFound(ctx, id)
	}
	return sl, nil
}

// Create validates a draft and records a pending order. Rejected drafts do not
// consume a sequence number.
func (s *Service) Create(_ context.Context, d domsale.Draft) (domsale.Sale, error) {
	if err := d.Validate(); err != nil {
		return domsale.Sale{}, fmt.Errorf("validate sale: %w", err)
	}
	sl, err := domsale.New(s.seq.Next(), d, s.now())
	if err != nil {
		return domsale.Sale{}, fmt.Errorf("validate sale: %w", err)
	}
	if err := s.store.Create(sl); err != nil {
		return domsale.Sale{}, fmt.Errorf("create sale: %w", err)
	}
	return sl, nil
}

// Update edits customer and payment details.
func (s *Service) Update(ctx context.Context, id string, p domsale.Patch) (domsale.Sale, error) {
	return s.mutate(ctx, id, "update", func(sl domsale.Sale) (domsale.Sale, error) {
		return sl.Apply(p)
	})
}

// SetStatus moves the order to a new status.
func (s *Service) SetStatus(ctx context.Context, id string, to domsale.Status) (domsale.Sale, error) {
	return s.mutate(ctx, id, "set status", func(sl domsale.Sale) (domsale.Sale, error) {
		return sl.WithStatus(to, s.now())
	})
}

// SetPaymentStatus moves the payment to a new status.
func (s *Service) SetPaymentStatus(ctx context.Context, id string, to domsale.PaymentStatus) (domsale.Sale, error) {
	return s.mutate(ctx, id, "set payment status", func(sl domsale.Sale) (domsale.Sale, error) {
		return sl.WithPaymentStatus(to)
	})
}

// Transitions returns the controls to expose for an order.
func (s *Service) Transitions(ctx context.Context, id string) (Transitions, error) {
	sl, err := s.Get(ctx, id)
	if err != nil {
		return Transitions{}, err
	}
	return Transitions{
		Status:        domsale.NextStatuses(sl.Status()),
		PaymentStatus: domsale.NextPaymentStatuses(sl.PaymentStatus()),
	}, nil
}

// Delete removes an order. confirmed must be true.
func (s *Service) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return fmt.Errorf("delete sale %s: %w", id, domain.ErrConfirmationRequired)
	}
	if _, ok := s.store.Delete(id); !ok {
		return notFound(ctx, id)
	}
	return nil
}

// Summary returns order metrics.
func (s *Service) Summary(_ context.Context) domsale.Summary {
	return domsale.Summarize(s.store.Snapshot())
}

func (s *Service) mutate(ctx context.Context, id, op string, fn func(domsale.Sale) (domsale.Sale, error)) (domsale.Sale, error) {
	sl, found, err := s.store.Update(id, fn)
	if !found {
		return domsale.Sale{}, notFound(ctx, id)
	}
	if err != nil {
		logger.FromContext(ctx).Debug("sale mutation rejected",
			zap.String("id", id),
			zap.String("op", op),
			zap.Error(err),
		)
		return domsale.Sale{}, fmt.Errorf("%s sale: %w", op, err)
	}
	return sl, nil
}

func notFound(ctx context.Context, id string) error {
	logger.FromContext(ctx).Debug("sale not found", zap.String("id", id))
	return fmt.Errorf("sale %s: %w", id, domain.ErrNotFound)
}
