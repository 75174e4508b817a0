package promotion

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/backoffice/internal/domain"
	dompromo "github.com/kailas-cloud/backoffice/internal/domain/promotion"
	"github.com/kailas-cloud/backoffice/internal/logger"
)

// Options tune the relative coupon metrics.
type Options struct {
	ExpiringWindowDays int
	RankingLimit       int
	Now                domain.Clock
	Codes              CodeGenerator
}

// Service handles discount coupons.
type Service struct {
	store Store
	ids   IDGenerator
	opts  Options
}

// New creates a coupon service.
func New(store Store, ids IDGenerator, opts Options) *Service {
	if opts.Now == nil {
		opts.Now = domain.SystemClock
	}
	if opts.Codes == nil {
		opts.Codes = dompromo.GenerateCode
	}
	if opts.ExpiringWindowDays <= 0 {
		opts.ExpiringWindowDays = dompromo.DefaultExpiringWindowDays
	}
	if opts.RankingLimit <= 0 {
		opts.RankingLimit = dompromo.DefaultRankingLimit
	}
	return &Service{store: store, ids: ids, opts: opts}
}

// List returns the coupons matching c, newest first.
func (s *Service) List(_ context.Context, c dompromo.Criteria) View {
	return s.store.View(c.Project)
}

// Get returns a coupon by id.
func (s *Service) Get(ctx context.Context, id string) (dompromo.Promotion, error) {
	p, ok := s.store.Get(id)
	if !ok {
		return dompromo.Promotion{}, notFound(ctx, id)
	}
	return p, nil
}

// Create validates a draft and records a coupon with zero usage.
func (s *Service) Create(_ context.Context, d dompromo.Draft) (dompromo.Promotion, error) {
	p, err := dompromo.New(s.ids.Next(), d)
	if err != nil {
		return dompromo.Promotion{}, fmt.Errorf("validate promotion: %w", err)
	}
	if err := s.store.Create(p); err != nil {
		return dompromo.Promotion{}, fmt.Errorf("create promotion: %w", err)
	}
	return p, nil
}

// Update applies a partial update. Usage count is kept.
func (s *Service) Update(ctx context.Context, id string, patch dompromo.Patch) (dompromo.Promotion, error) {
	return s.mutate(ctx, id, "update", func(p dompromo.Promotion) (dompromo.Promotion, error) {
		return p.Apply(patch)
	})
}

// Toggle flips the active flag.
func (s *Service) Toggle(ctx context.Context, id string) (dompromo.Promotion, error) {
	return s.mutate(ctx, id, "toggle", func(p dompromo.Promotion) (dompromo.Promotion, error) {
		return p.Toggle(), nil
	})
}

// Delete removes a coupon. confirmed must be true.
func (s *Service) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return fmt.Errorf("delete promotion %s: %w", id, domain.ErrConfirmationRequired)
	}
	if _, ok := s.store.Delete(id); !ok {
		return notFound(ctx, id)
	}
	return nil
}

// Summary returns coupon metrics relative to the service clock.
func (s *Service) Summary(_ context.Context) dompromo.Summary {
	return dompromo.Summarize(s.store.Snapshot(), dompromo.Options{
		Now:                s.opts.Now(),
		ExpiringWindowDays: s.opts.ExpiringWindowDays,
		RankingLimit:       s.opts.RankingLimit,
	})
}

// Ranking returns the most used coupons. A non-positive limit uses the configured one.
func (s *Service) Ranking(_ context.Context, limit int) []dompromo.Promotion {
	if limit <= 0 {
		limit = s.opts.RankingLimit
	}
	return dompromo.Rank(s.store.Snapshot(), limit)
}

// GenerateCode returns a fresh coupon code.
func (s *Service) GenerateCode(ctx context.Context) (string, error) {
	code, err := s.opts.Codes()
	if err != nil {
		logger.FromContext(ctx).Error("coupon code generation failed", zap.Error(err))
		return "", fmt.Errorf("generate promotion code: %w", err)
	}
	return code, nil
}

func (s *Service) mutate(ctx context.Context, id, op string, fn func(dompromo.Promotion) (dompromo.Promotion, error)) (dompromo.Promotion, error) {
	p, found, err := s.store.Update(id, fn)
	if !found {
		return dompromo.Promotion{}, notFound(ctx, id)
	}
	if err != nil {
		return dompromo.Promotion{}, fmt.Errorf("%s promotion: %w", op, err)
	}
	return p, nil
}

func notFound(ctx context.Context, id string) error {
	logger.FromContext(ctx).Debug("promotion not found", zap.String("id", id))
	return fmt.Errorf("promotion %s: %w", id, domain.ErrNotFound)
}
