package dashboard

import (
	"context"

	domcat "github.com/kailas-cloud/backoffice/internal/domain/category"
	domprod "github.com/kailas-cloud/backoffice/internal/domain/product"
	dompromo "github.com/kailas-cloud/backoffice/internal/domain/promotion"
	domsale "github.com/kailas-cloud/backoffice/internal/domain/sale"
	domtx "github.com/kailas-cloud/backoffice/internal/domain/transaction"
)

// Overview gathers every resource summary.
type Overview struct {
	Categories   domcat.Summary
	Products     domprod.Summary
	Sales        domsale.Summary
	Transactions domtx.Summary
	Promotions   dompromo.Summary
}

// Sources bundles the per-resource summarizers.
type Sources struct {
	Categories   CategorySummarizer
	Products     ProductSummarizer
	Sales        SaleSummarizer
	Transactions TransactionSummarizer
	Promotions   PromotionSummarizer
}

// Service builds the dashboard overview.
type Service struct {
	src Sources
}

// New creates a dashboard service.
func New(src Sources) *Service {
	return &Service{src: src}
}

// Overview returns the current summary of every resource.
// Each summary is a consistent snapshot of its own store; stores are not
// read under a common lock.
func (s *Service) Overview(ctx context.Context) Overview {
	return Overview{
		Categories:   s.src.Categories.Summary(ctx),
		Products:     s.src.Products.Summary(ctx),
		Sales:        s.src.Sales.Summary(ctx),
		Transactions: s.src.Transactions.Summary(ctx),
		Promotions:   s.src.Promotions.Summary(ctx),
	}
}
