package dashboard

import (
	"context"

	domcat "github.com/kailas-cloud/backoffice/internal/domain/category"
	domprod "github.com/kailas-cloud/backoffice/internal/domain/product"
	dompromo "github.com/kailas-cloud/backoffice/internal/domain/promotion"
	domsale "github.com/kailas-cloud/backoffice/internal/domain/sale"
	domtx "github.com/kailas-cloud/backoffice/internal/domain/transaction"
)

// CategorySummarizer reports category metrics.
type CategorySummarizer interface {
	Summary(ctx context.Context) domcat.Summary
}

// ProductSummarizer reports catalog metrics.
type ProductSummarizer interface {
	Summary(ctx context.Context) domprod.Summary
}

// SaleSummarizer reports order metrics.
type SaleSummarizer interface {
	Summary(ctx context.Context) domsale.Summary
}

// TransactionSummarizer reports ledger metrics.
type TransactionSummarizer interface {
	Summary(ctx context.Context) domtx.Summary
}

// PromotionSummarizer reports coupon metrics.
type PromotionSummarizer interface {
	Summary(ctx context.Context) dompromo.Summary
}
