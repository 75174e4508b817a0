package sale

import "github.com/kailas-cloud/backoffice/internal/domain/aggregate"

// Summary holds order metrics.
type Summary struct {
	Count           int
	TotalValue      float64
	Pending         int
	Delivered       int
	PaidValue       float64
	ByStatus        map[string]int
	ByPaymentMethod map[string]int
	ByPaymentStatus map[string]int
}

// Summarize computes order metrics over the whole collection.
func Summarize(items []Sale) Summary {
	return Summary{
		Count:           len(items),
		TotalValue:      aggregate.Sum(items, Sale.Total),
		Pending:         aggregate.Count(items, func(s Sale) bool { return s.status == StatusPending }),
		Delivered:       aggregate.Count(items, func(s Sale) bool { return s.status == StatusDelivered }),
		PaidValue:       aggregate.SumIf(items, func(s Sale) bool { return s.paymentStatus == PaymentPaid }, Sale.Total),
		ByStatus:        aggregate.CountBy(items, Sale.statusString),
		ByPaymentMethod: aggregate.CountBy(items, Sale.PaymentMethod),
		ByPaymentStatus: aggregate.CountBy(items, Sale.paymentStatusString),
	}
}
