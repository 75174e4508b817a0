package transaction

import "github.com/kailas-cloud/backoffice/internal/domain/aggregate"

// Summary holds ledger metrics.
type Summary struct {
	Count               int
	TotalIncome         float64
	TotalExpenses       float64
	NetProfit           float64
	AverageTicket       float64
	MarginPercent       float64
	ByPaymentMethod     map[string]int
	PaymentMethodShares map[string]float64
	ByCategory          map[string]float64
}

// Summarize computes ledger metrics over the whole collection.
// Average ticket is mean income per income entry. Margin is net over income.
func Summarize(items []Transaction) Summary {
	income := aggregate.SumIf(items, Transaction.IsIncome, Transaction.Amount)
	expenses := aggregate.SumIf(items, Transaction.IsExpense, Transaction.Amount)
	net := aggregate.Sub(income, expenses)
	incomeCount := aggregate.Count(items, Transaction.IsIncome)

	byMethod := aggregate.CountBy(items, Transaction.PaymentMethod)
	shares := make(map[string]float64, len(byMethod))
	for method, n := range byMethod {
		shares[method] = aggregate.Round(aggregate.Percent(float64(n), float64(len(items))), 2)
	}

	return Summary{
		Count:               len(items),
		TotalIncome:         income,
		TotalExpenses:       expenses,
		NetProfit:           net,
		AverageTicket:       aggregate.Round(aggregate.Average(income, incomeCount), 2),
		MarginPercent:       aggregate.Round(aggregate.Percent(net, income), 2),
		ByPaymentMethod:     byMethod,
		PaymentMethodShares: shares,
		ByCategory:          signedByCategory(items),
	}
}

// signedByCategory nets each category: income positive, expenses negative.
func signedByCategory(items []Transaction) map[string]float64 {
	out := make(map[string]float64)
	for _, cat := range keys(items) {
		earned := aggregate.SumIf(items, func(t Transaction) bool { return t.category == cat && t.IsIncome() }, Transaction.Amount)
		spent := aggregate.SumIf(items, func(t Transaction) bool { return t.category == cat && t.IsExpense() }, Transaction.Amount)
		out[cat] = aggregate.Sub(earned, spent)
	}
	return out
}

func keys(items []Transaction) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range items {
		if !seen[t.category] {
			seen[t.category] = true
			out = append(out, t.category)
		}
	}
	return out
}
