package product

import "github.com/kailas-cloud/backoffice/internal/domain/aggregate"

// DefaultLowStockThreshold marks products whose stock is at or below it.
const DefaultLowStockThreshold = 5

// Summary holds catalog metrics.
type Summary struct {
	Total          int
	Active         int
	Inactive       int
	LowStock       int
	InventoryValue float64
	ByCategory     map[string]int
}

// Summarize computes catalog metrics over the whole collection.
func Summarize(items []Product, lowStockThreshold int) Summary {
	return Summary{
		Total:    len(items),
		Active:   aggregate.Count(items, Product.IsActive),
		Inactive: aggregate.Count(items, func(p Product) bool { return !p.IsActive() }),
		LowStock: aggregate.Count(items, func(p Product) bool { return p.stock <= lowStockThreshold }),
		InventoryValue: aggregate.Sum(items, func(p Product) float64 {
			return aggregate.Mul(p.price, float64(p.stock))
		}),
		ByCategory: aggregate.CountBy(items, Product.Category),
	}
}
