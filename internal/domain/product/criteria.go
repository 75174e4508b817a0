package product

import "github.com/kailas-cloud/backoffice/internal/domain/filter"

// Criteria selects the visible products: name search and category.
type Criteria struct {
	Search   string
	Category string
}

// Predicates returns the active filters for c.
func (c Criteria) Predicates() []filter.Predicate[Product] {
	return []filter.Predicate[Product]{
		filter.Search(c.Search, Product.Name),
		filter.Equals(c.Category, Product.Category),
	}
}

// Project returns the products matching c in store order.
func (c Criteria) Project(items []Product) []Product {
	return filter.Project(items, c.Predicates()...)
}
