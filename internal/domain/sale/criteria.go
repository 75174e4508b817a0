package sale

import "github.com/kailas-cloud/backoffice/internal/domain/filter"

// Criteria selects the visible orders: customer name or id search, and status.
type Criteria struct {
	Search string
	Status string
}

// Predicates returns the active filters for c.
func (c Criteria) Predicates() []filter.Predicate[Sale] {
	return []filter.Predicate[Sale]{
		filter.Search(c.Search, Sale.CustomerName, Sale.ID),
		filter.Equals(c.Status, Sale.statusString),
	}
}

// Project returns the orders matching c in store order.
func (c Criteria) Project(items []Sale) []Sale {
	return filter.Project(items, c.Predicates()...)
}
