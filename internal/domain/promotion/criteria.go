package promotion

import "github.com/kailas-cloud/backoffice/internal/domain/filter"

// Criteria selects the visible coupons: name or code search, type and active status.
type Criteria struct {
	Search string
	Type   string
	Status string
}

// Predicates returns the active filters for c.
func (c Criteria) Predicates() []filter.Predicate[Promotion] {
	return []filter.Predicate[Promotion]{
		filter.Search(c.Search, Promotion.Name, Promotion.Code),
		filter.Equals(c.Type, Promotion.typeString),
		filter.Flag(c.Status, Promotion.IsActive),
	}
}

// Project returns the coupons matching c in store order.
func (c Criteria) Project(items []Promotion) []Promotion {
	return filter.Project(items, c.Predicates()...)
}
