package transaction

import "github.com/kailas-cloud/backoffice/internal/domain/filter"

// Criteria selects the visible ledger entries by category and type.
type Criteria struct {
	Category string
	Type     string
}

// Predicates returns the active filters for c.
func (c Criteria) Predicates() []filter.Predicate[Transaction] {
	return []filter.Predicate[Transaction]{
		filter.Equals(c.Category, Transaction.Category),
		filter.Equals(c.Type, Transaction.typeString),
	}
}

// Project returns the entries matching c in store order.
func (c Criteria) Project(items []Transaction) []Transaction {
	return filter.Project(items, c.Predicates()...)
}
