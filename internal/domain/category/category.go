// Package category models product categories. Identifiers are issued by the
// remote category backend, never locally.
package category

import (
	"github.com/kailas-cloud/backoffice/internal/domain"
	"github.com/kailas-cloud/backoffice/internal/domain/filter"
)

// Draft carries the fields a category is created or updated from.
type Draft struct {
	Description string
}

// Validate checks required fields.
func (d Draft) Validate() error {
	return domain.Required("description", d.Description)
}

// Category is a product category (immutable value object).
type Category struct {
	id          string
	description string
}

// Reconstruct creates a Category from the backend's representation.
func Reconstruct(id, description string) Category {
	return Category{id: id, description: description}
}

// EntityID returns the collection key of the category.
func (c Category) EntityID() string { return c.id }

// ID returns the identifier of the category.
func (c Category) ID() string { return c.id }

// Description returns the category name.
func (c Category) Description() string { return c.description }

// Criteria selects categories by description search.
type Criteria struct {
	Search string
}

// Project returns the categories matching c in store order.
func (c Criteria) Project(items []Category) []Category {
	return filter.Project(items, filter.Search(c.Search, Category.Description))
}

// Summary holds category metrics.
type Summary struct {
	Total int
}

// Summarize counts categories.
func Summarize(items []Category) Summary {
	return Summary{Total: len(items)}
}
