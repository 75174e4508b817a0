package product

import (
	"fmt"

	"github.com/kailas-cloud/backoffice/internal/domain"
)

// Status is the catalog visibility of a product.
type Status string

const (
	// StatusActive products are on sale.
	StatusActive Status = "active"
	// StatusInactive products are hidden from sale.
	StatusInactive Status = "inactive"
)

// IsValid checks if the status is supported.
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// Categories is the fixed catalog taxonomy offered by the product form.
var Categories = []string{"Fitness", "Íntima", "Acessórios"}

// Draft carries every product field except the identifier.
type Draft struct {
	Name        string
	Category    string
	Price       float64
	Stock       int
	Description string
	Status      Status
	Image       string
}

// Product is the catalog item aggregate (immutable value object).
type Product struct {
	id          string
	name        string
	category    string
	price       float64
	stock       int
	description string
	status      Status
	image       string
}

func validate(d Draft) error {
	if err := domain.Required("name", d.Name); err != nil {
		return err
	}
	if err := domain.Required("category", d.Category); err != nil {
		return err
	}
	if !d.Status.IsValid() {
		return fmt.Errorf("invalid status %q: %w", d.Status, domain.ErrInvalidDraft)
	}
	return nil
}

// New validates a draft and creates a Product. An empty status defaults to active.
func New(id string, d Draft) (Product, error) {
	if d.Status == "" {
		d.Status = StatusActive
	}
	if err := validate(d); err != nil {
		return Product{}, err
	}
	return Reconstruct(id, d), nil
}

// Reconstruct creates a Product without validation (seed hydration).
func Reconstruct(id string, d Draft) Product {
	return Product{
		id:          id,
		name:        d.Name,
		category:    d.Category,
		price:       d.Price,
		stock:       d.Stock,
		description: d.Description,
		status:      d.Status,
		image:       d.Image,
	}
}

// EntityID returns the collection key of the product.
func (p Product) EntityID() string { return p.id }

// ID returns the identifier of the product.
func (p Product) ID() string { return p.id }

// Name returns the display name.
func (p Product) Name() string { return p.name }

// Category returns the category name.
func (p Product) Category() string { return p.category }

// Price returns the unit price.
func (p Product) Price() float64 { return p.price }

// Stock returns the units on hand.
func (p Product) Stock() int { return p.stock }

// Description returns the free-text description.
func (p Product) Description() string { return p.description }

// Status returns the catalog visibility.
func (p Product) Status() Status { return p.status }

// Image returns the image URL, possibly empty.
func (p Product) Image() string { return p.image }

// IsActive reports whether the product is on sale.
func (p Product) IsActive() bool { return p.status == StatusActive }

// Draft returns the editable fields of p.
func (p Product) Draft() Draft {
	return Draft{
		Name:        p.name,
		Category:    p.category,
		Price:       p.price,
		Stock:       p.stock,
		Description: p.description,
		Status:      p.status,
		Image:       p.image,
	}
}

// Toggle flips active and inactive.
func (p Product) Toggle() Product {
	if p.status == StatusActive {
		p.status = StatusInactive
	} else {
		p.status = StatusActive
	}
	return p
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	Name        *string
	Category    *string
	Price       *float64
	Stock       *int
	Description *string
	Status      *Status
	Image       *string
}

// Apply returns p with the patch applied. The result is validated like a draft.
func (p Product) Apply(patch Patch) (Product, error) {
	d := p.Draft()
	if patch.Name != nil {
		d.Name = *patch.Name
	}
	if patch.Category != nil {
		d.Category = *patch.Category
	}
	if patch.Price != nil {
		d.Price = *patch.Price
	}
	if patch.Stock != nil {
		d.Stock = *patch.Stock
	}
	if patch.Description != nil {
		d.Description = *patch.Description
	}
	if patch.Status != nil {
		d.Status = *patch.Status
	}
	if patch.Image != nil {
		d.Image = *patch.Image
	}
	if err := validate(d); err != nil {
		return Product{}, err
	}
	return Reconstruct(p.id, d), nil
}
