package product

import (
	"github.com/kailas-cloud/backoffice/internal/collection"
	domprod "github.com/kailas-cloud/backoffice/internal/domain/product"
)

// Store is the local product list.
type Store interface {
	View(project func([]domprod.Product) []domprod.Product) collection.View[domprod.Product]
	Snapshot() []domprod.Product
	Get(id string) (domprod.Product, bool)
	Create(item domprod.Product) error
	Update(id string, fn func(domprod.Product) (domprod.Product, error)) (domprod.Product, bool, error)
	Delete(id string) (domprod.Product, bool)
}

// IDGenerator issues product identifiers.
type IDGenerator interface {
	Next() string
}

// View is a projected product listing.
type View = collection.View[domprod.Product]
