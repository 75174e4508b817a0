package sale

import (
	"github.com/kailas-cloud/backoffice/internal/collection"
	domsale "github.com/kailas-cloud/backoffice/internal/domain/sale"
)

// Store is the local order list.
type Store interface {
	View(project func([]domsale.Sale) []domsale.Sale) collection.View[domsale.Sale]
	Snapshot() []domsale.Sale
	IDs() []string
	Get(id string) (domsale.Sale, bool)
	Create(item domsale.Sale) error
	Update(id string, fn func(domsale.Sale) (domsale.Sale, error)) (domsale.Sale, bool, error)
	Delete(id string) (domsale.Sale, bool)
}

// Sequence issues order numbers and can be advanced past existing ones.
type Sequence interface {
	Next() string
	Observe(id string)
}

// View is a projected order listing.
type View = collection.View[domsale.Sale]
