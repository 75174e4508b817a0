package promotion

import (
	"github.com/kailas-cloud/backoffice/internal/collection"
	dompromo "github.com/kailas-cloud/backoffice/internal/domain/promotion"
)

// Store is the local coupon list.
type Store interface {
	View(project func([]dompromo.Promotion) []dompromo.Promotion) collection.View[dompromo.Promotion]
	Snapshot() []dompromo.Promotion
	Get(id string) (dompromo.Promotion, bool)
	Create(item dompromo.Promotion) error
	Update(id string, fn func(dompromo.Promotion) (dompromo.Promotion, error)) (dompromo.Promotion, bool, error)
	Delete(id string) (dompromo.Promotion, bool)
}

// IDGenerator issues coupon identifiers.
type IDGenerator interface {
	Next() string
}

// CodeGenerator produces coupon codes.
type CodeGenerator func() (string, error)

// View is a projected coupon listing.
type View = collection.View[dompromo.Promotion]
