package transaction

import (
	"github.com/kailas-cloud/backoffice/internal/collection"
	domtx "github.com/kailas-cloud/backoffice/internal/domain/transaction"
)

// Store is the local ledger.
type Store interface {
	View(project func([]domtx.Transaction) []domtx.Transaction) collection.View[domtx.Transaction]
	Snapshot() []domtx.Transaction
	Get(id string) (domtx.Transaction, bool)
	Create(item domtx.Transaction) error
	Update(id string, fn func(domtx.Transaction) (domtx.Transaction, error)) (domtx.Transaction, bool, error)
	Delete(id string) (domtx.Transaction, bool)
}

// IDGenerator issues ledger entry identifiers.
type IDGenerator interface {
	Next() string
}

// View is a projected ledger listing.
type View = collection.View[domtx.Transaction]
