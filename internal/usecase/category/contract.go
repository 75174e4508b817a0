package category

import (
	"context"

	"github.com/kailas-cloud/backoffice/internal/collection"
	domcat "github.com/kailas-cloud/backoffice/internal/domain/category"
)

// Backend is the remote collaborator that owns category identifiers.
type Backend interface {
	List(ctx context.Context) ([]domcat.Category, error)
	Create(ctx context.Context, d domcat.Draft) (domcat.Category, error)
	Update(ctx context.Context, id string, d domcat.Draft) (domcat.Category, error)
	Delete(ctx context.Context, id string) error
}

// Store is the local category list.
type Store interface {
	Load(ctx context.Context, load collection.Loader[domcat.Category]) error
	View(project func([]domcat.Category) []domcat.Category) collection.View[domcat.Category]
	Snapshot() []domcat.Category
	Get(id string) (domcat.Category, bool)
	Create(item domcat.Category) error
	Update(id string, fn func(domcat.Category) (domcat.Category, error)) (domcat.Category, bool, error)
	Delete(id string) (domcat.Category, bool)
	Begin() error
	End()
}

// View is a projected category listing.
type View = collection.View[domcat.Category]
