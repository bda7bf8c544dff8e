package constructorfetcher

import (
	"context"

	"github.com/asecurityteam/syncservice/pkg/domain"
)

// Static is an implementation of the ConstructorFetcher that maintains a static
// mapping of names to Constructor values. Applications list every handler they
// support when the process is built, so there is no way to load a handler the
// binary does not already contain.
//
// The trade-off is that adding or renaming a handler requires a new build. The
// metadata of an application may only select among the names compiled into it.
type Static struct {
	// Constructors is the underlying static map of handler names to
	// constructors. The keys of the map are the values expected under the
	// sync metadata key.
	Constructors map[string]domain.Constructor
}

// FetchConstructor resolves the name using the internal mapping.
func (f *Static) FetchConstructor(ctx context.Context, name string) (domain.Constructor, error) {
	c, ok := f.Constructors[name]
	if !ok {
		return nil, domain.NotFoundError{ID: name}
	}
	return c, nil
}
