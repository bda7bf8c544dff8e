package constructorfetcher

import (
	"context"
	"fmt"
	"sync"

	"github.com/asecurityteam/syncservice/pkg/domain"
)

// Registry is a ConstructorFetcher that is populated through Register calls,
// usually from init functions of the packages that define handlers. It is
// safe for concurrent use.
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]domain.Constructor
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{constructors: make(map[string]domain.Constructor)}
}

// Register binds a constructor to a name. Names may only be registered once.
func (r *Registry) Register(name string, c domain.Constructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.constructors[name]; ok {
		return fmt.Errorf("sync handler (%s) is already registered", name)
	}
	r.constructors[name] = c
	return nil
}

// MustRegister is like Register but panics on duplicates.
func (r *Registry) MustRegister(name string, c domain.Constructor) {
	if err := r.Register(name, c); err != nil {
		panic(err.Error())
	}
}

// FetchConstructor resolves the name using the registered constructors.
func (r *Registry) FetchConstructor(ctx context.Context, name string) (domain.Constructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.constructors[name]
	if !ok {
		return nil, domain.NotFoundError{ID: name}
	}
	return c, nil
}
