package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/aretw0/ferrule/pkg/domain"
)

// ErrNotFound is returned by Lookup for an unregistered id.
var ErrNotFound = errors.New("lesson procedure not found")

// Registry maps lesson ids to their procedures.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]domain.LessonFunc
	order []string
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		funcs: make(map[string]domain.LessonFunc),
	}
}

// Register adds a procedure to the registry.
// If a procedure with the same id exists, it is overwritten and keeps its position.
func (r *Registry) Register(id string, fn domain.LessonFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.funcs[id]; !exists {
		r.order = append(r.order, id)
	}
	r.funcs[id] = fn
}

// Lookup returns the procedure registered under id.
func (r *Registry) Lookup(id string) (domain.LessonFunc, error) {
	r.mu.RLock()
	fn, ok := r.funcs[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return fn, nil
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}
