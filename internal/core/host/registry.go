package host

import (
	"slices"

	"iostream/internal/core/domain"
	"iostream/internal/core/stream"
)

// Registry owns the stream handles wrapped by objects. Each handle is
// registered once and belongs to exactly one object.
type Registry struct {
	next    HandleID
	handles map[HandleID]*stream.File
}

func NewRegistry() *Registry {
	return &Registry{handles: make(map[HandleID]*stream.File)}
}

// Register wraps f and returns its id.
func (r *Registry) Register(f *stream.File) HandleID {
	r.next++
	r.handles[r.next] = f
	return r.next
}

// Lookup unwraps id.
func (r *Registry) Lookup(id HandleID) (*stream.File, error) {
	f, ok := r.handles[id]
	if !ok {
		return nil, domain.NewTypeError("uninitialized stream")
	}
	return f, nil
}

func (r *Registry) Release(id HandleID) {
	delete(r.handles, id)
}

func (r *Registry) Len() int {
	return len(r.handles)
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []HandleID {
	ids := make([]HandleID, 0, len(r.handles))
	for id := range r.handles {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
