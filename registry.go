package shapes

import (
	"sort"
	"sync"
)

// Constructor creates a shape from a position, a size and styles.
// Variants ignore the parameters they do not use: Circle takes width as
// its radius and ignores height, Label ignores both.
type Constructor func(left, top, width, height float64, styles Styles) Shape

// Registry maps variant names to constructors.
//
// A Registry is built explicitly at startup; there is no package-level
// registry. It is safe for concurrent use.
//
// Example:
//
//	reg := shapes.DefaultRegistry()
//	reg.Register("Square", func(x, y, w, _ float64, st shapes.Styles) shapes.Shape {
//	    return shapes.NewRectangle(x, y, w, w, st)
//	})
//	sq, err := reg.New("Square", 0, 0, 10, 0, nil)
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Constructor
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Constructor),
	}
}

// DefaultRegistry returns a new registry holding the built-in variants:
// "Rectangle", "Circle", "Label", and "Ben" as an alias of "Label".
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("Rectangle", func(x, y, w, h float64, st Styles) Shape {
		return NewRectangle(x, y, w, h, st)
	})
	r.Register("Circle", func(cx, cy, radius, _ float64, st Styles) Shape {
		return NewCircle(cx, cy, radius, st)
	})
	label := func(x, y, _, _ float64, st Styles) Shape {
		return NewLabel(x, y, st)
	}
	r.Register("Label", label)
	r.Register("Ben", label)
	return r
}

// Register adds a constructor under name.
// Registering a name that already exists replaces the previous entry.
// A nil constructor removes the name.
func (r *Registry) Register(name string, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]Constructor)
	}
	if ctor == nil {
		delete(r.entries, name)
		return
	}
	r.entries[name] = ctor
}

// Lookup returns the constructor registered under name.
// The boolean is false if name is not registered.
func (r *Registry) Lookup(name string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ctor, ok := r.entries[name]
	return ctor, ok
}

// New creates a shape using the constructor registered under name.
// It returns a *NotFoundError if name is not registered.
func (r *Registry) New(name string, left, top, width, height float64, styles Styles) (Shape, error) {
	ctor, ok := r.Lookup(name)
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return ctor(left, top, width, height, styles), nil
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NotFoundError indicates a variant name is not registered.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "shapes: variant not found: " + e.Name
}
