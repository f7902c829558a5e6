// Package registry provides a named, process-wide catalog of constant
// classes. A registry keeps classes reachable by name from anywhere in a
// program, in registration order, with glob queries over class names and a
// lazily created global instance for code that wants one shared catalog.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/constkit/constkit/constclass"
)

// Registry errors.
var (
	// ErrClassNotFound means no class is registered under the name.
	ErrClassNotFound = errors.New("class not found")
	// ErrDuplicateClass means the name is already taken.
	ErrDuplicateClass = errors.New("class already registered")
	// ErrNilClass means a nil class was offered for registration.
	ErrNilClass = errors.New("class is nil")
)

// Registry is a collection of constant classes keyed by class name.
// Registration order is preserved for enumeration. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	classes map[string]*constclass.Class
	order   []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		classes: make(map[string]*constclass.Class),
	}
}

// Register adds a class under its own name.
func (r *Registry) Register(c *constclass.Class) error {
	if c == nil {
		return ErrNilClass
	}
	name := c.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.classes[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateClass, name)
	}
	r.classes[name] = c
	r.order = append(r.order, name)
	return nil
}

// Get returns the class registered under name.
func (r *Registry) Get(name string) (*constclass.Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.classes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrClassNotFound, name)
	}
	return c, nil
}

// Lookup returns the class registered under name and whether it exists.
func (r *Registry) Lookup(name string) (*constclass.Class, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.classes[name]
	return c, ok
}

// Unregister removes a class, reporting whether it was registered.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.classes[name]; !ok {
		return false
	}
	delete(r.classes, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of registered classes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}

// Names returns the class names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// Classes returns the registered classes in registration order.
func (r *Registry) Classes() []*constclass.Class {
	r.mu.RLock()
	defer r.mu.RUnlock()

	classes := make([]*constclass.Class, 0, len(r.order))
	for _, name := range r.order {
		classes = append(classes, r.classes[name])
	}
	return classes
}

// Match returns the registered class names matching pattern, in
// registration order. Patterns use doublestar glob syntax, so "app.*"
// matches dotted families of class names.
func (r *Registry) Match(pattern string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []string
	for _, name := range r.order {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return nil, fmt.Errorf("match pattern %q: %w", pattern, err)
		}
		if ok {
			matched = append(matched, name)
		}
	}
	return matched, nil
}
