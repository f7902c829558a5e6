package constclass

import (
	"sort"
	"sync"

	"github.com/constkit/constkit/naming"
)

// Entry is a single named constant.
type Entry struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Class is a named, ordered collection of constants. Each class owns its
// constant set outright; there is no shared table behind the instances.
// Safe for concurrent use.
type Class struct {
	mu      sync.RWMutex
	name    string
	entries map[string]any
	order   []string // registration order
}

// New creates an empty class.
func New(name string) *Class {
	return &Class{
		name:    name,
		entries: make(map[string]any),
	}
}

// Declare creates a class from consts, keeping only the keys that are
// constant names (naming.IsConstName). Other keys are dropped silently.
// The kept keys register in sorted name order, so declaring the same map
// twice yields the same class.
func Declare(name string, consts map[string]any) *Class {
	c := New(name)
	for _, k := range sortedConstNames(consts) {
		c.set(k, consts[k])
	}
	return c
}

// Derive creates a child class seeded with the receiver's current constants,
// then overlaid with its own declarations, filtered and sorted as in
// Declare. Overlay keys already present keep their position with the new
// value; new keys append. The child is independent of the parent from then
// on.
func (c *Class) Derive(name string, consts map[string]any) *Class {
	child := New(name)

	c.mu.RLock()
	for _, k := range c.order {
		child.set(k, c.entries[k])
	}
	c.mu.RUnlock()

	for _, k := range sortedConstNames(consts) {
		child.set(k, consts[k])
	}
	return child
}

// Name returns the class name.
func (c *Class) Name() string {
	return c.name
}

// Set registers or updates a single constant. Unlike the bulk paths, a name
// that fails the naming rules is an error, not a silent drop: Set returns
// an InvalidNameError carrying the violated rule.
func (c *Class) Set(name string, value any) error {
	if err := naming.Check(name); err != nil {
		return &InvalidNameError{Name: name, Reason: err}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.set(name, value)
	return nil
}

// Delete removes a constant, reporting whether it was registered.
func (c *Class) Delete(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[name]; !ok {
		return false
	}
	delete(c.entries, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Replace swaps the entire constant set in one step and reports what
// changed. Keys are filtered and ordered as in Declare. Replace(nil)
// empties the class.
func (c *Class) Replace(consts map[string]any) Changes {
	keep := sortedConstNames(consts)
	entries := make(map[string]any, len(keep))
	for _, k := range keep {
		entries[k] = consts[k]
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	changes := diffMaps(c.entries, entries)
	c.entries = entries
	c.order = keep
	return changes
}

// Get returns the value registered under name. Unknown names return an
// UnknownConstantError listing the currently registered constants.
func (c *Class) Get(name string) (any, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.entries[name]
	if !ok {
		return nil, &UnknownConstantError{
			Class: c.name,
			Name:  name,
			Known: append([]string(nil), c.order...),
		}
	}
	return v, nil
}

// Lookup returns the value registered under name and whether it exists.
func (c *Class) Lookup(name string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.entries[name]
	return v, ok
}

// Has reports whether name is registered.
func (c *Class) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.entries[name]
	return ok
}

// Len returns the number of registered constants.
func (c *Class) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.order)
}

// AsMap returns the constants as a fresh map. Mutating the result does not
// touch the class.
func (c *Class) AsMap() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	m := make(map[string]any, len(c.entries))
	for k, v := range c.entries {
		m[k] = v
	}
	return m
}

// Names returns the constant names in registration order.
func (c *Class) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]string(nil), c.order...)
}

// Values returns the constant values in registration order. Index i of
// Values and Names refers to the same constant.
func (c *Class) Values() []any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	vals := make([]any, 0, len(c.order))
	for _, n := range c.order {
		vals = append(vals, c.entries[n])
	}
	return vals
}

// set inserts or updates one entry. The caller holds the write lock or owns
// the only reference.
func (c *Class) set(name string, value any) {
	if _, ok := c.entries[name]; !ok {
		c.order = append(c.order, name)
	}
	c.entries[name] = value
}

// sortedConstNames returns the keys of consts that are constant names, in
// sorted order.
func sortedConstNames(consts map[string]any) []string {
	names := make([]string, 0, len(consts))
	for k := range consts {
		if naming.IsConstName(k) {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}
