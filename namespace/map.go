package namespace

import (
	"errors"
	"sort"
)

// ErrNilMap is returned when writing through a Map whose underlying map is
// nil.
var ErrNilMap = errors.New("map namespace is nil")

// Map adapts a plain map as a namespace. Writes land in the underlying map,
// so the caller keeps full access to the applied result. A nil Map answers
// Has with false and fails every write with ErrNilMap. A Map shared across
// goroutines needs external locking, like any map.
type Map map[string]any

// Has reports whether name is a key of the map.
func (m Map) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// Set stores value under name.
func (m Map) Set(name string, value any) error {
	if m == nil {
		return ErrNilMap
	}
	m[name] = value
	return nil
}

// Names returns the keys in sorted order.
func (m Map) Names() []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Get returns the value stored under name.
func (m Map) Get(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}
