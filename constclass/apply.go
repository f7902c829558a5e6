package constclass

import (
	"fmt"

	"github.com/constkit/constkit/namespace"
	"github.com/constkit/constkit/naming"
)

// Namespace is a mutable target Apply can write constants into.
type Namespace interface {
	// Has reports whether the namespace already defines name.
	Has(name string) bool
	// Set writes value under name.
	Set(name string, value any) error
}

// Enumerable is a readable namespace whose entries can be listed, the
// scanning counterpart of Namespace.
type Enumerable interface {
	// Names returns the defined names.
	Names() []string
	// Get returns the value defined under name.
	Get(name string) (any, bool)
}

// The namespace package adapters serve both directions.
var (
	_ Namespace  = namespace.Map(nil)
	_ Namespace  = (*namespace.Env)(nil)
	_ Namespace  = (*namespace.Struct)(nil)
	_ Enumerable = namespace.Map(nil)
	_ Enumerable = (*namespace.Env)(nil)
)

// Apply writes the class constants into target in registration order. With
// override false, names the target already defines are left alone, and every
// existence check runs before the first write, so a write cannot change
// which later names count as already defined.
//
// The constant set is captured before the first write, so a concurrent
// class mutation cannot tear the applied set. The writes themselves happen
// one at a time: a failing write stops Apply and leaves the earlier writes
// in place.
func (c *Class) Apply(target Namespace, override bool) error {
	if target == nil {
		return ErrNilTarget
	}

	c.mu.RLock()
	entries := make([]Entry, 0, len(c.order))
	for _, n := range c.order {
		entries = append(entries, Entry{Name: n, Value: c.entries[n]})
	}
	c.mu.RUnlock()

	// All skip decisions are made before the first write.
	writes := entries
	if !override {
		writes = make([]Entry, 0, len(entries))
		for _, e := range entries {
			if !target.Has(e.Name) {
				writes = append(writes, e)
			}
		}
	}

	for _, e := range writes {
		if err := target.Set(e.Name, e.Value); err != nil {
			return fmt.Errorf("apply %s.%s: %w", c.name, e.Name, err)
		}
	}
	return nil
}

// ApplyToStruct binds target, a non-nil pointer to a struct, as the
// namespace and applies into its fields. Fields resolve by tag and name as
// described by namespace.ForStruct. With override false, only fields still
// holding their zero value receive a constant, so a class acts as a
// defaults layer over a partially filled struct. Binding failures propagate
// unchanged.
func (c *Class) ApplyToStruct(target any, override bool) error {
	ns, err := namespace.ForStruct(target)
	if err != nil {
		return err
	}
	return c.Apply(ns, override)
}

// FromNamespace builds a class from the constant-named entries of ns.
// Names failing the naming rules are skipped, as in Declare. A nil ns
// yields an empty class.
func FromNamespace(name string, ns Enumerable) *Class {
	if ns == nil {
		return New(name)
	}

	consts := make(map[string]any)
	for _, k := range ns.Names() {
		if !naming.IsConstName(k) {
			continue
		}
		if v, ok := ns.Get(k); ok {
			consts[k] = v
		}
	}
	return Declare(name, consts)
}
