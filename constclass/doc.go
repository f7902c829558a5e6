// Package constclass provides named, ordered collections of constants.
//
// A Class groups related constants under one name and keeps them queryable
// at runtime: lookup by name, enumeration in registration order, membership
// tests, and bulk export. Classes are explicit containers. Nothing is
// registered behind the caller's back; constants enter a class through
// Declare, Set, or Replace, and only names satisfying the naming rules
// (see the naming package) are accepted.
//
// # Declaring classes
//
// Declare scans a map and keeps the constant-named keys, silently dropping
// the rest, so a mixed bag of values can be declared wholesale:
//
//	colors := constclass.Declare("colors", map[string]any{
//	    "RED":      "#ff0000",
//	    "GREEN":    "#00ff00",
//	    "internal": 42, // not a constant name, dropped
//	})
//
// Derive builds a child class that starts from the parent's constants and
// overlays its own, the container analogue of subclassing:
//
//	web := colors.Derive("web-colors", map[string]any{
//	    "LINK": "#0000ee",
//	})
//
// # Reading
//
// Reads always reflect the live state of the class; nothing is cached at
// registration time. Get returns an UnknownConstantError naming the
// registered constants when the lookup misses:
//
//	v, err := colors.Get("RED")
//	names := colors.Names() // registration order
//	vals := colors.Values() // pairwise consistent with Names
//
// # Applying
//
// Apply writes a class into any mutable Namespace: a map, a struct, or the
// process environment (see the namespace package). With override false,
// names the target already defines are left alone, which turns a class into
// a defaults layer:
//
//	cfg := map[string]any{"PORT": 9000}
//	defaults.Apply(namespace.Map(cfg), false) // fills everything but PORT
//
// # Concurrency
//
// Every Class method is safe for concurrent use. Accessors copy data out
// under a read lock and never expose internal state.
package constclass
