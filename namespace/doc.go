// Package namespace adapts mutable scopes for use as constant apply targets.
//
// Constants live in classes; this package supplies the places they can be
// applied to. Each adapter implements Has and Set, the write side consumed
// by constclass.Apply, and Map and Env also implement Names and Get, the
// read side consumed by constclass.FromNamespace.
//
// # Targets
//
//   - Map wraps a plain map[string]any. Writes land in the caller's map.
//   - Struct binds a pointer to a struct; constants decode into fields with
//     weak typing, resolved by tag or field name.
//   - Env addresses the process environment, optionally under a key prefix.
//
// # Existence semantics
//
// Apply without override skips names the target already defines, and each
// adapter decides what "defines" means: a Map defines its present keys, Env
// defines the variables that are set, and a Struct defines the fields that
// currently hold a non-zero value. The struct reading makes a class usable
// as a defaults layer, filling only the fields the caller left unset.
//
// # Usage
//
//	import (
//	    "github.com/constkit/constkit/constclass"
//	    "github.com/constkit/constkit/namespace"
//	)
//
//	scope := map[string]any{"PORT": 9000}
//	defaults.Apply(namespace.Map(scope), false) // PORT survives
//
//	var cfg ServerConfig
//	defaults.ApplyToStruct(&cfg, false)
//
//	env := namespace.NewEnv("APP_")
//	defaults.Apply(env, true) // sets APP_* variables
package namespace
