package namespace

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Env addresses the process environment as a namespace. An optional prefix
// scopes every read and write: with prefix "APP_", the constant PORT maps
// to the variable APP_PORT. Written values are rendered with fmt.Sprintf's
// %v verb, so non-string constants become their printed form.
type Env struct {
	prefix string
}

// NewEnv creates an environment namespace under the given key prefix. An
// empty prefix addresses the environment directly.
func NewEnv(prefix string) *Env {
	return &Env{prefix: prefix}
}

// Has reports whether the variable is set, even to an empty string.
func (e *Env) Has(name string) bool {
	_, ok := os.LookupEnv(e.prefix + name)
	return ok
}

// Set writes the variable.
func (e *Env) Set(name string, value any) error {
	return os.Setenv(e.prefix+name, fmt.Sprintf("%v", value))
}

// Names returns the environment keys under the prefix, prefix trimmed, in
// sorted order.
func (e *Env) Names() []string {
	var names []string
	for _, kv := range os.Environ() {
		k, _, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(k, e.prefix) {
			continue
		}
		names = append(names, strings.TrimPrefix(k, e.prefix))
	}
	sort.Strings(names)
	return names
}

// Get returns the variable's value.
func (e *Env) Get(name string) (any, bool) {
	v, ok := os.LookupEnv(e.prefix + name)
	if !ok {
		return nil, false
	}
	return v, true
}
