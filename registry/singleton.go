package registry

import "sync"

var (
	global     *Registry
	globalOnce sync.Once
)

// Global returns the shared process-wide registry, creating an empty one on
// first use. Code that wants its classes reachable by name everywhere can
// register into it instead of threading a *Registry through every call site.
func Global() *Registry {
	globalOnce.Do(func() {
		global = New()
	})
	return global
}

// InitGlobal seeds the shared registry with a prepared instance. Only the
// first initialization wins: calling it after Global has already run, or a
// second time, has no effect.
func InitGlobal(r *Registry) {
	globalOnce.Do(func() {
		global = r
	})
}

// ResetGlobal discards the shared registry so the next Global call starts
// empty. Not safe to run concurrently with Global; intended for tests.
func ResetGlobal() {
	globalOnce = sync.Once{}
	global = nil
}
