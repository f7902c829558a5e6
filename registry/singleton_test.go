package registry

import (
	"testing"

	"github.com/constkit/constkit/constclass"
)

func TestGlobalCreatesOnce(t *testing.T) {
	ResetGlobal()
	t.Cleanup(ResetGlobal)

	first := Global()
	if first == nil {
		t.Fatal("Global() returned nil")
	}
	if second := Global(); second != first {
		t.Error("Global() returned different instances")
	}
}

func TestInitGlobal(t *testing.T) {
	ResetGlobal()
	t.Cleanup(ResetGlobal)

	custom := New()
	if err := custom.Register(constclass.New("seeded")); err != nil {
		t.Fatalf("Register: %v", err)
	}

	InitGlobal(custom)

	if Global() != custom {
		t.Error("Global() did not return the initialized instance")
	}
	if _, ok := Global().Lookup("seeded"); !ok {
		t.Error("seeded class missing from global registry")
	}
}

func TestInitGlobalAfterGlobalHasNoEffect(t *testing.T) {
	ResetGlobal()
	t.Cleanup(ResetGlobal)

	first := Global()
	InitGlobal(New())

	if Global() != first {
		t.Error("InitGlobal replaced an already initialized global")
	}
}
