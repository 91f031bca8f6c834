package schema

import (
	"errors"
	"testing"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RegisterModule(exMod); err != nil {
		t.Fatal(err)
	}
	if err := reg.RegisterModule(&Module{Name: "example"}); err == nil {
		t.Error("duplicate module accepted")
	}
	if err := reg.AddRoot(testSystem()); err != nil {
		t.Fatal(err)
	}
	if err := reg.AddRoot(testSystem()); err == nil {
		t.Error("duplicate root accepted")
	}
	if err := reg.AddRoot(NewList(exMod.QName("bad"), nil)); !errors.Is(err, ErrInvalid) {
		t.Errorf("invalid root: err = %v", err)
	}
	if _, ok := reg.Root("example:system"); !ok {
		t.Error("root not found by qualified name")
	}
	if _, ok := reg.Root("nope"); ok {
		t.Error("unexpected root")
	}
	if got := reg.Roots(); len(got) != 1 {
		t.Errorf("roots = %d, want 1", len(got))
	}
	if m, ok := reg.Module("example"); !ok || m != exMod {
		t.Error("module lookup failed")
	}

	other := NewRegistry()
	if len(other.Roots()) != 0 || len(other.Modules()) != 0 {
		t.Error("registries must not share state")
	}
}
