// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuiltins_RoundTrip(t *testing.T) {
	reg := Builtins()
	// 6 scalars, 6 x 3 vectors, 3 x 9 matrices.
	if got, want := reg.Count(), 51; got != want {
		t.Fatalf("Count() = %d, want %d", got, want)
	}
	for _, typ := range reg.Types() {
		got := reg.Resolve(typ.Name())
		if got != typ {
			t.Errorf("Resolve(%q) = %v, want %v", typ.Name(), got, typ)
		}
		if !got.Registered() {
			t.Errorf("Resolve(%q).Registered() = false", typ.Name())
		}
	}
}

func TestBuiltins_NamesSortedAndUnique(t *testing.T) {
	names := Builtins().Names()
	if !sort.StringsAreSorted(names) {
		t.Error("Names() is not sorted")
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			t.Errorf("name %q registered twice", n)
		}
		seen[n] = true
	}
}

func TestResolve_Fallback(t *testing.T) {
	for _, name := range []string{"Texture2D", "SamplerState", "float5", "MyStruct", ""} {
		got := Resolve(name)
		if got.Registered() {
			t.Errorf("Resolve(%q).Registered() = true", name)
		}
		if got.Name() != name {
			t.Errorf("Resolve(%q).Name() = %q", name, got.Name())
		}
		if _, ok := Lookup(name); ok {
			t.Errorf("Lookup(%q) found a type", name)
		}
	}
}

func TestNewRegistry_ConfigurationErrors(t *testing.T) {
	float1 := Scalar{Kind: ScalarFloat}
	tests := []struct {
		name  string
		entry Entry
	}{
		{"nil factory", Entry{Name: "x"}},
		{"nil type", Entry{Name: "x", New: func() Type { return nil }}},
		{"empty name", Entry{New: func() Type { return NewUnregistered("") }}},
		{"fallback", Entry{Name: "Foo", New: func() Type { return NewUnregistered("Foo") }}},
		{"name mismatch", Entry{Name: "float2", New: func() Type { return float1 }}},
		{"duplicate", Entry{Name: "float", New: func() Type { return float1 }}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			good := Entry{Name: "float", New: func() Type { return float1 }}
			reg, err := NewRegistry(good, tt.entry)
			if err == nil {
				t.Fatal("NewRegistry() error = nil, want configuration error")
			}
			if !IsKind(err, ErrConfiguration) {
				t.Errorf("error kind = %v, want Configuration", err)
			}
			if diff := cmp.Diff([]string{"float"}, reg.Names()); diff != "" {
				t.Errorf("registered names mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewRegistry_JoinsErrors(t *testing.T) {
	_, err := NewRegistry(Entry{Name: "a"}, Entry{Name: "b"})
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("error %T does not join causes", err)
	}
	if got := len(joined.Unwrap()); got != 2 {
		t.Errorf("joined %d errors, want 2", got)
	}
}

func TestRegistry_Custom(t *testing.T) {
	reg, err := NewRegistry(
		Entry{Name: "float", New: func() Type { return Scalar{Kind: ScalarFloat} }},
		Entry{Name: "float4", New: func() Type { return Vector{Kind: ScalarFloat, Size: 4} }},
	)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	if _, ok := reg.Lookup("float4"); !ok {
		t.Error("Lookup(float4) missing")
	}
	if reg.Resolve("int").Registered() {
		t.Error("int should fall back in a registry that does not declare it")
	}
}
