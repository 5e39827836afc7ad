// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"errors"
	"fmt"
	"sort"
)

// Entry declares one registrable type: the spelling it is registered under
// and a factory materializing its default identity.
type Entry struct {
	Name string
	New  func() Type
}

// Registry maps canonical spellings to types.
// A Registry is immutable once NewRegistry returns and is safe for concurrent reads.
type Registry struct {
	byName map[string]Type
	names  []string
}

// NewRegistry builds a registry from entries.
//
// Every entry is materialized once. An entry whose factory is nil, whose type
// declares no canonical name, whose declared name differs from Entry.Name, or
// whose name is already taken is a configuration error: the entry is skipped
// and an ErrConfiguration error is reported. The registry is always returned,
// holding every entry that registered cleanly; the error joins all failures.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]Type, len(entries)),
		names:  make([]string, 0, len(entries)),
	}

	var errs []error
	for i := range entries {
		if err := r.register(entries[i]); err != nil {
			errs = append(errs, err)
		}
	}
	sort.Strings(r.names)

	return r, errors.Join(errs...)
}

// register adds a single entry.
func (r *Registry) register(e Entry) error {
	if e.New == nil {
		return NewError(ErrConfiguration, fmt.Sprintf("type %q has no factory", e.Name))
	}
	t := e.New()
	if t == nil {
		return NewError(ErrConfiguration, fmt.Sprintf("type %q factory returned nil", e.Name))
	}
	name := t.Name()
	if name == "" {
		return NewError(ErrConfiguration, fmt.Sprintf("type %T declares no canonical name", t))
	}
	if !t.Registered() {
		return NewError(ErrConfiguration, fmt.Sprintf("type %q is an unregistered fallback and cannot be registered", name))
	}
	if e.Name != "" && e.Name != name {
		return NewError(ErrConfiguration, fmt.Sprintf("entry %q materializes type named %q", e.Name, name))
	}
	if _, taken := r.byName[name]; taken {
		return NewError(ErrConfiguration, fmt.Sprintf("type %q registered twice", name))
	}
	r.byName[name] = t
	r.names = append(r.names, name)
	return nil
}

// Resolve returns the type registered under name, or an Unregistered
// fallback carrying name. It never fails.
func (r *Registry) Resolve(name string) Type {
	if t, ok := r.byName[name]; ok {
		return t
	}
	return NewUnregistered(name)
}

// Lookup returns the type registered under name.
func (r *Registry) Lookup(name string) (Type, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Names returns the registered spellings in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Types returns the registered types ordered by name.
func (r *Registry) Types() []Type {
	out := make([]Type, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, r.byName[n])
	}
	return out
}

// Count returns the number of registered types.
func (r *Registry) Count() int {
	return len(r.names)
}

// builtinEntries is the static catalog of base-language types.
func builtinEntries() []Entry {
	scalars := []ScalarKind{ScalarBool, ScalarInt, ScalarUint, ScalarHalf, ScalarFloat, ScalarDouble}

	var entries []Entry
	for _, k := range scalars {
		s := Scalar{Kind: k}
		entries = append(entries, Entry{Name: s.Name(), New: func() Type { return s }})
	}
	for _, k := range scalars {
		for size := uint8(2); size <= 4; size++ {
			v := Vector{Kind: k, Size: size}
			entries = append(entries, Entry{Name: v.Name(), New: func() Type { return v }})
		}
	}
	for _, k := range []ScalarKind{ScalarHalf, ScalarFloat, ScalarDouble} {
		for rows := uint8(2); rows <= 4; rows++ {
			for cols := uint8(2); cols <= 4; cols++ {
				m := Matrix{Kind: k, Rows: rows, Columns: cols}
				entries = append(entries, Entry{Name: m.Name(), New: func() Type { return m }})
			}
		}
	}
	return entries
}

var builtins = mustRegistry(builtinEntries())

func mustRegistry(entries []Entry) *Registry {
	r, err := NewRegistry(entries...)
	if err != nil {
		panic(fmt.Sprintf("hlsl: builtin type catalog: %v", err))
	}
	return r
}

// Builtins returns the process-wide catalog of base-language types.
func Builtins() *Registry {
	return builtins
}

// Resolve resolves name against the builtin catalog.
func Resolve(name string) Type {
	return builtins.Resolve(name)
}

// Lookup looks name up in the builtin catalog.
func Lookup(name string) (Type, bool) {
	return builtins.Lookup(name)
}
