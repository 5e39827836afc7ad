// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"fmt"
	"strings"
)

// UnnamedIdentifier replaces an empty identifier.
const UnnamedIdentifier = "unnamed"

// Namer hands out unique identifiers for generated declarations.
// Names are compared case-insensitively, and spellings that collide with a
// registered type or a statement keyword are prefixed with "_".
type Namer struct {
	registry *Registry

	// used holds lower-cased names already handed out.
	used map[string]struct{}

	// counter generates unique suffixes.
	counter uint32
}

// NewNamer creates a namer that escapes the spellings of reg.
// A nil reg means Builtins().
func NewNamer(reg *Registry) *Namer {
	if reg == nil {
		reg = builtins
	}
	return &Namer{
		registry: reg,
		used:     make(map[string]struct{}),
	}
}

// Escape prefixes name with "_" if it is a type spelling or a keyword.
func (n *Namer) Escape(name string) string {
	if _, ok := n.registry.Lookup(name); ok || IsStatementKeyword(name) || name == hlslTypeVoid ||
		name == KeywordStatic || name == KeywordConst {
		return "_" + name
	}
	return name
}

// Name returns base, escaped, or base with a numeric suffix when the
// escaped spelling is already taken.
func (n *Namer) Name(base string) string {
	if base == "" {
		base = UnnamedIdentifier
	}
	escaped := n.Escape(base)
	if !n.IsUsed(escaped) {
		n.Reserve(escaped)
		return escaped
	}
	for {
		n.counter++
		candidate := fmt.Sprintf("%s_%d", escaped, n.counter)
		if !n.IsUsed(candidate) {
			n.Reserve(candidate)
			return candidate
		}
	}
}

// IsUsed reports whether name was handed out or reserved.
func (n *Namer) IsUsed(name string) bool {
	_, ok := n.used[strings.ToLower(name)]
	return ok
}

// Reserve marks name as used without returning it.
func (n *Namer) Reserve(name string) {
	n.used[strings.ToLower(name)] = struct{}{}
}

// Count returns the number of names tracked.
func (n *Namer) Count() int {
	return len(n.used)
}
