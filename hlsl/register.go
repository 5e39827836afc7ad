// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"fmt"
	"regexp"
	"strconv"
)

// RegisterClass is the register class of a resource binding.
type RegisterClass uint8

const (
	// RegisterB is for constant buffers.
	RegisterB RegisterClass = iota

	// RegisterT is for textures and shader resource views.
	RegisterT

	// RegisterS is for samplers.
	RegisterS

	// RegisterU is for unordered access views.
	RegisterU
)

// String returns the single-character register prefix.
func (c RegisterClass) String() string {
	switch c {
	case RegisterT:
		return "t"
	case RegisterS:
		return "s"
	case RegisterU:
		return "u"
	default:
		return "b"
	}
}

// Register is a resource binding written as a field semantic,
// e.g. "register(t0, space1)".
type Register struct {
	Class RegisterClass
	Index uint32
	Space uint8
}

var registerRegex = regexp.MustCompile(`^register\(\s*([btsu])(\d+)\s*(?:,\s*space(\d+)\s*)?\)$`)

// Semantic renders the binding. Space 0 is omitted.
func (r Register) Semantic() string {
	if r.Space == 0 {
		return fmt.Sprintf("register(%s%d)", r.Class, r.Index)
	}
	return fmt.Sprintf("register(%s%d, space%d)", r.Class, r.Index, r.Space)
}

// WithSpace returns a copy of the register in the given space.
func (r Register) WithSpace(space uint8) Register {
	r.Space = space
	return r
}

// ParseRegister parses a register semantic as written by Semantic.
func ParseRegister(s string) (Register, error) {
	m := registerRegex.FindStringSubmatch(s)
	if m == nil {
		return Register{}, fmt.Errorf("malformed register binding %q", s)
	}
	var r Register
	switch m[1] {
	case "b":
		r.Class = RegisterB
	case "t":
		r.Class = RegisterT
	case "s":
		r.Class = RegisterS
	case "u":
		r.Class = RegisterU
	}
	index, err := strconv.ParseUint(m[2], 10, 32)
	if err != nil {
		return Register{}, fmt.Errorf("register index %q: %w", m[2], err)
	}
	r.Index = uint32(index)
	if m[3] != "" {
		space, err := strconv.ParseUint(m[3], 10, 8)
		if err != nil {
			return Register{}, fmt.Errorf("register space %q: %w", m[3], err)
		}
		r.Space = uint8(space)
	}
	return r, nil
}
