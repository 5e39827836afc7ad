// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"fmt"
	"strconv"
	"strings"
)

// Type name constants.
const (
	hlslTypeBool   = "bool"
	hlslTypeInt    = "int"
	hlslTypeUint   = "uint"
	hlslTypeHalf   = "half"
	hlslTypeFloat  = "float"
	hlslTypeDouble = "double"
	hlslTypeVoid   = "void"
)

// ScalarKind identifies the scalar component of a shading type.
type ScalarKind uint8

// Scalar kinds known to the builtin catalog.
const (
	ScalarBool ScalarKind = iota
	ScalarInt
	ScalarUint
	ScalarHalf
	ScalarFloat
	ScalarDouble
)

// String returns the base-language spelling of the scalar kind.
func (k ScalarKind) String() string {
	switch k {
	case ScalarBool:
		return hlslTypeBool
	case ScalarInt:
		return hlslTypeInt
	case ScalarUint:
		return hlslTypeUint
	case ScalarHalf:
		return hlslTypeHalf
	case ScalarFloat:
		return hlslTypeFloat
	case ScalarDouble:
		return hlslTypeDouble
	default:
		return fmt.Sprintf("scalar_%d", uint8(k))
	}
}

// isFloating reports whether values of the kind carry a fractional part.
func (k ScalarKind) isFloating() bool {
	return k == ScalarHalf || k == ScalarFloat || k == ScalarDouble
}

// Type is the identity of a shading type.
//
// Every registered type has exactly one canonical name. Types are comparable
// values: two types are the same type iff they compare equal with ==.
// An Unregistered type never equals a registered one, even if the names match.
type Type interface {
	// Name returns the canonical base-language spelling.
	Name() string

	// Registered reports whether the type belongs to a registry catalog.
	Registered() bool

	// Zero materializes the default instance of the type.
	Zero() Value

	isType()
}

// Scalar is a single-component type such as float or uint.
type Scalar struct {
	Kind ScalarKind
}

// Vector is a fixed-arity tuple of scalars, e.g. float3.
type Vector struct {
	Kind ScalarKind
	Size uint8 // 2..4
}

// Matrix is a Rows x Columns grid of scalars, e.g. float4x4.
type Matrix struct {
	Kind    ScalarKind
	Rows    uint8 // 2..4
	Columns uint8 // 2..4
}

// Unregistered is the fallback for a spelling that no registry knows.
// It stores the caller-supplied name and carries an opaque payload.
type Unregistered struct {
	name string
}

// NewUnregistered returns the fallback type for name.
func NewUnregistered(name string) Unregistered {
	return Unregistered{name: name}
}

func (Scalar) isType()       {}
func (Vector) isType()       {}
func (Matrix) isType()       {}
func (Unregistered) isType() {}

// Name returns the scalar spelling, e.g. "float".
func (s Scalar) Name() string { return s.Kind.String() }

// Name returns the vector spelling, e.g. "float3".
func (v Vector) Name() string {
	return v.Kind.String() + strconv.Itoa(int(v.Size))
}

// Name returns the matrix spelling, e.g. "float4x4".
func (m Matrix) Name() string {
	return fmt.Sprintf("%s%dx%d", m.Kind, m.Rows, m.Columns)
}

// Name returns the spelling the type was looked up with.
func (u Unregistered) Name() string { return u.name }

// Registered is true for catalog types.
func (Scalar) Registered() bool { return true }

// Registered is true for catalog types.
func (Vector) Registered() bool { return true }

// Registered is true for catalog types.
func (Matrix) Registered() bool { return true }

// Registered is always false for the fallback type.
func (Unregistered) Registered() bool { return false }

// Zero returns a zero ScalarValue.
func (s Scalar) Zero() Value { return ScalarValue{Kind: s.Kind} }

// Zero returns a zero VectorValue of the vector's arity.
func (v Vector) Zero() Value { return VectorValue{Vector: v} }

// Zero returns a zero MatrixValue.
func (m Matrix) Zero() Value { return MatrixValue{Matrix: m} }

// Zero returns an empty OpaqueValue.
func (u Unregistered) Zero() Value { return OpaqueValue{Unregistered: u} }

// CanonicalName returns the spelling of t, or "void" when t is nil.
func CanonicalName(t Type) string {
	if t == nil {
		return hlslTypeVoid
	}
	return t.Name()
}

// Value is a typed payload that renders as a base-language literal.
type Value interface {
	// Type returns the type the value instantiates.
	Type() Type

	// String renders the value as a literal, e.g. "float2(0, 1)".
	String() string

	isValue()
}

// ScalarValue holds one numeric component. Booleans are non-zero for true.
type ScalarValue struct {
	Kind  ScalarKind
	Value float64
}

// VectorValue holds up to four components; only the first Vector.Size are used.
type VectorValue struct {
	Vector     Vector
	Components [4]float64
}

// MatrixValue holds a row-major grid; only Rows x Columns entries are used.
type MatrixValue struct {
	Matrix Matrix
	Cells  [4][4]float64
}

// OpaqueValue is the payload of an Unregistered type: raw literal text.
type OpaqueValue struct {
	Unregistered Unregistered
	Text         string
}

func (ScalarValue) isValue() {}
func (VectorValue) isValue() {}
func (MatrixValue) isValue() {}
func (OpaqueValue) isValue() {}

// Type returns the scalar type.
func (v ScalarValue) Type() Type { return Scalar{Kind: v.Kind} }

// Type returns the vector type.
func (v VectorValue) Type() Type { return v.Vector }

// Type returns the matrix type.
func (v MatrixValue) Type() Type { return v.Matrix }

// Type returns the unregistered type.
func (v OpaqueValue) Type() Type { return v.Unregistered }

// String renders the scalar literal.
func (v ScalarValue) String() string {
	return formatComponent(v.Kind, v.Value)
}

// String renders a constructor call, e.g. "float2(0, 0)".
func (v VectorValue) String() string {
	parts := make([]string, 0, v.Vector.Size)
	for i := 0; i < int(v.Vector.Size) && i < len(v.Components); i++ {
		parts = append(parts, formatComponent(v.Vector.Kind, v.Components[i]))
	}
	return v.Vector.Name() + "(" + strings.Join(parts, ", ") + ")"
}

// String renders a constructor call listing the cells row by row.
func (v MatrixValue) String() string {
	parts := make([]string, 0, int(v.Matrix.Rows)*int(v.Matrix.Columns))
	for r := 0; r < int(v.Matrix.Rows) && r < 4; r++ {
		for c := 0; c < int(v.Matrix.Columns) && c < 4; c++ {
			parts = append(parts, formatComponent(v.Matrix.Kind, v.Cells[r][c]))
		}
	}
	return v.Matrix.Name() + "(" + strings.Join(parts, ", ") + ")"
}

// String returns the raw text.
func (v OpaqueValue) String() string { return v.Text }

// NewVectorValue builds a vector value from components. Extra components
// beyond the vector size are ignored; missing ones are zero.
func NewVectorValue(t Vector, components ...float64) VectorValue {
	v := VectorValue{Vector: t}
	copy(v.Components[:min(int(t.Size), 4)], components)
	return v
}

// NewOpaqueValue builds the payload of an unregistered type.
func NewOpaqueValue(t Unregistered, text string) OpaqueValue {
	return OpaqueValue{Unregistered: t, Text: text}
}

// formatComponent renders a single numeric component for kind.
func formatComponent(kind ScalarKind, v float64) string {
	switch {
	case kind == ScalarBool:
		return strconv.FormatBool(v != 0)
	case kind.isFloating():
		bits := 64
		if kind != ScalarDouble {
			bits = 32
		}
		return strconv.FormatFloat(v, 'g', -1, bits)
	case kind == ScalarUint && v < 0:
		return "0"
	default:
		return strconv.FormatInt(int64(v), 10)
	}
}
