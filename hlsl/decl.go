// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import "strings"

// Parameter is a typed, named formal or actual parameter.
type Parameter struct {
	Type Type
	Name string
}

// String renders "type name".
func (p Parameter) String() string {
	return CanonicalName(p.Type) + " " + p.Name
}

// Attribute is a bracketed annotation such as [numthreads(8, 8, 1)].
// Params are written verbatim, joined by ", ".
type Attribute struct {
	Name   string
	Params []string
}

// body renders the attribute without brackets.
func (a Attribute) body() string {
	if len(a.Params) == 0 {
		return a.Name
	}
	return a.Name + "(" + strings.Join(a.Params, ", ") + ")"
}

// Field is a global or member declaration.
type Field struct {
	Parameter

	Const  bool
	Static bool

	// Semantic is written as " : SEMANTIC" when non-empty.
	Semantic string

	// Attributes are written before the declaration on the same line.
	Attributes []Attribute

	// Initializer is written as " = literal" when non-nil.
	Initializer Value
}

// MethodSignature describes a method or node header.
// A nil Return means void.
type MethodSignature struct {
	Name   string
	Return Type
	Params []Parameter
	Static bool
}

// String renders the header as written by the writer, without a trailing newline.
func (m MethodSignature) String() string {
	var b strings.Builder
	if m.Static {
		b.WriteString("static ")
	}
	b.WriteString(CanonicalName(m.Return))
	b.WriteByte(' ')
	b.WriteString(m.Name)
	b.WriteByte('(')
	for i, p := range m.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Define is a #define directive: a name and an optional value.
type Define struct {
	Name  string
	Value string
}
