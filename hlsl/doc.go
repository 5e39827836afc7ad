// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package hlsl reads and writes HLSL-family shader source and its EXISL
// intermediate dialect.
//
// EXISL is HLSL with a small declarative vocabulary layered on top, used by
// node-based shader editors to store a graph in a text file that is still
// shader source. An EXISL document starts with a marker line, a comment and a
// version line:
//
//	#EXISL
//	// EXISL intermediate shader source, edit with care
//	@IL.ILVersion("1.0.0");
//
// Nodes are methods wrapped in IL markers, optionally preceded by their
// editor placement:
//
//	[IL.Properties(float2(0, 0), float2(1, 1))]
//	@IL.Node float4 tint(float4 color)
//	{
//	    return color;
//	}
//	@IL.EndNode;
//
// # Writing
//
// A Writer builds source incrementally. It tracks a nesting stage and
// indents every new line by the stage times Options.SpacesPerStage:
//
//	w := hlsl.NewWriter(hlsl.ILOptions())
//	w.StartNode(sig, nil)
//	w.EndNode("color")
//	src := w.String()
//
// IL operations on a writer created without Options.IL fail with an
// ErrIllegalOperation error and leave the buffer untouched.
//
// # Reading
//
// A Reader walks source line by line. Each line is stripped of comments,
// classified into a ContextType, and can then be queried with the
// extraction methods (Define, Attribute, MethodSignature, NodeSignature, ...).
// Classification depends only on the line text and the reader options.
//
// # Types
//
// Shading types are resolved through a Registry built from a static table of
// entries. Builtins holds the scalar, vector and matrix types of the base
// language; any other spelling resolves to an Unregistered fallback type.
package hlsl
