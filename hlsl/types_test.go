// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import "testing"

func TestType_Name(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Scalar{Kind: ScalarBool}, "bool"},
		{Scalar{Kind: ScalarUint}, "uint"},
		{Vector{Kind: ScalarFloat, Size: 3}, "float3"},
		{Vector{Kind: ScalarHalf, Size: 2}, "half2"},
		{Matrix{Kind: ScalarFloat, Rows: 4, Columns: 4}, "float4x4"},
		{Matrix{Kind: ScalarDouble, Rows: 2, Columns: 3}, "double2x3"},
		{NewUnregistered("Texture2D"), "Texture2D"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.typ.Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCanonicalName_Void(t *testing.T) {
	if got := CanonicalName(nil); got != "void" {
		t.Errorf("CanonicalName(nil) = %q, want void", got)
	}
}

func TestValue_String(t *testing.T) {
	float2 := Vector{Kind: ScalarFloat, Size: 2}
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"float", ScalarValue{Kind: ScalarFloat, Value: 0.5}, "0.5"},
		{"int", ScalarValue{Kind: ScalarInt, Value: -3}, "-3"},
		{"uint negative", ScalarValue{Kind: ScalarUint, Value: -3}, "0"},
		{"bool true", ScalarValue{Kind: ScalarBool, Value: 1}, "true"},
		{"bool false", ScalarValue{Kind: ScalarBool}, "false"},
		{"float2", NewVectorValue(float2, 0, 1), "float2(0, 1)"},
		{"float2 extra", NewVectorValue(float2, 1, 2, 3, 4), "float2(1, 2)"},
		{"int3 short", NewVectorValue(Vector{Kind: ScalarInt, Size: 3}, 7), "int3(7, 0, 0)"},
		{"matrix", MatrixValue{
			Matrix: Matrix{Kind: ScalarFloat, Rows: 2, Columns: 2},
			Cells:  [4][4]float64{{1, 0}, {0, 1}},
		}, "float2x2(1, 0, 0, 1)"},
		{"opaque", NewOpaqueValue(NewUnregistered("Texture2D"), "tex"), "tex"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestType_Zero(t *testing.T) {
	for _, typ := range Builtins().Types() {
		zero := typ.Zero()
		if zero.Type() != typ {
			t.Errorf("%s: Zero().Type() = %v, want %v", typ.Name(), zero.Type(), typ)
		}
	}

	u := NewUnregistered("SamplerState")
	zero := u.Zero()
	if zero.Type() != Type(u) {
		t.Errorf("unregistered Zero().Type() = %v, want %v", zero.Type(), u)
	}
	if zero.String() != "" {
		t.Errorf("unregistered Zero().String() = %q, want empty", zero.String())
	}
}

func TestType_Identity(t *testing.T) {
	if Type(NewUnregistered("float")) == Type(Scalar{Kind: ScalarFloat}) {
		t.Error("unregistered type must never equal a registered one")
	}
	if Type(Vector{Kind: ScalarFloat, Size: 2}) != Resolve("float2") {
		t.Error("equal vector descriptors must be the same type")
	}
}
