// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import "testing"

func TestStripComments(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		inBlock     bool
		want        string
		wantInBlock bool
	}{
		{"no comment", "float x;", false, "float x;", false},
		{"line comment", "float x; // note", false, "float x; ", false},
		{"whole line", "// note", false, "", false},
		{"block inline", "float /* a */x;", false, "float x;", false},
		{"block joins tokens", "float/* a */x;", false, "float x;", false},
		{"block opens", "float x; /* start", false, "float x; ", true},
		{"block continues", "still inside", true, "", true},
		{"block closes", "end */ float y;", true, " float y;", false},
		{"string keeps slashes", `#include "a//b.hlsl" // c`, false, `#include "a//b.hlsl" `, false},
		{"string keeps block", `@IL.Graph("/* x */");`, false, `@IL.Graph("/* x */");`, false},
		{"escaped quote", `@IL.Graph("a\"//b"); // c`, false, `@IL.Graph("a\"//b"); `, false},
		{"division", "x = a / b;", false, "x = a / b;", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, inBlock := StripComments(tt.line, tt.inBlock)
			if got != tt.want || inBlock != tt.wantInBlock {
				t.Errorf("StripComments(%q, %v) = %q, %v; want %q, %v",
					tt.line, tt.inBlock, got, inBlock, tt.want, tt.wantInBlock)
			}
		})
	}
}
