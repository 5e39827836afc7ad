package exisl

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/exisl/hlsl"
)

const prologue = "#EXISL\n// EXISL intermediate shader source, edit with care\n@IL.ILVersion(\"1.0.0\");\n"

const blurYAML = `
il: true
meta:
  - name: Graph
    value: blur
pragmas:
  - "pack_matrix(row_major)"
includes:
  - common.hlsl
defines:
  - name: STEPS
    value: "4"
fields:
  - type: Texture2D
    name: source
    register: t0
  - type: float2
    name: texel
    static: true
    const: true
    value: [0.5, 0.25]
nodes:
  - name: sample
    return: float4
    params:
      - type: float2
        name: uv
    properties:
      position: [0, 0]
    body:
      - "float4 c = source.Sample(linearSampler, uv);"
    result: c
  - name: sample
    return: float4
    params:
      - type: float4
        name: color
    result: color * 0.5
comments:
  - header: Blur
    comment: two taps
`

const blurEXISL = prologue +
	"\n" +
	"@IL.Graph(\"blur\");\n" +
	"\n" +
	"#pragma pack_matrix(row_major)\n" +
	"#include \"common.hlsl\"\n" +
	"#define STEPS 4\n" +
	"\n" +
	"Texture2D source : register(t0);\n" +
	"static const float2 texel = float2(0.5, 0.25);\n" +
	"\n" +
	"[IL.Properties(float2(0, 0), float2(1, 1))]\n" +
	"@IL.Node float4 sample(float2 uv)\n" +
	"{\n" +
	"    float4 c = source.Sample(linearSampler, uv);\n" +
	"    return c;\n" +
	"}\n" +
	"@IL.EndNode;\n" +
	"\n" +
	"[IL.Properties(float2(0, 0), float2(1, 1))]\n" +
	"@IL.Node float4 sample_1(float4 color)\n" +
	"{\n" +
	"    return color * 0.5;\n" +
	"}\n" +
	"@IL.EndNode;\n" +
	"\n" +
	"[IL.Properties(float2(0, 0), float2(1, 1))]\n" +
	"@IL.CommentNode(\"Blur\", \"two taps\");\n" +
	"@IL.EndCommentNode;\n"

func mustLoad(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := LoadDocument([]byte(src))
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	return doc
}

func TestEmit_ILDocument(t *testing.T) {
	var logs bytes.Buffer
	opts := &Options{Logger: slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	got, err := Emit(mustLoad(t, blurYAML), opts)
	if err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	if diff := cmp.Diff(blurEXISL, got); diff != "" {
		t.Errorf("Emit() mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(logs.String(), "renamed node") {
		t.Errorf("expected a rename log record, got %q", logs.String())
	}
}

func TestEmit_PlainDocument(t *testing.T) {
	doc := mustLoad(t, `
brackets: cpp11
spaces: 2
pragmas: ["once"]
methods:
  - name: main
    return: float4
    attributes:
      - name: numthreads
        params: ["8", "8", "1"]
    params:
      - type: uint3
        name: id
    body:
      - "float4 c = 0;"
      - "c.x = id.x;"
    result: c
  - name: helper
    static: true
`)
	got, err := Emit(doc, nil)
	if err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	want := "#pragma once\n" +
		"\n" +
		"[[numthreads(8, 8, 1)]]\n" +
		"float4 main(uint3 id)\n" +
		"{\n" +
		"  float4 c = 0;\n" +
		"  c.x = id.x;\n" +
		"  return c;\n" +
		"}\n" +
		"\n" +
		"static void helper()\n" +
		"{\n" +
		"}\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Emit() mismatch (-want +got):\n%s", diff)
	}
}

func TestEmit_Matrix(t *testing.T) {
	doc := &Document{Fields: []FieldSpec{{
		Type:  "float2x2",
		Name:  "rotation",
		Value: []float64{0, -1, 1, 0},
	}}}
	got, err := Emit(doc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := "float2x2 rotation = float2x2(0, -1, 1, 0);\n"; got != want {
		t.Errorf("Emit() = %q, want %q", got, want)
	}
}

func TestEmit_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  *Document
		kind hlsl.ErrorKind
	}{
		{"nil", nil, hlsl.ErrInvalidDocument},
		{"node without IL", &Document{Nodes: []NodeSpec{{MethodSpec: MethodSpec{Name: "n"}}}}, hlsl.ErrIllegalOperation},
		{"comment without IL", &Document{Comments: []CommentNodeSpec{{Header: "h"}}}, hlsl.ErrIllegalOperation},
		{"meta without IL", &Document{Meta: []DefineSpec{{Name: "Graph"}}}, hlsl.ErrIllegalOperation},
		{"bad version", &Document{IL: true, Version: "1.x"}, hlsl.ErrInvalidVersion},
		{"bad brackets", &Document{Brackets: "round"}, hlsl.ErrInvalidDocument},
		{"method without name", &Document{Methods: []MethodSpec{{Return: "float"}}}, hlsl.ErrInvalidDocument},
		{"param without type", &Document{Methods: []MethodSpec{{Name: "f", Params: []ParamSpec{{Name: "x"}}}}}, hlsl.ErrInvalidDocument},
		{"field arity", &Document{Fields: []FieldSpec{{Type: "float3", Name: "v", Value: []float64{1, 2}}}}, hlsl.ErrInvalidDocument},
		{"field opaque value", &Document{Fields: []FieldSpec{{Type: "Texture2D", Name: "t", Value: []float64{1}}}}, hlsl.ErrInvalidDocument},
		{"field value and literal", &Document{Fields: []FieldSpec{{Type: "float", Name: "f", Value: []float64{1}, Literal: "1"}}}, hlsl.ErrInvalidDocument},
		{"field semantic and register", &Document{Fields: []FieldSpec{{Type: "Texture2D", Name: "t", Semantic: "S", Register: "t0"}}}, hlsl.ErrInvalidDocument},
		{"field bad register", &Document{Fields: []FieldSpec{{Type: "Texture2D", Name: "t", Register: "x0"}}}, hlsl.ErrInvalidDocument},
		{"bad properties", &Document{IL: true, Nodes: []NodeSpec{{
			MethodSpec: MethodSpec{Name: "n"},
			Properties: &PropertiesSpec{Position: []float32{1, 2, 3}},
		}}}, hlsl.ErrInvalidDocument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Emit(tt.doc, nil)
			if !hlsl.IsKind(err, tt.kind) {
				t.Errorf("Emit() error = %v, want kind %v", err, tt.kind)
			}
		})
	}
}

func TestLoadDocument_UnknownKey(t *testing.T) {
	if _, err := LoadDocument([]byte("il: true\nnodez: []\n")); err == nil {
		t.Error("LoadDocument() accepted an unknown key")
	}
}

func TestScan_EmittedDocument(t *testing.T) {
	lines, err := Scan(blurEXISL, hlsl.ILOptions(), nil)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if got, want := len(lines), strings.Count(blurEXISL, "\n"); got != want {
		t.Fatalf("Scan() returned %d lines, want %d", got, want)
	}

	byNumber := func(n int) Line { return lines[n-1] }
	tests := []struct {
		number int
		want   Line
	}{
		{1, Line{Number: 1, Context: "IL", Text: "#EXISL", Raw: "#EXISL"}},
		{3, Line{Number: 3, Context: "ILDefine", Text: `@IL.ILVersion("1.0.0");`, Raw: `@IL.ILVersion("1.0.0");`, Name: "ILVersion", Value: "1.0.0"}},
		{7, Line{Number: 7, Context: "Pragma", Text: "#pragma pack_matrix(row_major)", Raw: "#pragma pack_matrix(row_major)", Args: []string{"pack_matrix(row_major)"}}},
		{8, Line{Number: 8, Context: "Include", Text: `#include "common.hlsl"`, Raw: `#include "common.hlsl"`, Path: "common.hlsl"}},
		{9, Line{Number: 9, Context: "DefineStart", Text: "#define STEPS 4", Raw: "#define STEPS 4", Name: "STEPS", Value: "4"}},
		{14, Line{
			Number:  14,
			Context: "ILAttribute",
			Text:    "[IL.Properties(float2(0, 0), float2(1, 1))]",
			Raw:     "[IL.Properties(float2(0, 0), float2(1, 1))]",
			Name:    "IL.Properties",
			Args:    []string{"float2(0, 0)", "float2(1, 1)"},
		}},
		{15, Line{
			Number:    15,
			Context:   "ILNodeStart",
			Text:      "@IL.Node float4 sample(float2 uv)",
			Raw:       "@IL.Node float4 sample(float2 uv)",
			Name:      "sample",
			Signature: "float4 sample(float2 uv)",
		}},
		{30, Line{
			Number:  30,
			Context: "ILCommentNodeStart",
			Text:    `@IL.CommentNode("Blur", "two taps");`,
			Raw:     `@IL.CommentNode("Blur", "two taps");`,
			Name:    "Blur",
			Value:   "two taps",
		}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, byNumber(tt.number)); diff != "" {
			t.Errorf("line %d mismatch (-want +got):\n%s", tt.number, diff)
		}
	}
}

func TestScan_MethodHeader(t *testing.T) {
	lines, err := Scan("float4 main(float2 uv : TEXCOORD0)\n{\n}\n", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if lines[0].Signature != "float4 main(float2 uv)" || lines[0].Name != "main" {
		t.Errorf("Scan() header = %+v", lines[0])
	}
	if lines[1].Context != "MethodStart" || lines[2].Context != "MethodEnd" {
		t.Errorf("Scan() contexts = %q, %q", lines[1].Context, lines[2].Context)
	}
}

func TestScan_JoinsExtractionErrors(t *testing.T) {
	src := "#EXISL\n" +
		"@IL.ILVersion(\"x\");\n" +
		"[IL.Properties(float2(0, 0))]\n" +
		"float x;\n"
	lines, err := Scan(src, hlsl.ILOptions(), nil)
	if len(lines) != 4 {
		t.Fatalf("Scan() returned %d lines, want 4", len(lines))
	}
	if !hlsl.IsKind(err, hlsl.ErrInvalidVersion) || !hlsl.IsKind(err, hlsl.ErrInvalidDocument) {
		t.Errorf("Scan() error = %v, want both version and document errors", err)
	}
	if lines[1].Name != "ILVersion" || lines[1].Value != "x" {
		t.Errorf("line 2 = %+v, want the raw define kept", lines[1])
	}
}

func TestFilter(t *testing.T) {
	lines, err := Scan(blurEXISL, hlsl.ILOptions(), nil)
	if err != nil {
		t.Fatal(err)
	}

	nodes, err := Filter(lines, `Context == "ILNodeStart"`)
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	var names []string
	for _, l := range nodes {
		names = append(names, l.Name)
	}
	if diff := cmp.Diff([]string{"sample", "sample_1"}, names); diff != "" {
		t.Errorf("Filter() names mismatch (-want +got):\n%s", diff)
	}

	early, err := Filter(lines, `Number <= 3`)
	if err != nil {
		t.Fatal(err)
	}
	if len(early) != 3 {
		t.Errorf("Filter(Number <= 3) kept %d lines, want 3", len(early))
	}

	all, err := Filter(lines, "")
	if err != nil || len(all) != len(lines) {
		t.Errorf("Filter(\"\") = %d lines, %v", len(all), err)
	}

	for _, bad := range []string{"Number +", "Number + 1", "Bogus == 1"} {
		if _, err := Filter(lines, bad); err == nil {
			t.Errorf("Filter(%q) error = nil", bad)
		}
	}
}

func TestDiff(t *testing.T) {
	a := "#EXISL\nfloat a;\nfloat b;\n"
	b := "#EXISL\nfloat a;\nfloat c;\n"

	same := Diff(a, a)
	if HasChanges(same) {
		t.Errorf("Diff(a, a) has changes: %+v", same)
	}

	diffs := Diff(a, b)
	if !HasChanges(diffs) {
		t.Fatal("Diff(a, b) reports no changes")
	}
	out := FormatDiff(diffs)
	for _, want := range []string{" #EXISL\n", " float a;\n", "-float b;\n", "+float c;\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatDiff() missing %q in:\n%s", want, out)
		}
	}
}

func TestScan_ConditionalNames(t *testing.T) {
	src := "#ifdef DEBUG\n" +
		"#define STEPS 4\n" +
		"#undef DEBUG\n" +
		"#endif\n"
	lines, err := Scan(src, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	debug, err := Filter(lines, `Name == "DEBUG"`)
	if err != nil {
		t.Fatal(err)
	}
	var got []int
	for _, l := range debug {
		got = append(got, l.Number)
	}
	if diff := cmp.Diff([]int{1, 3}, got); diff != "" {
		t.Errorf("Filter(Name == DEBUG) lines mismatch (-want +got):\n%s", diff)
	}
}
