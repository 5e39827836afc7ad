package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRender_Overrides(t *testing.T) {
	cfg := &EmitConfig{MainConfig: &MainConfig{Log: newLogger(&bytes.Buffer{}, false)}, CPP11: true, Spaces: 2}
	doc := []byte("methods:\n  - name: main\n    attributes:\n      - name: unroll\n    body: [\"x = 1;\"]\n")
	got, err := render(cfg, "doc.yaml", doc)
	if err != nil {
		t.Fatalf("render() error = %v", err)
	}
	want := "[[unroll]]\nvoid main()\n{\n  x = 1;\n}\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestEmitFailureKeepsOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.exisl")
	if err := os.WriteFile(path, []byte("previous\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &EmitConfig{MainConfig: &MainConfig{Log: newLogger(&bytes.Buffer{}, false)}, Out: path}
	if _, err := render(cfg, "bad.yaml", []byte("nodez: []\n")); err == nil {
		t.Fatal("render() accepted an unknown key")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "previous\n" {
		t.Errorf("output file = %q after a failed emit, want it untouched", data)
	}
}

func TestWriteOutput(t *testing.T) {
	var stdout bytes.Buffer
	for _, path := range []string{"", "-"} {
		stdout.Reset()
		if err := writeOutput(&stdout, path, "float x;\n"); err != nil {
			t.Fatalf("writeOutput(%q) error = %v", path, err)
		}
		if stdout.String() != "float x;\n" {
			t.Errorf("writeOutput(%q) wrote %q to stdout", path, stdout.String())
		}
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "out.hlsl")
	stdout.Reset()
	if err := writeOutput(&stdout, path, "float y;\n"); err != nil {
		t.Fatalf("writeOutput(file) error = %v", err)
	}
	if data, _ := os.ReadFile(path); string(data) != "float y;\n" {
		t.Errorf("file = %q, want %q", data, "float y;\n")
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want nothing", stdout.String())
	}

	if err := writeOutput(&stdout, dir, "z"); err == nil {
		t.Error("writeOutput(directory) error = nil")
	}
}
