// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"regexp"
	"strings"
)

var (
	// pragmaRegex matches "#pragma args..." and captures the argument text.
	pragmaRegex = regexp.MustCompile(`^#pragma\s+(.*\S)\s*$`)

	// includeRegex matches #include "path" or #include <path>.
	includeRegex = regexp.MustCompile(`^#include\s*(?:"([^"]*)"|<([^>]*)>)\s*;?\s*$`)

	// defineRegex matches "#define NAME [value]".
	defineRegex = regexp.MustCompile(`^#define\s+(\w+)(?:\s+(.*\S))?\s*$`)

	// conditionalRegex matches "#undef NAME", "#ifdef NAME", "#ifndef NAME"
	// and "#if expr".
	conditionalRegex = regexp.MustCompile(`^#(?:(?:undef|ifdef|ifndef)\s+(\w+)|if\s+(.*\S))\s*$`)

	// attributeRegex matches a whole-line attribute and captures its name and parameter text.
	attributeRegex = regexp.MustCompile(`^\[\[?\s*([\w.:]+)\s*(?:\((.*)\))?\s*\]\]?$`)

	// methodRegex matches "[static ]ret name(params)" with an optional trailing "{".
	methodRegex = regexp.MustCompile(`^(static\s+)?(\w+)\s+(\w+)\s*\(([^()]*)\)\s*\{?\s*$`)
)

// Reader walks an in-memory source line by line.
//
// Each call to Next strips comments from the next line, optionally trims it,
// and classifies it. Extraction methods query the current line only and
// report a miss with ok == false. A Reader never rewinds and is not safe
// for concurrent use.
type Reader struct {
	opts     Options
	registry *Registry

	src string
	pos int

	raw     string
	line    string
	context ContextType
	lineNum int

	inComment bool
	done      bool
}

// NewReader creates a reader over source.
func NewReader(source string, opts *Options) *Reader {
	return &Reader{
		opts:     opts.normalized(),
		registry: builtins,
		src:      source,
	}
}

// WithRegistry makes the reader resolve signature types against reg.
func (r *Reader) WithRegistry(reg *Registry) *Reader {
	if reg != nil {
		r.registry = reg
	}
	return r
}

// IsIL reports whether the reader understands IL lines.
func (r *Reader) IsIL() bool {
	return r.opts.IL
}

// Next advances to the next line and returns it with comments stripped.
// At end of input it returns false, and keeps returning false afterwards.
func (r *Reader) Next() (string, bool) {
	if r.done || r.pos >= len(r.src) {
		r.done = true
		r.raw, r.line, r.context = "", "", ContextNone
		return "", false
	}

	end := strings.IndexByte(r.src[r.pos:], '\n')
	var raw string
	if end < 0 {
		raw = r.src[r.pos:]
		r.pos = len(r.src)
	} else {
		raw = r.src[r.pos : r.pos+end]
		r.pos += end + 1
	}
	raw = strings.TrimSuffix(raw, "\r")
	r.lineNum++

	line, inComment := StripComments(raw, r.inComment)
	r.inComment = inComment
	if r.opts.TrimSpace {
		line = strings.TrimSpace(line)
	}

	r.raw = raw
	r.line = line
	r.context = r.Classify(line)
	return line, true
}

// Done reports whether the reader has reached the end of input.
func (r *Reader) Done() bool {
	return r.done
}

// Line returns the current line with comments stripped.
func (r *Reader) Line() string {
	return r.line
}

// Raw returns the current line exactly as it appeared in the input.
func (r *Reader) Raw() string {
	return r.raw
}

// Context returns the classification of the current line.
func (r *Reader) Context() ContextType {
	return r.context
}

// LineNumber returns the 1-based number of the current line.
func (r *Reader) LineNumber() int {
	return r.lineNum
}

// Classify classifies line using the reader's IL flag and bracket style.
// It depends on nothing but its argument and the reader's options.
func (r *Reader) Classify(line string) ContextType {
	return Classify(line, r.opts.IL, r.opts.BracketStyle)
}

// current returns the trimmed current line.
func (r *Reader) current() string {
	return strings.TrimSpace(r.line)
}

// PragmaArgs returns the whitespace-separated arguments of a #pragma line.
func (r *Reader) PragmaArgs() ([]string, bool) {
	m := pragmaRegex.FindStringSubmatch(r.current())
	if m == nil {
		return nil, false
	}
	return strings.Fields(m[1]), true
}

// IncludePath returns the path of an #include line.
func (r *Reader) IncludePath() (string, bool) {
	m := includeRegex.FindStringSubmatch(r.current())
	if m == nil {
		return "", false
	}
	if m[1] != "" {
		return m[1], true
	}
	return m[2], true
}

// Define returns the name and value of a #define line. On #undef, #ifdef
// and #ifndef lines only Name is set; on an #if line Value holds the
// condition.
func (r *Reader) Define() (Define, bool) {
	line := r.current()
	if m := defineRegex.FindStringSubmatch(line); m != nil {
		return Define{Name: m[1], Value: m[2]}, true
	}
	if m := conditionalRegex.FindStringSubmatch(line); m != nil {
		return Define{Name: m[1], Value: m[2]}, true
	}
	return Define{}, false
}

// Attribute returns the attribute on an attribute line.
func (r *Reader) Attribute() (Attribute, bool) {
	return parseAttribute(r.current())
}

// MethodSignature returns the header on a method header line such as
// "float4 main(float2 uv)".
func (r *Reader) MethodSignature() (MethodSignature, bool) {
	return r.parseSignature(r.current())
}

// parseAttribute parses a whole-line attribute in either bracket style.
func parseAttribute(line string) (Attribute, bool) {
	m := attributeRegex.FindStringSubmatch(line)
	if m == nil {
		return Attribute{}, false
	}
	// Bracket pairs must match: [x] or [[x]].
	if strings.HasPrefix(line, "[[") != strings.HasSuffix(line, "]]") {
		return Attribute{}, false
	}
	return Attribute{Name: m[1], Params: splitTopLevel(m[2])}, true
}

// parseSignature parses a header line into a MethodSignature.
func (r *Reader) parseSignature(line string) (MethodSignature, bool) {
	m := methodRegex.FindStringSubmatch(line)
	if m == nil {
		return MethodSignature{}, false
	}
	ret, name := m[2], m[3]
	if IsStatementKeyword(ret) || IsStatementKeyword(name) {
		return MethodSignature{}, false
	}

	sig := MethodSignature{
		Name:   name,
		Static: m[1] != "",
	}
	if ret != hlslTypeVoid {
		sig.Return = r.registry.Resolve(ret)
	}

	for _, part := range splitTopLevel(m[4]) {
		// Drop a trailing semantic: "float2 uv : TEXCOORD0".
		if i := strings.IndexByte(part, ':'); i >= 0 {
			part = part[:i]
		}
		fields := strings.Fields(part)
		if len(fields) < 2 {
			return MethodSignature{}, false
		}
		// Leading modifiers such as "in" or "inout" are not kept.
		sig.Params = append(sig.Params, Parameter{
			Type: r.registry.Resolve(fields[len(fields)-2]),
			Name: fields[len(fields)-1],
		})
	}
	return sig, true
}

// splitTopLevel splits s on commas that are outside parentheses and string
// literals, trimming each part. An empty or blank s yields nil.
func splitTopLevel(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var (
		parts    []string
		depth    int
		inString bool
		start    int
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(s[start:]))
}
