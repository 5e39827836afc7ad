// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"bytes"
	"fmt"
	"strings"
)

// Writer incrementally builds shader source.
//
// Every line-terminating operation writes a newline followed by the
// indentation of the current stage, so the buffer always ends ready for
// the next line. A Writer is not safe for concurrent use.
type Writer struct {
	opts Options

	// Output buffer
	out bytes.Buffer

	// Current nesting stage
	stage int
}

// NewWriter creates a writer. An IL writer starts with the IL prologue:
// the marker line, a comment line and the version line.
func NewWriter(opts *Options) *Writer {
	w := &Writer{opts: opts.normalized()}
	w.writePrologue()
	return w
}

// writePrologue writes the IL marker, comment and version lines.
func (w *Writer) writePrologue() {
	if !w.opts.IL {
		return
	}
	w.out.WriteString(ILMarker)
	w.NewLine()
	w.WriteComment(w.opts.PrologueComment)
	_ = w.WriteILDefine(ILVersionName, w.opts.Version.String())
}

// IsIL reports whether the writer produces an IL document.
func (w *Writer) IsIL() bool {
	return w.opts.IL
}

// Options returns the normalized options the writer was created with.
func (w *Writer) Options() Options {
	return w.opts
}

// String returns the generated source.
func (w *Writer) String() string {
	return w.out.String()
}

// Bytes returns the generated source. The slice aliases the buffer until the next write.
func (w *Writer) Bytes() []byte {
	return w.out.Bytes()
}

// Len returns the buffer length in bytes.
func (w *Writer) Len() int {
	return w.out.Len()
}

// Stage returns the current nesting stage.
func (w *Writer) Stage() int {
	return w.stage
}

// Reset discards the buffer and the stage, then writes the IL prologue again.
func (w *Writer) Reset() {
	w.out.Reset()
	w.stage = 0
	w.writePrologue()
}

// Output helpers

// Write appends s verbatim.
func (w *Writer) Write(s string) {
	w.out.WriteString(s)
}

// Writef appends formatted text verbatim.
//
//nolint:goprintffuncname
func (w *Writer) Writef(format string, args ...any) {
	fmt.Fprintf(&w.out, format, args...)
}

// NewLine ends the current line and indents the next one.
func (w *Writer) NewLine() {
	w.out.WriteByte('\n')
	w.writeIndent()
}

// Terminate appends the statement terminator without ending the line.
func (w *Writer) Terminate() {
	w.out.WriteByte(';')
}

// WriteLine writes s as a terminated statement and starts a new line.
func (w *Writer) WriteLine(s string) {
	w.out.WriteString(s)
	w.Terminate()
	w.NewLine()
}

// WriteLinef is WriteLine with formatting.
//
//nolint:goprintffuncname
func (w *Writer) WriteLinef(format string, args ...any) {
	w.WriteLine(fmt.Sprintf(format, args...))
}

// WriteComment writes a // comment and starts a new line.
// On a line that already has content the comment trails it after a space.
func (w *Writer) WriteComment(text string) {
	if w.lineHasContent() {
		w.out.WriteByte(' ')
	}
	w.out.WriteString("// ")
	w.out.WriteString(text)
	w.NewLine()
}

// writeIndent writes the current indentation.
func (w *Writer) writeIndent() {
	for i := 0; i < w.stage*w.opts.SpacesPerStage; i++ {
		w.out.WriteByte(' ')
	}
}

// currentLineStart returns the offset of the first byte of the current line.
func (w *Writer) currentLineStart() int {
	return bytes.LastIndexByte(w.out.Bytes(), '\n') + 1
}

// lineHasContent reports whether the current line holds anything but indentation.
func (w *Writer) lineHasContent() bool {
	line := w.out.Bytes()[w.currentLineStart():]
	return len(bytes.TrimLeft(line, " ")) > 0
}

// Blocks

// StartBlock writes an opening bracket and enters a new stage.
func (w *Writer) StartBlock() {
	w.out.WriteByte('{')
	w.stage++
}

// EndBlock leaves the current stage and writes a closing bracket.
// A blank current line is re-indented to the outer stage first.
// Closing at stage 0 reports ErrUnbalancedBlock and writes nothing.
func (w *Writer) EndBlock() error {
	if w.stage == 0 {
		return NewError(ErrUnbalancedBlock, "EndBlock without a matching StartBlock")
	}
	w.stage--
	if !w.lineHasContent() {
		w.out.Truncate(w.currentLineStart())
		w.writeIndent()
	}
	w.out.WriteByte('}')
	return nil
}

// Directives

// directive writes keyword, a space and payload.
func (w *Writer) directive(keyword, payload string, newline bool) {
	w.out.WriteString(keyword)
	if payload != "" {
		w.out.WriteByte(' ')
		w.out.WriteString(payload)
	}
	if newline {
		w.NewLine()
	}
}

// WritePragma writes "#pragma payload".
func (w *Writer) WritePragma(payload string, newline bool) {
	w.directive(KeywordPragma, payload, newline)
}

// WriteDefine writes "#define name value". An empty value writes "#define name".
func (w *Writer) WriteDefine(name, value string, newline bool) {
	payload := name
	if value != "" {
		payload += " " + value
	}
	w.directive(KeywordDefine, payload, newline)
}

// WriteUndefine writes "#undef name".
func (w *Writer) WriteUndefine(name string, newline bool) {
	w.directive(KeywordUndef, name, newline)
}

// WriteIfDef writes "#ifdef name" on its own line.
func (w *Writer) WriteIfDef(name string) {
	w.directive(KeywordIfDef, name, true)
}

// WriteEndIf writes "#endif" on its own line.
func (w *Writer) WriteEndIf() {
	w.directive(KeywordEndIf, "", true)
}

// WriteInclude writes #include "path".
func (w *Writer) WriteInclude(path string, newline bool) {
	w.directive(KeywordInclude, `"`+path+`"`, newline)
}

// Declarations

// WriteAttribute writes attr in the writer's bracket style.
func (w *Writer) WriteAttribute(attr Attribute, newline bool) {
	w.out.WriteString(w.opts.BracketStyle.open())
	w.out.WriteString(attr.body())
	w.out.WriteString(w.opts.BracketStyle.close())
	if newline {
		w.NewLine()
	}
}

// WriteField writes a terminated declaration:
// attributes, modifiers, type and name, semantic, initializer.
func (w *Writer) WriteField(f Field) {
	for _, attr := range f.Attributes {
		w.WriteAttribute(attr, false)
		w.out.WriteByte(' ')
	}
	if f.Static {
		w.out.WriteString(KeywordStatic + " ")
	}
	if f.Const {
		w.out.WriteString(KeywordConst + " ")
	}
	w.out.WriteString(f.Parameter.String())
	if f.Semantic != "" {
		w.out.WriteString(" : ")
		w.out.WriteString(f.Semantic)
	}
	if f.Initializer != nil {
		w.out.WriteString(" = ")
		w.out.WriteString(f.Initializer.String())
	}
	w.Terminate()
	w.NewLine()
}

// StartMethod writes the method header, then opens its body on the next line.
func (w *Writer) StartMethod(sig MethodSignature) {
	w.out.WriteString(sig.String())
	w.NewLine()
	w.StartBlock()
	w.NewLine()
}

// EndMethod optionally writes "return ret;", then closes the body.
// It reports ErrUnbalancedBlock without writing when no block is open.
func (w *Writer) EndMethod(ret string) error {
	if w.stage == 0 {
		return NewError(ErrUnbalancedBlock, "EndMethod without a matching StartMethod")
	}
	if ret != "" {
		w.WriteLine(KeywordReturn + " " + ret)
	}
	if err := w.EndBlock(); err != nil {
		return err
	}
	w.NewLine()
	return nil
}

// WriteParameters writes a parenthesized "type name" list. It is used when a
// caller composes a call or header by hand.
func (w *Writer) WriteParameters(params []Parameter) {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	w.out.WriteByte('(')
	w.out.WriteString(strings.Join(parts, ", "))
	w.out.WriteByte(')')
}
