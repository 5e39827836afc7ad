// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// quoted matches one Go-quoted string literal.
const quoted = `("(?:[^"\\]|\\.)*")`

var (
	// ilDefineRegex matches @IL.Name("value");
	ilDefineRegex = regexp.MustCompile(`^@IL\.(\w+)\(\s*` + quoted + `\s*\)\s*;?$`)

	// commentNodeRegex matches @IL.CommentNode("header", "comment");
	commentNodeRegex = regexp.MustCompile(`^@IL\.CommentNode\(\s*` + quoted + `\s*,\s*` + quoted + `\s*\)\s*;?$`)

	// float2Regex matches a float2(x, y) literal.
	float2Regex = regexp.MustCompile(`^float2\(\s*([^,()\s]+)\s*,\s*([^,()\s]+)\s*\)$`)
)

// float2Type is the component type of node properties.
var float2Type = Vector{Kind: ScalarFloat, Size: 2}

// Properties are the editor-facing placement of a node: its position on the
// canvas and its scale.
type Properties struct {
	Position [2]float32
	Scale    [2]float32
}

// DefaultProperties returns properties at the origin with unit scale.
func DefaultProperties() Properties {
	return Properties{Scale: [2]float32{1, 1}}
}

// Attribute returns the IL.Properties attribute carrying p.
func (p Properties) Attribute() Attribute {
	return Attribute{
		Name: ILPropertiesAttribute,
		Params: []string{
			NewVectorValue(float2Type, float64(p.Position[0]), float64(p.Position[1])).String(),
			NewVectorValue(float2Type, float64(p.Scale[0]), float64(p.Scale[1])).String(),
		},
	}
}

// CommentNode is a free-standing annotation node.
type CommentNode struct {
	Header  string
	Comment string
}

// IL writer operations. Each reports ErrIllegalOperation on a non-IL writer
// and leaves the buffer untouched.

// WriteILDefine writes @IL.name("value");
func (w *Writer) WriteILDefine(name, value string) error {
	if !w.opts.IL {
		return errNotIL("WriteILDefine")
	}
	w.WriteLine(ILPrefix + name + "(" + strconv.Quote(value) + ")")
	return nil
}

// WriteProperties writes the IL.Properties attribute on its own line.
// A nil p writes DefaultProperties.
func (w *Writer) WriteProperties(p *Properties) error {
	if !w.opts.IL {
		return errNotIL("WriteProperties")
	}
	w.writeProperties(p)
	return nil
}

// writeProperties writes p, or DefaultProperties when p is nil.
func (w *Writer) writeProperties(p *Properties) {
	props := DefaultProperties()
	if p != nil {
		props = *p
	}
	w.WriteAttribute(props.Attribute(), true)
}

// StartNode writes the properties line, then the node header, and opens the
// node body. A nil p writes DefaultProperties.
func (w *Writer) StartNode(sig MethodSignature, p *Properties) error {
	if !w.opts.IL {
		return errNotIL("StartNode")
	}
	w.writeProperties(p)
	w.out.WriteString(ILNodeKeyword + " ")
	w.StartMethod(sig)
	return nil
}

// EndNode closes the node body like EndMethod and writes the node end marker.
func (w *Writer) EndNode(ret string) error {
	if !w.opts.IL {
		return errNotIL("EndNode")
	}
	if err := w.EndMethod(ret); err != nil {
		return err
	}
	w.WriteLine(ILEndNodeKeyword)
	return nil
}

// WriteCommentNode writes the properties line and the comment node line.
// A nil p writes DefaultProperties.
func (w *Writer) WriteCommentNode(node CommentNode, p *Properties) error {
	if !w.opts.IL {
		return errNotIL("WriteCommentNode")
	}
	w.writeProperties(p)
	w.WriteLine(ILCommentNodeKeyword + "(" + strconv.Quote(node.Header) + ", " + strconv.Quote(node.Comment) + ")")
	return nil
}

// EndCommentNode writes the comment node end marker.
func (w *Writer) EndCommentNode() error {
	if !w.opts.IL {
		return errNotIL("EndCommentNode")
	}
	w.WriteLine(ILEndCommentNodeKeyword)
	return nil
}

// IL reader operations. Each reports ErrIllegalOperation on a non-IL reader.

// NodeSignature returns the header of an @IL.Node line.
func (r *Reader) NodeSignature() (MethodSignature, bool, error) {
	if !r.opts.IL {
		return MethodSignature{}, false, errNotIL("NodeSignature")
	}
	rest, ok := strings.CutPrefix(r.current(), ILNodeKeyword)
	if !ok || rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return MethodSignature{}, false, nil
	}
	sig, ok := r.parseSignature(strings.TrimSpace(rest))
	return sig, ok, nil
}

// CommentNode returns the header and comment of an @IL.CommentNode line.
func (r *Reader) CommentNode() (CommentNode, bool, error) {
	if !r.opts.IL {
		return CommentNode{}, false, errNotIL("CommentNode")
	}
	m := commentNodeRegex.FindStringSubmatch(r.current())
	if m == nil {
		return CommentNode{}, false, nil
	}
	header, err := strconv.Unquote(m[1])
	if err != nil {
		return CommentNode{}, false, r.invalid("comment node header", err)
	}
	comment, err := strconv.Unquote(m[2])
	if err != nil {
		return CommentNode{}, false, r.invalid("comment node comment", err)
	}
	return CommentNode{Header: header, Comment: comment}, true, nil
}

// ILDefine returns the name and value of an @IL.Name("value") line.
func (r *Reader) ILDefine() (Define, bool, error) {
	if !r.opts.IL {
		return Define{}, false, errNotIL("ILDefine")
	}
	m := ilDefineRegex.FindStringSubmatch(r.current())
	if m == nil {
		return Define{}, false, nil
	}
	value, err := strconv.Unquote(m[2])
	if err != nil {
		return Define{}, false, r.invalid("IL define "+m[1], err)
	}
	return Define{Name: m[1], Value: value}, true, nil
}

// Version returns the version of an @IL.ILVersion line.
func (r *Reader) Version() (Version, bool, error) {
	if !r.opts.IL {
		return Version{}, false, errNotIL("Version")
	}
	def, ok, err := r.ILDefine()
	if err != nil || !ok || def.Name != ILVersionName {
		return Version{}, false, err
	}
	v, err := ParseVersion(def.Value)
	if err != nil {
		return Version{}, false, NewErrorAtLine(ErrInvalidVersion, err.(*Error).Message, r.lineNum)
	}
	return v, true, nil
}

// Properties returns the node placement of an IL.Properties attribute line.
func (r *Reader) Properties() (Properties, bool, error) {
	if !r.opts.IL {
		return Properties{}, false, errNotIL("Properties")
	}
	attr, ok := parseAttribute(r.current())
	if !ok || attr.Name != ILPropertiesAttribute {
		return Properties{}, false, nil
	}
	if len(attr.Params) != 2 {
		return Properties{}, false, NewErrorAtLine(ErrInvalidDocument,
			fmt.Sprintf("%s takes 2 parameters, got %d", ILPropertiesAttribute, len(attr.Params)), r.lineNum)
	}
	var p Properties
	var err error
	if p.Position, err = parseFloat2(attr.Params[0]); err != nil {
		return Properties{}, false, r.invalid("properties position", err)
	}
	if p.Scale, err = parseFloat2(attr.Params[1]); err != nil {
		return Properties{}, false, r.invalid("properties scale", err)
	}
	return p, true, nil
}

// invalid wraps err as an ErrInvalidDocument at the current line.
func (r *Reader) invalid(what string, err error) error {
	return NewErrorAtLine(ErrInvalidDocument, what+": "+err.Error(), r.lineNum)
}

// parseFloat2 parses a float2(x, y) literal.
func parseFloat2(s string) ([2]float32, error) {
	m := float2Regex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return [2]float32{}, fmt.Errorf("malformed float2 literal %q", s)
	}
	var out [2]float32
	for i := range out {
		f, err := strconv.ParseFloat(m[i+1], 32)
		if err != nil {
			return [2]float32{}, fmt.Errorf("float2 component %q: %w", m[i+1], err)
		}
		out[i] = float32(f)
	}
	return out, nil
}
