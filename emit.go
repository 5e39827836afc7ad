package exisl

import (
	"fmt"

	"github.com/gogpu/exisl/hlsl"
)

// Emit renders doc as shader source.
//
// Content strings (pragma payloads, method bodies, literals) are written
// verbatim. Node names are made unique against each other and against method
// names; renamed nodes are logged at debug level. Nodes, comment nodes and
// Meta entries in a non-IL document fail with an ErrIllegalOperation error.
func Emit(doc *Document, opts *Options) (string, error) {
	if doc == nil {
		return "", invalid("nil document")
	}
	wopts, err := doc.Options()
	if err != nil {
		return "", err
	}

	e := &emitter{
		w:     hlsl.NewWriter(wopts),
		reg:   hlsl.Builtins(),
		namer: hlsl.NewNamer(nil),
		opts:  opts,
	}
	if err := e.document(doc); err != nil {
		return "", err
	}

	opts.logger().Debug("emitted document",
		"il", doc.IL,
		"bytes", e.w.Len(),
		"methods", len(doc.Methods),
		"nodes", len(doc.Nodes))
	return e.w.String(), nil
}

// emitter holds the state of one Emit call.
type emitter struct {
	w     *hlsl.Writer
	reg   *hlsl.Registry
	namer *hlsl.Namer
	opts  *Options
}

// document writes every section in order.
func (e *emitter) document(doc *Document) error {
	for _, m := range doc.Methods {
		e.namer.Reserve(m.Name)
	}

	if len(doc.Meta) > 0 {
		e.section()
		for _, d := range doc.Meta {
			if d.Name == "" {
				return invalid("meta entry without a name")
			}
			if err := e.w.WriteILDefine(d.Name, d.Value); err != nil {
				return fmt.Errorf("meta %s: %w", d.Name, err)
			}
		}
	}

	if len(doc.Pragmas)+len(doc.Includes)+len(doc.Defines) > 0 {
		e.section()
		for _, p := range doc.Pragmas {
			e.w.WritePragma(p, true)
		}
		for _, inc := range doc.Includes {
			e.w.WriteInclude(inc, true)
		}
		for _, d := range doc.Defines {
			if d.Name == "" {
				return invalid("define without a name")
			}
			e.w.WriteDefine(d.Name, d.Value, true)
		}
	}

	if len(doc.Fields) > 0 {
		e.section()
		for i := range doc.Fields {
			f, err := doc.Fields[i].field(e.reg)
			if err != nil {
				return fmt.Errorf("field %d: %w", i, err)
			}
			e.w.WriteField(f)
		}
	}

	for i := range doc.Methods {
		if err := e.method(&doc.Methods[i]); err != nil {
			return fmt.Errorf("method %d: %w", i, err)
		}
	}
	for i := range doc.Nodes {
		if err := e.node(&doc.Nodes[i]); err != nil {
			return fmt.Errorf("node %d: %w", i, err)
		}
	}
	for i := range doc.Comments {
		if err := e.commentNode(&doc.Comments[i]); err != nil {
			return fmt.Errorf("comment node %d: %w", i, err)
		}
	}
	return nil
}

// section separates a new section from earlier output with a blank line.
func (e *emitter) section() {
	if e.w.Len() > 0 {
		e.w.NewLine()
	}
}

// attributes writes each attribute on its own line.
func (e *emitter) attributes(specs []AttributeSpec) error {
	for _, a := range specs {
		attr, err := a.attribute()
		if err != nil {
			return err
		}
		e.w.WriteAttribute(attr, true)
	}
	return nil
}

// body writes the verbatim body lines.
func (e *emitter) body(lines []string) {
	for _, line := range lines {
		e.w.Write(line)
		e.w.NewLine()
	}
}

func (e *emitter) method(m *MethodSpec) error {
	sig, err := m.signature(e.reg)
	if err != nil {
		return err
	}
	e.section()
	if err := e.attributes(m.Attributes); err != nil {
		return err
	}
	e.w.StartMethod(sig)
	e.body(m.Body)
	return e.w.EndMethod(m.Result)
}

func (e *emitter) node(n *NodeSpec) error {
	sig, err := n.signature(e.reg)
	if err != nil {
		return err
	}
	props, err := n.Properties.properties()
	if err != nil {
		return err
	}
	if !e.w.IsIL() {
		// Fail before the section break so a non-IL buffer stays untouched.
		return e.w.StartNode(sig, props)
	}

	if name := e.namer.Name(sig.Name); name != sig.Name {
		e.opts.logger().Debug("renamed node", "from", sig.Name, "to", name)
		sig.Name = name
	}

	e.section()
	if err := e.attributes(n.Attributes); err != nil {
		return err
	}
	if err := e.w.StartNode(sig, props); err != nil {
		return err
	}
	e.body(n.Body)
	return e.w.EndNode(n.Result)
}

func (e *emitter) commentNode(c *CommentNodeSpec) error {
	props, err := c.Properties.properties()
	if err != nil {
		return err
	}
	node := hlsl.CommentNode{Header: c.Header, Comment: c.Comment}
	if !e.w.IsIL() {
		return e.w.WriteCommentNode(node, props)
	}

	e.section()
	if err := e.w.WriteCommentNode(node, props); err != nil {
		return err
	}
	return e.w.EndCommentNode()
}
