package exisl

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/gogpu/exisl/hlsl"
)

// Document describes a whole shader source file.
//
// Sections are emitted in field order: IL metadata, directives, fields,
// methods, nodes and comment nodes, separated by blank lines.
type Document struct {
	// IL selects EXISL output. Meta, Nodes and Comments require it.
	IL bool `yaml:"il"`

	// Version overrides the IL version line, e.g. "1.0.0".
	Version string `yaml:"version,omitempty"`

	// Comment overrides the prologue comment.
	Comment string `yaml:"comment,omitempty"`

	// Brackets is the attribute style, "c" (default) or "cpp11".
	Brackets string `yaml:"brackets,omitempty"`

	// Spaces is the indentation width; 0 means 4.
	Spaces int `yaml:"spaces,omitempty"`

	Meta     []DefineSpec      `yaml:"meta,omitempty"`
	Pragmas  []string          `yaml:"pragmas,omitempty"`
	Includes []string          `yaml:"includes,omitempty"`
	Defines  []DefineSpec      `yaml:"defines,omitempty"`
	Fields   []FieldSpec       `yaml:"fields,omitempty"`
	Methods  []MethodSpec      `yaml:"methods,omitempty"`
	Nodes    []NodeSpec        `yaml:"nodes,omitempty"`
	Comments []CommentNodeSpec `yaml:"comments,omitempty"`
}

// DefineSpec is a #define, or an @IL.Name("value") line under Meta.
type DefineSpec struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value,omitempty"`
}

// AttributeSpec is a bracketed attribute.
type AttributeSpec struct {
	Name   string   `yaml:"name"`
	Params []string `yaml:"params,omitempty"`
}

// ParamSpec is a typed method parameter.
type ParamSpec struct {
	Type string `yaml:"type"`
	Name string `yaml:"name"`
}

// FieldSpec is a global declaration.
type FieldSpec struct {
	Type       string          `yaml:"type"`
	Name       string          `yaml:"name"`
	Static     bool            `yaml:"static,omitempty"`
	Const      bool            `yaml:"const,omitempty"`
	Semantic   string          `yaml:"semantic,omitempty"`
	Register   string          `yaml:"register,omitempty"` // e.g. "t0" or "t0, space1"
	Attributes []AttributeSpec `yaml:"attributes,omitempty"`

	// Value holds the numeric components of a registered type's initializer,
	// row by row for matrices.
	Value []float64 `yaml:"value,omitempty"`

	// Literal is written verbatim as the initializer.
	Literal string `yaml:"literal,omitempty"`
}

// MethodSpec is a method with an opaque body.
type MethodSpec struct {
	Name       string          `yaml:"name"`
	Return     string          `yaml:"return,omitempty"` // empty or "void" for no result
	Static     bool            `yaml:"static,omitempty"`
	Params     []ParamSpec     `yaml:"params,omitempty"`
	Attributes []AttributeSpec `yaml:"attributes,omitempty"`

	// Body lines are written verbatim, one per line, at body indentation.
	Body []string `yaml:"body,omitempty"`

	// Result, when set, is written as the final return statement.
	Result string `yaml:"result,omitempty"`
}

// PropertiesSpec places a node in the editor.
type PropertiesSpec struct {
	Position []float32 `yaml:"position,omitempty"`
	Scale    []float32 `yaml:"scale,omitempty"`
}

// NodeSpec is a graph node: a method wrapped in IL markers.
type NodeSpec struct {
	MethodSpec `yaml:",inline"`

	Properties *PropertiesSpec `yaml:"properties,omitempty"`
}

// CommentNodeSpec is a free-standing annotation.
type CommentNodeSpec struct {
	Header     string          `yaml:"header"`
	Comment    string          `yaml:"comment,omitempty"`
	Properties *PropertiesSpec `yaml:"properties,omitempty"`
}

// LoadDocument decodes a YAML document description. Unknown keys are errors.
func LoadDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return &doc, nil
}

// Options returns the writer options the document asks for.
func (d *Document) Options() (*hlsl.Options, error) {
	opts := hlsl.DefaultOptions()
	opts.IL = d.IL
	opts.SpacesPerStage = d.Spaces
	opts.PrologueComment = d.Comment

	style, err := hlsl.ParseBracketStyle(d.Brackets)
	if err != nil {
		return nil, hlsl.NewError(hlsl.ErrInvalidDocument, err.Error())
	}
	opts.BracketStyle = style

	if d.Version != "" {
		v, err := hlsl.ParseVersion(d.Version)
		if err != nil {
			return nil, err
		}
		opts.Version = v
	}
	return opts, nil
}

// attribute converts a to an hlsl.Attribute.
func (a AttributeSpec) attribute() (hlsl.Attribute, error) {
	if a.Name == "" {
		return hlsl.Attribute{}, invalid("attribute without a name")
	}
	return hlsl.Attribute{Name: a.Name, Params: a.Params}, nil
}

// properties converts p to hlsl.Properties; missing position or scale take the defaults.
func (p *PropertiesSpec) properties() (*hlsl.Properties, error) {
	if p == nil {
		return nil, nil
	}
	props := hlsl.DefaultProperties()
	for _, part := range []struct {
		name string
		in   []float32
		out  *[2]float32
	}{
		{"position", p.Position, &props.Position},
		{"scale", p.Scale, &props.Scale},
	} {
		switch len(part.in) {
		case 0:
		case 2:
			copy(part.out[:], part.in)
		default:
			return nil, invalid(fmt.Sprintf("properties %s needs 2 components, got %d", part.name, len(part.in)))
		}
	}
	return &props, nil
}

// signature converts the method header.
func (m *MethodSpec) signature(reg *hlsl.Registry) (hlsl.MethodSignature, error) {
	if m.Name == "" {
		return hlsl.MethodSignature{}, invalid("method without a name")
	}
	sig := hlsl.MethodSignature{Name: m.Name, Static: m.Static}
	if m.Return != "" && m.Return != "void" {
		sig.Return = reg.Resolve(m.Return)
	}
	for i, p := range m.Params {
		if p.Type == "" || p.Name == "" {
			return hlsl.MethodSignature{}, invalid(fmt.Sprintf("parameter %d of %s needs a type and a name", i, m.Name))
		}
		sig.Params = append(sig.Params, hlsl.Parameter{Type: reg.Resolve(p.Type), Name: p.Name})
	}
	return sig, nil
}

// field converts the declaration.
func (f *FieldSpec) field(reg *hlsl.Registry) (hlsl.Field, error) {
	if f.Type == "" || f.Name == "" {
		return hlsl.Field{}, invalid("field needs a type and a name")
	}
	out := hlsl.Field{
		Parameter: hlsl.Parameter{Type: reg.Resolve(f.Type), Name: f.Name},
		Static:    f.Static,
		Const:     f.Const,
		Semantic:  f.Semantic,
	}

	if f.Register != "" {
		if f.Semantic != "" {
			return hlsl.Field{}, invalid(fmt.Sprintf("field %s has both a semantic and a register", f.Name))
		}
		r, err := hlsl.ParseRegister("register(" + f.Register + ")")
		if err != nil {
			return hlsl.Field{}, invalid(fmt.Sprintf("field %s: %v", f.Name, err))
		}
		out.Semantic = r.Semantic()
	}

	for _, a := range f.Attributes {
		attr, err := a.attribute()
		if err != nil {
			return hlsl.Field{}, err
		}
		out.Attributes = append(out.Attributes, attr)
	}

	value, err := f.initializer(out.Type)
	if err != nil {
		return hlsl.Field{}, err
	}
	out.Initializer = value
	return out, nil
}

// initializer builds the field's initializer value, if any.
func (f *FieldSpec) initializer(t hlsl.Type) (hlsl.Value, error) {
	switch {
	case f.Literal != "" && f.Value != nil:
		return nil, invalid(fmt.Sprintf("field %s has both a value and a literal", f.Name))
	case f.Literal != "":
		return hlsl.NewOpaqueValue(hlsl.NewUnregistered(t.Name()), f.Literal), nil
	case f.Value == nil:
		return nil, nil
	}

	arity := func(n int) error {
		if len(f.Value) != n {
			return invalid(fmt.Sprintf("field %s of type %s needs %d components, got %d", f.Name, t.Name(), n, len(f.Value)))
		}
		return nil
	}
	switch t := t.(type) {
	case hlsl.Scalar:
		if err := arity(1); err != nil {
			return nil, err
		}
		return hlsl.ScalarValue{Kind: t.Kind, Value: f.Value[0]}, nil
	case hlsl.Vector:
		if err := arity(int(t.Size)); err != nil {
			return nil, err
		}
		return hlsl.NewVectorValue(t, f.Value...), nil
	case hlsl.Matrix:
		if err := arity(int(t.Rows) * int(t.Columns)); err != nil {
			return nil, err
		}
		v := hlsl.MatrixValue{Matrix: t}
		for i, c := range f.Value {
			v.Cells[i/int(t.Columns)][i%int(t.Columns)] = c
		}
		return v, nil
	default:
		return nil, invalid(fmt.Sprintf("field %s: type %s has no numeric payload, use a literal", f.Name, t.Name()))
	}
}

func invalid(msg string) error {
	return hlsl.NewError(hlsl.ErrInvalidDocument, msg)
}
