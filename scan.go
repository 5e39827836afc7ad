package exisl

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/gogpu/exisl/hlsl"
)

// Line is one scanned source line with the data extracted from it.
// Fields that do not apply to the line's context are left empty.
type Line struct {
	Number  int    `json:"number"`
	Context string `json:"context"`
	Text    string `json:"text"`
	Raw     string `json:"raw"`

	// Name is the define, attribute, method, node or comment node header name.
	Name string `json:"name,omitempty"`

	// Value is the define value or the comment node text.
	Value string `json:"value,omitempty"`

	// Args are the pragma arguments or attribute parameters.
	Args []string `json:"args,omitempty"`

	// Path is the include path.
	Path string `json:"path,omitempty"`

	// Signature is the normalized method or node header.
	Signature string `json:"signature,omitempty"`
}

// Scan reads source and returns one Line per input line.
//
// Extraction failures on IL lines (a malformed version or properties line)
// do not stop the scan: the line is kept without its data, the failure is
// logged at debug level, and all failures are returned joined.
func Scan(source string, ropts *hlsl.Options, opts *Options) ([]Line, error) {
	log := opts.logger()
	r := hlsl.NewReader(source, ropts)

	var (
		lines []Line
		errs  []error
	)
	for {
		text, ok := r.Next()
		if !ok {
			break
		}
		line := Line{
			Number:  r.LineNumber(),
			Context: r.Context().String(),
			Text:    text,
			Raw:     r.Raw(),
		}
		if err := extract(r, &line); err != nil {
			log.Debug("line extraction failed", "line", line.Number, "context", line.Context, "error", err)
			errs = append(errs, err)
		}
		lines = append(lines, line)
	}
	return lines, errors.Join(errs...)
}

// extract fills the context-specific fields of line from the reader.
func extract(r *hlsl.Reader, line *Line) error {
	switch r.Context() {
	case hlsl.ContextPragma:
		line.Args, _ = r.PragmaArgs()
	case hlsl.ContextInclude:
		line.Path, _ = r.IncludePath()
	case hlsl.ContextDefineStart, hlsl.ContextDefineEnd:
		if def, ok := r.Define(); ok {
			line.Name, line.Value = def.Name, def.Value
		}
	case hlsl.ContextAttribute:
		if attr, ok := r.Attribute(); ok {
			line.Name, line.Args = attr.Name, attr.Params
		}
	case hlsl.ContextILAttribute:
		if attr, ok := r.Attribute(); ok {
			line.Name, line.Args = attr.Name, attr.Params
		}
		if _, _, err := r.Properties(); err != nil {
			return err
		}
	case hlsl.ContextILDefine:
		def, ok, err := r.ILDefine()
		if err != nil {
			return err
		}
		if ok {
			line.Name, line.Value = def.Name, def.Value
		}
		if _, _, err := r.Version(); err != nil {
			return err
		}
	case hlsl.ContextILNodeStart:
		sig, ok, err := r.NodeSignature()
		if err != nil {
			return err
		}
		if ok {
			line.Name, line.Signature = sig.Name, sig.String()
		}
	case hlsl.ContextILCommentNodeStart:
		node, ok, err := r.CommentNode()
		if err != nil {
			return err
		}
		if ok {
			line.Name, line.Value = node.Header, node.Comment
		}
	case hlsl.ContextNone:
		if sig, ok := r.MethodSignature(); ok {
			line.Name, line.Signature = sig.Name, sig.String()
		}
	}
	return nil
}

// Filter returns the lines for which the boolean expression where holds.
// The expression sees the fields of Line, e.g.
// `Context == "ILNodeStart" && Number > 10`. An empty expression keeps
// every line.
func Filter(lines []Line, where string) ([]Line, error) {
	if where == "" {
		return lines, nil
	}
	prg, err := CompileFilter(where)
	if err != nil {
		return nil, err
	}
	var out []Line
	for _, line := range lines {
		keep, err := matches(prg, line)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, line)
		}
	}
	return out, nil
}

// CompileFilter compiles a Filter expression once for repeated use.
func CompileFilter(where string) (*vm.Program, error) {
	prg, err := expr.Compile(where, expr.Env(Line{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling filter %q: %w", where, err)
	}
	return prg, nil
}

// matches runs a compiled filter against line.
func matches(prg *vm.Program, line Line) (bool, error) {
	res, err := expr.Run(prg, line)
	if err != nil {
		return false, fmt.Errorf("filter on line %d: %w", line.Number, err)
	}
	keep, _ := res.(bool)
	return keep, nil
}
