package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/gogpu/exisl"
	"github.com/gogpu/exisl/hlsl"
)

func scan(cfg *ScanConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Scan.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	if cfg.Where != "" {
		// Reject a bad expression before reading any input.
		if _, err := exisl.CompileFilter(cfg.Where); err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}

	pal := newPalette(useColor(cfg.Color, cc.Out))
	for _, arg := range args {
		data, err := readInput(arg)
		if err != nil {
			return err
		}
		src := string(data)

		opts := hlsl.DefaultOptions()
		opts.IL = cfg.IL || strings.HasPrefix(src, hlsl.ILMarker)
		if cfg.CPP11 {
			opts.BracketStyle = hlsl.BracketCPP11
		}

		lines, err := exisl.Scan(src, opts, &exisl.Options{Logger: cfg.Log})
		if err != nil {
			cfg.Log.Warn("malformed lines", "file", arg, "error", err)
		}
		lines, err = exisl.Filter(lines, cfg.Where)
		if err != nil {
			return err
		}

		if len(args) > 1 && !cfg.JSON {
			fmt.Fprintf(cc.Out, "%s:\n", pal.file(arg))
		}
		if err := writeLines(cc.Out, lines, pal, cfg.JSON); err != nil {
			return err
		}
	}
	return nil
}

func writeLines(w io.Writer, lines []exisl.Line, pal *palette, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		for i := range lines {
			if err := enc.Encode(&lines[i]); err != nil {
				return err
			}
		}
		return nil
	}
	for _, l := range lines {
		ctx, _ := hlsl.ParseContextType(l.Context)
		// Pad before colouring so escape codes do not break the alignment.
		col := pal.context(ctx, fmt.Sprintf("%-18s", l.Context))
		if _, err := fmt.Fprintf(w, "%5d  %s  %s%s\n", l.Number, col, l.Text, pal.data(extracted(l))); err != nil {
			return err
		}
	}
	return nil
}

// extracted summarizes the data pulled out of a line.
func extracted(l exisl.Line) string {
	var parts []string
	if l.Name != "" {
		parts = append(parts, "name="+l.Name)
	}
	if l.Value != "" {
		parts = append(parts, fmt.Sprintf("value=%q", l.Value))
	}
	if len(l.Args) > 0 {
		parts = append(parts, "args=["+strings.Join(l.Args, " ")+"]")
	}
	if l.Path != "" {
		parts = append(parts, "path="+l.Path)
	}
	if l.Signature != "" {
		parts = append(parts, "sig="+l.Signature)
	}
	if len(parts) == 0 {
		return ""
	}
	return "    # " + strings.Join(parts, " ")
}

// palette colours scan and diff output.
type palette struct {
	enabled  bool
	contexts map[hlsl.ContextType]func(a ...any) string
	comment  func(a ...any) string
	name     func(a ...any) string
	added    func(a ...any) string
	removed  func(a ...any) string
}

func newPalette(enabled bool) *palette {
	p := &palette{enabled: enabled}
	if !enabled {
		return p
	}
	mk := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		c.EnableColor()
		return c.SprintFunc()
	}
	directive := mk(color.FgMagenta)
	block := mk(color.FgHiBlack)
	il := mk(color.FgCyan, color.Bold)
	p.contexts = map[hlsl.ContextType]func(a ...any) string{
		hlsl.ContextPragma:             directive,
		hlsl.ContextDefineStart:        directive,
		hlsl.ContextDefineEnd:          directive,
		hlsl.ContextInclude:            directive,
		hlsl.ContextAttribute:          mk(color.FgYellow),
		hlsl.ContextMethodStart:        block,
		hlsl.ContextMethodEnd:          block,
		hlsl.ContextIL:                 il,
		hlsl.ContextILDefine:           mk(color.FgCyan),
		hlsl.ContextILAttribute:        mk(color.FgHiYellow),
		hlsl.ContextILNodeStart:        il,
		hlsl.ContextILNodeEnd:          il,
		hlsl.ContextILCommentNodeStart: mk(color.FgBlue),
		hlsl.ContextILCommentNodeEnd:   mk(color.FgBlue),
	}
	p.comment = mk(color.FgHiBlack)
	p.name = mk(color.Bold)
	p.added = mk(color.FgGreen)
	p.removed = mk(color.FgRed)
	return p
}

func (p *palette) context(c hlsl.ContextType, s string) string {
	if !p.enabled {
		return s
	}
	if f, ok := p.contexts[c]; ok {
		return f(s)
	}
	return s
}

func (p *palette) data(s string) string {
	if !p.enabled || s == "" {
		return s
	}
	return p.comment(s)
}

func (p *palette) file(s string) string {
	if !p.enabled {
		return s
	}
	return p.name(s)
}

func (p *palette) diffLine(op exisl.DiffOp, s string) string {
	if !p.enabled {
		return s
	}
	switch op {
	case exisl.DiffInsert:
		return p.added(s)
	case exisl.DiffDelete:
		return p.removed(s)
	default:
		return s
	}
}
