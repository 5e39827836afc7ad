package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/gogpu/exisl"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two files", cli.ErrUsage)
	}
	from, err := readInput(args[0])
	if err != nil {
		return err
	}
	to, err := readInput(args[1])
	if err != nil {
		return err
	}

	diffs := exisl.Diff(string(from), string(to))
	if !exisl.HasChanges(diffs) {
		cfg.Log.Debug("sources are identical", "from", args[0], "to", args[1])
		return nil
	}

	pal := newPalette(useColor(cfg.Color, cc.Out))
	fmt.Fprintf(cc.Out, "%s\n%s\n", pal.file("--- "+args[0]), pal.file("+++ "+args[1]))
	for _, d := range diffs {
		for _, line := range d.Lines {
			fmt.Fprintln(cc.Out, pal.diffLine(d.Op, d.Op.String()+line))
		}
	}
	return cli.ExitCodeErr(1)
}
