package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/gogpu/exisl"
)

func emit(cfg *EmitConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Emit.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: emit requires exactly one document", cli.ErrUsage)
	}
	data, err := readInput(args[0])
	if err != nil {
		return err
	}
	src, err := render(cfg, args[0], data)
	if err != nil {
		return err
	}
	return writeOutput(cc.Out, cfg.Out, src)
}

// render loads and emits one document with the command-line overrides applied.
func render(cfg *EmitConfig, name string, data []byte) (string, error) {
	doc, err := exisl.LoadDocument(data)
	if err != nil {
		return "", fmt.Errorf("error loading %s: %w", name, err)
	}
	if cfg.CPP11 {
		doc.Brackets = "cpp11"
	}
	if cfg.Spaces > 0 {
		doc.Spaces = cfg.Spaces
	}

	src, err := exisl.Emit(doc, &exisl.Options{Logger: cfg.Log})
	if err != nil {
		return "", fmt.Errorf("error emitting %s: %w", name, err)
	}
	return src, nil
}

// writeOutput writes src to path, or to stdout when path is empty or "-".
// The file is only created once src is complete, so a failed emit leaves an
// existing file untouched.
func writeOutput(stdout io.Writer, path, src string) (err error) {
	if path == "" || path == "-" {
		_, err = io.WriteString(stdout, src)
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	_, err = io.WriteString(f, src)
	return err
}
