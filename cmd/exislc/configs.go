package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Verbose bool `cli:"name=v aliases=verbose desc='log debug records to stderr'"`

	Log  *slog.Logger
	Main *cli.Command
}

type EmitConfig struct {
	*MainConfig

	CPP11  bool `cli:"name=cpp11 desc='write [[attributes]] instead of [attributes]'"`
	Spaces int  `cli:"name=spaces desc='spaces per indentation stage (default from the document)'"`

	// Out is the -o path; empty or "-" means cc.Out.
	Out string

	Emit *cli.Command
}

func (cfg *EmitConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	return nil, nil
}

type ScanConfig struct {
	*MainConfig

	IL    bool   `cli:"name=il desc='read as EXISL even without the #EXISL marker'"`
	CPP11 bool   `cli:"name=cpp11 desc='only accept [[attributes]]'"`
	Where string `cli:"name=where desc='keep lines matching an expression over Number, Context, Text, Name, Value, Args, Path, Signature'"`
	Color bool   `cli:"name=color desc='colour the context column even when not on a terminal'"`
	JSON  bool   `cli:"name=json desc='write one JSON object per line'"`

	Scan *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Color bool `cli:"name=color desc='colour the diff even when not on a terminal'"`

	Diff *cli.Command
}

type TypesConfig struct {
	*MainConfig

	Types *cli.Command
}

type VersionConfig struct {
	*MainConfig

	Version *cli.Command
}

// useColor reports whether output to w should be coloured.
func useColor(force bool, w io.Writer) bool {
	if force {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
