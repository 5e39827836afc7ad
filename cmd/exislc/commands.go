package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "exislc").
		WithSynopsis("exislc [opts] command [opts]").
		WithDescription("exislc emits, inspects and compares EXISL shader source.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return exislcMain(cfg, cc, args)
		}).
		WithSubs(
			EmitCommand(cfg),
			ScanCommand(cfg),
			DiffCommand(cfg),
			TypesCommand(cfg),
			VersionCommand(cfg))
}

func EmitCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EmitConfig{MainConfig: mainCfg}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})
	return cli.NewCommandAt(&cfg.Emit, "emit").
		WithAliases("e").
		WithSynopsis("emit [-o file] [-cpp11] [-spaces n] doc.yaml").
		WithDescription("render a YAML document description as shader source").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return emit(cfg, cc, args)
		})
}

func ScanCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ScanConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Scan, "scan").
		WithAliases("s").
		WithSynopsis("scan [-il] [-cpp11] [-where expr] [-color] [-json] [files]").
		WithDescription("classify every line of shader source and show the extracted data").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return scan(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [-color] from to").
		WithDescription("compare two sources line by line, exit status 1 when they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func TypesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TypesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Types, "types").
		WithAliases("t").
		WithSynopsis("types [names]").
		WithDescription("list the builtin types, or resolve the given spellings").
		WithRun(func(cc *cli.Context, args []string) error {
			return types(cfg, cc, args)
		})
}

func VersionCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VersionConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Version, "version").
		WithSynopsis("version").
		WithDescription("print the tool and IL versions").
		WithRun(func(cc *cli.Context, args []string) error {
			return version(cfg, cc, args)
		})
}
