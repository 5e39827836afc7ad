package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/gogpu/exisl/hlsl"
)

func version(cfg *VersionConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Version.Parse(cc, args); err != nil {
		return err
	}
	_, err := fmt.Fprintf(cc.Out, "exislc version %s (IL %s)\n", toolVersion, hlsl.CurrentVersion())
	return err
}
