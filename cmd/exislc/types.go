package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/gogpu/exisl/hlsl"
)

func types(cfg *TypesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Types.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		for _, t := range hlsl.Builtins().Types() {
			fmt.Fprintf(cc.Out, "%-10s %s\n", t.Name(), kindOf(t))
		}
		return nil
	}
	for _, name := range args {
		t := hlsl.Resolve(name)
		fmt.Fprintf(cc.Out, "%-10s %s zero=%s\n", name, kindOf(t), t.Zero())
	}
	return nil
}

func kindOf(t hlsl.Type) string {
	switch t.(type) {
	case hlsl.Scalar:
		return "scalar"
	case hlsl.Vector:
		return "vector"
	case hlsl.Matrix:
		return "matrix"
	default:
		return "unregistered"
	}
}
