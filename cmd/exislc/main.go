// Command exislc emits, inspects and compares EXISL shader source.
//
// Usage:
//
//	exislc [-v] <command> [options] [files]
//
// Examples:
//
//	exislc emit -o blur.exisl blur.yaml     # Render a YAML document
//	exislc scan blur.exisl                  # Classify every line
//	exislc scan -where 'Context == "ILNodeStart"' blur.exisl
//	exislc diff old.exisl new.exisl         # Exit status 1 on differences
//	exislc types                            # List builtin types
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

// toolVersion is the exislc release.
const toolVersion = "0.1.0-dev"

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
