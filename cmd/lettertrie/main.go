package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/lettertrie/pkg/cli"
)

func main() {
	var grammar cli.CLI
	ctx := kong.Parse(&grammar,
		kong.Name("lettertrie"),
		kong.Description("Insert, search and delete lowercase words in a prefix tree."),
		kong.UsageOnError(),
	)

	runCtx, err := grammar.NewContext(os.Stdin, os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)
	ctx.FatalIfErrorf(ctx.Run(runCtx))
}
