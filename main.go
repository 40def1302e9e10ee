package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/BeerDiary/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Beer Diary"), kong.Description("BeerDiary is a craft beer catalog and tasting journal."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
