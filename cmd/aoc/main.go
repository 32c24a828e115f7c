package main

import (
	"fmt"
	"os"

	"github.com/aoclive/aoc/internal/errors"
	"github.com/aoclive/aoc/internal/logger"

	// Puzzle days register themselves.
	_ "github.com/aoclive/aoc/almanac"
	_ "github.com/aoclive/aoc/camelcards"
	_ "github.com/aoclive/aoc/cosmic"
	_ "github.com/aoclive/aoc/cubes"
	_ "github.com/aoclive/aoc/dish"
	_ "github.com/aoclive/aoc/lenses"
	_ "github.com/aoclive/aoc/mirage"
	_ "github.com/aoclive/aoc/mirrors"
	_ "github.com/aoclive/aoc/schematic"
	_ "github.com/aoclive/aoc/scratchcards"
	_ "github.com/aoclive/aoc/trebuchet"
	_ "github.com/aoclive/aoc/wasteland"
)

func main() {
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		failStyle.Fprintln(os.Stderr, "error:", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
