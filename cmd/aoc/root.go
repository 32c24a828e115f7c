package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aoclive/aoc"
	"github.com/aoclive/aoc/internal/config"
	"github.com/aoclive/aoc/internal/errors"
	"github.com/aoclive/aoc/internal/logger"
)

// cfg is loaded before any subcommand runs.
var cfg = &config.Config{Inputs: "inputs", Samples: true, Parallel: 4}

var (
	noSamples bool
	colorMode string
)

var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code 2023 solutions",
	Long: `aoc solves Advent of Code 2023 puzzles from inputs saved on disk.

Each day checks its worked examples first, then solves the real input
from <inputs>/day_NN.txt. Settings come from flags, AOC_* environment
variables, or an aoc.yaml in the working directory.

Examples:
  aoc run            # latest day, both parts
  aoc run 3 --part 2
  aoc run --all -v   # every day, with timing
  aoc tokens 3       # show how day 3's sample lexes`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.CountP("verbose", "v", "Increase log verbosity (-v, -vv)")
	flags.Bool("json", false, "Log as JSON")
	flags.String("inputs", "inputs", "Directory holding day_NN.txt inputs")
	flags.Int("parallel", 4, "Days solved at once with --all")
	flags.BoolVar(&noSamples, "no-samples", false, "Skip checking the worked examples")
	flags.StringVar(&colorMode, "color", "auto", "Color output: auto, always, never")
	aoc.MustDo(rootCmd.RegisterFlagCompletionFunc("color", cobra.FixedCompletions(
		[]string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp)))

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(tokensCmd)
}

// setup layers flags over the config file and environment, then starts
// logging.
func setup(cmd *cobra.Command, args []string) error {
	v, err := config.New()
	if err != nil {
		return err
	}
	for _, key := range []string{"verbose", "json", "inputs", "parallel"} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return errors.Wrapf(err, "binding --%s", key)
		}
	}
	if cmd.Flags().Changed("no-samples") {
		v.Set("samples", !noSamples)
	}
	if cfg, err = config.Load(v); err != nil {
		return err
	}

	switch colorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		// fatih/color already checks for a terminal and NO_COLOR.
	default:
		return errors.Newf("unknown color mode %q", colorMode)
	}

	if err := logger.Initialize(cfg.Verbose, cfg.JSON); err != nil {
		return errors.Wrap(err, "initializing logger")
	}
	logger.Logger.Debugw("config", "inputs", cfg.Inputs, "samples", cfg.Samples, "parallel", cfg.Parallel)
	return nil
}
