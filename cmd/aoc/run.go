package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aoclive/aoc"
	"github.com/aoclive/aoc/internal/errors"
)

var (
	runPart int
	runAll  bool
)

var runCmd = &cobra.Command{
	Use:   "run [day]",
	Short: "Solve a day",
	Long:  "Check a day's examples and solve its real input. Without a day, runs the latest one.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().IntVarP(&runPart, "part", "p", 0, "Solve only this part (1 or 2)")
	runCmd.Flags().BoolVar(&runAll, "all", false, "Solve every registered day")
}

var (
	okStyle   = color.New(color.FgGreen)
	warnStyle = color.New(color.FgYellow)
	failStyle = color.New(color.FgRed, color.Bold)
)

func runRun(cmd *cobra.Command, args []string) error {
	r := &aoc.Runner{Inputs: cfg.Inputs, Samples: cfg.Samples, Parallel: cfg.Parallel}
	out := cmd.OutOrStdout()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if runAll {
		if len(args) > 0 || runPart != 0 {
			return errors.New("--all takes no day or part")
		}
		results, err := r.RunAll(ctx, aoc.Days())
		printResults(out, results)
		return err
	}

	d, err := dayArg(args)
	if err != nil {
		return err
	}
	var parts []int
	if runPart != 0 {
		parts = append(parts, runPart)
	}
	results, err := r.Run(ctx, d, parts...)
	printResults(out, results)
	return err
}

func printResults(w io.Writer, results []aoc.Result) {
	for _, res := range results {
		var status string
		switch {
		case !cfg.Samples:
			status = warnStyle.Sprint("samples skipped")
		case res.Samples == 0:
			status = warnStyle.Sprint("no sample")
		default:
			status = okStyle.Sprintf("%d sample(s) ok", res.Samples)
		}
		fmt.Fprintf(w, "%s  %s  %s\n", res, status, res.Elapsed.Round(time.Microsecond))
	}
}

// dayArg resolves the optional day argument to a registered day.
func dayArg(args []string) (*aoc.Day, error) {
	if len(args) == 0 {
		d := aoc.Latest()
		if d == nil {
			return nil, errors.New("no days registered")
		}
		return d, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, errors.Newf("bad day %q", args[0])
	}
	d, ok := aoc.Lookup(n)
	if !ok {
		return nil, errors.WithHint(errors.Newf("day %d is not solved", n), "see aoc list")
	}
	return d, nil
}
